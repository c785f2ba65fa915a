package directory

import (
	"strconv"

	repository "github.com/goliatone/go-repository-bun"
	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// NewItemLanguageRepository builds the generic repository for language rows.
func NewItemLanguageRepository(db *bun.DB) repository.Repository[*ItemLanguage] {
	return repository.MustNewRepository(db, repository.ModelHandlers[*ItemLanguage]{
		NewRecord: func() *ItemLanguage { return &ItemLanguage{} },
		GetID: func(record *ItemLanguage) uuid.UUID {
			return record.ID
		},
		SetID: func(record *ItemLanguage, id uuid.UUID) {
			record.ID = id
		},
		GetIdentifier: func() string {
			return "item_id"
		},
		GetIdentifierValue: func(record *ItemLanguage) string {
			return strconv.FormatInt(record.ItemID, 10)
		},
	})
}

// NewGroupMemberRepository builds the generic repository for membership rows.
func NewGroupMemberRepository(db *bun.DB) repository.Repository[*GroupMember] {
	return repository.MustNewRepository(db, repository.ModelHandlers[*GroupMember]{
		NewRecord: func() *GroupMember { return &GroupMember{} },
		GetID: func(record *GroupMember) uuid.UUID {
			return record.ID
		},
		SetID: func(record *GroupMember, id uuid.UUID) {
			record.ID = id
		},
		GetIdentifier: func() string {
			return "item_id"
		},
		GetIdentifierValue: func(record *GroupMember) string {
			return strconv.FormatInt(record.ItemID, 10)
		},
	})
}
