package directory

import (
	"time"

	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// ItemLanguage stores the language tag of one item.
type ItemLanguage struct {
	bun.BaseModel `bun:"table:item_languages,alias:il"`

	ID        uuid.UUID `bun:",pk,type:uuid"                                 json:"id"`
	ItemID    int64     `bun:"item_id,notnull,unique"                        json:"item_id"`
	Language  string    `bun:"language,notnull"                              json:"language"`
	UpdatedAt time.Time `bun:"updated_at,nullzero,default:current_timestamp" json:"updated_at"`
}

// TranslationGroupRecord identifies one translation group.
type TranslationGroupRecord struct {
	bun.BaseModel `bun:"table:translation_groups,alias:tg"`

	ID        uuid.UUID `bun:",pk,type:uuid"                                 json:"id"`
	CreatedAt time.Time `bun:"created_at,nullzero,default:current_timestamp" json:"created_at"`
	UpdatedAt time.Time `bun:"updated_at,nullzero,default:current_timestamp" json:"updated_at"`
}

// GroupMember places one item in a group under one language slot.
type GroupMember struct {
	bun.BaseModel `bun:"table:translation_group_members,alias:tgm"`

	ID        uuid.UUID `bun:",pk,type:uuid"                                 json:"id"`
	GroupID   uuid.UUID `bun:"group_id,notnull,type:uuid"                    json:"group_id"`
	ItemID    int64     `bun:"item_id,notnull,unique"                        json:"item_id"`
	Language  string    `bun:"language,notnull"                              json:"language"`
	CreatedAt time.Time `bun:"created_at,nullzero,default:current_timestamp" json:"created_at"`
}
