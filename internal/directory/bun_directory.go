package directory

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	goerrors "github.com/goliatone/go-errors"
	repository "github.com/goliatone/go-repository-bun"
	"github.com/google/uuid"
	"github.com/uptrace/bun"

	"github.com/goliatone/go-langlink/internal/identity"
	"github.com/goliatone/go-langlink/internal/logging"
	"github.com/goliatone/go-langlink/pkg/interfaces"
)

// BunDirectory persists languages and groups through bun.
type BunDirectory struct {
	db        *bun.DB
	languages repository.Repository[*ItemLanguage]
	members   repository.Repository[*GroupMember]
	logger    interfaces.Logger
	now       func() time.Time
}

var _ interfaces.LanguageDirectory = (*BunDirectory)(nil)

// BunOption mutates a BunDirectory.
type BunOption func(*BunDirectory)

// WithLogger sets the directory logger.
func WithLogger(logger interfaces.Logger) BunOption {
	return func(d *BunDirectory) {
		d.logger = logging.Ensure(logger)
	}
}

// WithClock overrides the timestamp source.
func WithClock(now func() time.Time) BunOption {
	return func(d *BunDirectory) {
		if now != nil {
			d.now = now
		}
	}
}

// NewBunDirectory constructs a bun-backed directory. Tables must exist; see Migrate.
func NewBunDirectory(db *bun.DB, opts ...BunOption) *BunDirectory {
	d := &BunDirectory{
		db:     db,
		logger: logging.NoOp(),
		now:    func() time.Time { return time.Now().UTC() },
	}
	if db != nil {
		d.languages = NewItemLanguageRepository(db)
		d.members = NewGroupMemberRepository(db)
	}
	for _, opt := range opts {
		if opt != nil {
			opt(d)
		}
	}
	return d
}

// Available reports whether a database is configured.
func (d *BunDirectory) Available() bool {
	return d != nil && d.db != nil
}

// GetLanguage returns the stored tag or an empty string.
func (d *BunDirectory) GetLanguage(ctx context.Context, id interfaces.ItemID) (string, error) {
	if !d.Available() {
		return "", ErrDatabaseRequired
	}
	record, err := d.languages.GetByID(ctx, identity.ItemLanguageUUID(int64(id)).String())
	if err != nil {
		if isNotFound(err) {
			return "", nil
		}
		return "", fmt.Errorf("directory: get language of %d: %w", id, err)
	}
	return record.Language, nil
}

// SetLanguage creates or overwrites the item's language row.
func (d *BunDirectory) SetLanguage(ctx context.Context, id interfaces.ItemID, language string) error {
	if !d.Available() {
		return ErrDatabaseRequired
	}
	if id <= 0 {
		return ErrInvalidItem
	}
	rowID := identity.ItemLanguageUUID(int64(id))
	existing, err := d.languages.GetByID(ctx, rowID.String())
	if err != nil && !isNotFound(err) {
		return fmt.Errorf("directory: load language of %d: %w", id, err)
	}

	now := d.now()
	if existing == nil || err != nil {
		_, err = d.languages.Create(ctx, &ItemLanguage{
			ID:        rowID,
			ItemID:    int64(id),
			Language:  language,
			UpdatedAt: now,
		})
		if err != nil {
			return fmt.Errorf("directory: create language of %d: %w", id, err)
		}
		d.logger.Debug("directory.language.created", "item_id", int64(id), "language", language)
		return nil
	}

	existing.Language = language
	existing.UpdatedAt = now
	if _, err := d.languages.Update(ctx, existing,
		repository.UpdateByID(rowID.String()),
		repository.UpdateColumns("language", "updated_at"),
	); err != nil {
		return fmt.Errorf("directory: update language of %d: %w", id, err)
	}
	d.logger.Debug("directory.language.updated", "item_id", int64(id), "language", language)
	return nil
}

// GetTranslationGroup returns the item's group, or its implicit group.
func (d *BunDirectory) GetTranslationGroup(ctx context.Context, id interfaces.ItemID) (interfaces.TranslationGroup, error) {
	if !d.Available() {
		return nil, ErrDatabaseRequired
	}
	member, err := d.members.GetByID(ctx, identity.GroupMemberUUID(int64(id)).String())
	if err != nil {
		if !isNotFound(err) {
			return nil, fmt.Errorf("directory: load membership of %d: %w", id, err)
		}
		language, err := d.GetLanguage(ctx, id)
		if err != nil {
			return nil, err
		}
		return implicitGroup(id, language), nil
	}

	records, _, err := d.members.List(ctx,
		repository.SelectRawProcessor(func(q *bun.SelectQuery) *bun.SelectQuery {
			return q.Where("?TableAlias.group_id = ?", member.GroupID)
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("directory: list group %s: %w", member.GroupID, err)
	}
	group := make(interfaces.TranslationGroup, len(records))
	for _, record := range records {
		group[record.Language] = interfaces.ItemID(record.ItemID)
	}
	return group, nil
}

// SaveTranslationGroup replaces the membership of the group its members
// extend. Other groups only lose the saved members.
func (d *BunDirectory) SaveTranslationGroup(ctx context.Context, group interfaces.TranslationGroup) error {
	if !d.Available() {
		return ErrDatabaseRequired
	}
	members := normalizeGroup(group)
	if len(members) == 0 {
		return nil
	}
	ids := memberIDs(members)
	now := d.now()

	var groupID uuid.UUID
	err := d.db.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
		stored, err := loadGroupsOf(ctx, tx, ids)
		if err != nil {
			return err
		}
		groupID = adoptGroup(members, stored)

		if groupID == uuid.Nil {
			groupID = uuid.New()
			record := &TranslationGroupRecord{ID: groupID, CreatedAt: now, UpdatedAt: now}
			if _, err := tx.NewInsert().Model(record).Exec(ctx); err != nil {
				return fmt.Errorf("insert group: %w", err)
			}
		} else if _, err := tx.NewUpdate().
			Model((*TranslationGroupRecord)(nil)).
			Set("updated_at = ?", now).
			Where("id = ?", groupID).
			Exec(ctx); err != nil {
			return fmt.Errorf("touch group: %w", err)
		}

		if _, err := tx.NewDelete().
			Model((*GroupMember)(nil)).
			Where("group_id = ? OR item_id IN (?)", groupID, bun.In(ids)).
			Exec(ctx); err != nil {
			return fmt.Errorf("delete memberships: %w", err)
		}

		rows := make([]*GroupMember, 0, len(members))
		for _, language := range sortedLanguages(members) {
			itemID := int64(members[language])
			rows = append(rows, &GroupMember{
				ID:        identity.GroupMemberUUID(itemID),
				GroupID:   groupID,
				ItemID:    itemID,
				Language:  language,
				CreatedAt: now,
			})
		}
		if _, err := tx.NewInsert().Model(&rows).Exec(ctx); err != nil {
			return fmt.Errorf("insert memberships: %w", err)
		}

		if _, err := tx.NewDelete().
			Model((*TranslationGroupRecord)(nil)).
			Where("id NOT IN (?)", tx.NewSelect().Model((*GroupMember)(nil)).Column("group_id")).
			Exec(ctx); err != nil {
			return fmt.Errorf("prune groups: %w", err)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("directory: save group: %w", err)
	}
	d.logger.Debug("directory.group.saved", "group_id", groupID.String(), "members", len(members))
	return nil
}

// loadGroupsOf returns the full membership of every group holding one of ids.
func loadGroupsOf(ctx context.Context, tx bun.Tx, ids []int64) (map[uuid.UUID]interfaces.TranslationGroup, error) {
	var groupIDs []uuid.UUID
	if err := tx.NewSelect().
		Model((*GroupMember)(nil)).
		Column("group_id").
		Where("?TableAlias.item_id IN (?)", bun.In(ids)).
		Scan(ctx, &groupIDs); err != nil {
		return nil, fmt.Errorf("load memberships: %w", err)
	}
	stored := map[uuid.UUID]interfaces.TranslationGroup{}
	if len(groupIDs) == 0 {
		return stored, nil
	}

	var rows []*GroupMember
	if err := tx.NewSelect().
		Model(&rows).
		Where("?TableAlias.group_id IN (?)", bun.In(groupIDs)).
		Scan(ctx); err != nil {
		return nil, fmt.Errorf("load groups: %w", err)
	}
	for _, row := range rows {
		group, ok := stored[row.GroupID]
		if !ok {
			group = interfaces.TranslationGroup{}
			stored[row.GroupID] = group
		}
		group[row.Language] = interfaces.ItemID(row.ItemID)
	}
	return stored, nil
}

func isNotFound(err error) bool {
	if err == nil {
		return false
	}
	return errors.Is(err, sql.ErrNoRows) || goerrors.IsCategory(err, repository.CategoryDatabaseNotFound)
}
