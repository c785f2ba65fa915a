package content

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"

	"github.com/uptrace/bun"
)

// BunRepository persists items using a bun database.
type BunRepository struct {
	db *bun.DB
}

var _ Repository = (*BunRepository)(nil)

// NewBunRepository constructs a bun-backed repository.
func NewBunRepository(db *bun.DB) *BunRepository {
	return &BunRepository{db: db}
}

// Migrate creates the items table when missing.
func Migrate(ctx context.Context, db *bun.DB) error {
	if db == nil {
		return ErrDatabaseRequired
	}
	if _, err := db.NewCreateTable().Model((*Item)(nil)).IfNotExists().Exec(ctx); err != nil {
		return fmt.Errorf("content: create items table: %w", err)
	}
	return nil
}

func (r *BunRepository) Create(ctx context.Context, record *Item) (*Item, error) {
	if r.db == nil {
		return nil, ErrDatabaseRequired
	}
	if _, err := r.GetBySlug(ctx, record.Type, record.Slug); err == nil {
		return nil, ErrSlugExists
	} else if !IsNotFound(err) {
		return nil, err
	}

	model := cloneItem(record)
	model.ID = 0
	if _, err := r.db.NewInsert().Model(model).Exec(ctx); err != nil {
		return nil, fmt.Errorf("item repository error: %w", err)
	}
	return model, nil
}

func (r *BunRepository) GetByID(ctx context.Context, id int64) (*Item, error) {
	if r.db == nil {
		return nil, ErrDatabaseRequired
	}
	var model Item
	if err := r.db.NewSelect().Model(&model).Where("?TableAlias.id = ?", id).Scan(ctx); err != nil {
		return nil, mapRepositoryError(err, strconv.FormatInt(id, 10))
	}
	return &model, nil
}

func (r *BunRepository) GetBySlug(ctx context.Context, contentType, slug string) (*Item, error) {
	if r.db == nil {
		return nil, ErrDatabaseRequired
	}
	var model Item
	if err := r.db.NewSelect().
		Model(&model).
		Where("?TableAlias.type = ?", contentType).
		Where("?TableAlias.slug = ?", slug).
		Scan(ctx); err != nil {
		return nil, mapRepositoryError(err, slug)
	}
	return &model, nil
}

func (r *BunRepository) List(ctx context.Context, opts ListOptions) ([]*Item, int, error) {
	if r.db == nil {
		return nil, 0, ErrDatabaseRequired
	}
	var records []*Item
	query := r.db.NewSelect().Model(&records).OrderExpr("?TableAlias.id ASC")
	if opts.Type != "" {
		query = query.Where("?TableAlias.type = ?", opts.Type)
	}
	if opts.Status != "" {
		query = query.Where("?TableAlias.status = ?", opts.Status)
	}
	if opts.Limit > 0 {
		query = query.Limit(opts.Limit)
	}
	if opts.Offset > 0 {
		query = query.Offset(opts.Offset)
	}
	total, err := query.ScanAndCount(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("item repository error: %w", err)
	}
	return records, total, nil
}

func (r *BunRepository) Update(ctx context.Context, record *Item) (*Item, error) {
	if r.db == nil {
		return nil, ErrDatabaseRequired
	}
	if existing, err := r.GetBySlug(ctx, record.Type, record.Slug); err == nil && existing.ID != record.ID {
		return nil, ErrSlugExists
	} else if err != nil && !IsNotFound(err) {
		return nil, err
	}

	model := cloneItem(record)
	result, err := r.db.NewUpdate().
		Model(model).
		Column("slug", "title", "body", "status", "updated_at").
		WherePK().
		Exec(ctx)
	if err != nil {
		return nil, fmt.Errorf("item repository error: %w", err)
	}
	if affected, err := result.RowsAffected(); err == nil && affected == 0 {
		return nil, &NotFoundError{Resource: "item", Key: strconv.FormatInt(record.ID, 10)}
	}
	return r.GetByID(ctx, record.ID)
}

func (r *BunRepository) Delete(ctx context.Context, id int64) error {
	if r.db == nil {
		return ErrDatabaseRequired
	}
	result, err := r.db.NewDelete().Model((*Item)(nil)).Where("id = ?", id).Exec(ctx)
	if err != nil {
		return fmt.Errorf("item repository error: %w", err)
	}
	if affected, err := result.RowsAffected(); err == nil && affected == 0 {
		return &NotFoundError{Resource: "item", Key: strconv.FormatInt(id, 10)}
	}
	return nil
}

func mapRepositoryError(err error, key string) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, sql.ErrNoRows) {
		return &NotFoundError{Resource: "item", Key: key}
	}
	return fmt.Errorf("item repository error: %w", err)
}
