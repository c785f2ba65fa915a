package content

import "context"

// Repository persists items.
type Repository interface {
	Create(ctx context.Context, record *Item) (*Item, error)
	GetByID(ctx context.Context, id int64) (*Item, error)
	GetBySlug(ctx context.Context, contentType, slug string) (*Item, error)
	List(ctx context.Context, opts ListOptions) ([]*Item, int, error)
	Update(ctx context.Context, record *Item) (*Item, error)
	Delete(ctx context.Context, id int64) error
}
