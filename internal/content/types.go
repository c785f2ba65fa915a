package content

import (
	"time"

	"github.com/uptrace/bun"
)

const (
	StatusDraft     = "draft"
	StatusPublished = "published"
	StatusArchived  = "archived"
)

// Item is a single content record. Rendered is filled on read and never stored.
type Item struct {
	bun.BaseModel `bun:"table:items,alias:i"`

	ID        int64     `bun:"id,pk,autoincrement" json:"id"`
	Type      string    `bun:"type,notnull,unique:items_type_slug" json:"type"`
	Slug      string    `bun:"slug,notnull,unique:items_type_slug" json:"slug"`
	Title     string    `bun:"title,notnull" json:"title"`
	Body      string    `bun:"body" json:"body"`
	Status    string    `bun:"status,notnull" json:"status"`
	CreatedAt time.Time `bun:"created_at,nullzero,default:current_timestamp" json:"created_at"`
	UpdatedAt time.Time `bun:"updated_at,nullzero,default:current_timestamp" json:"updated_at"`

	Rendered string `bun:"-" json:"-"`
}

// Payload projects the writable fields validated against the type schema.
func (i *Item) Payload() map[string]any {
	if i == nil {
		return map[string]any{}
	}
	return map[string]any{
		"title":  i.Title,
		"slug":   i.Slug,
		"body":   i.Body,
		"status": i.Status,
	}
}

// ListOptions narrows List results. Limit zero means no limit.
type ListOptions struct {
	Type   string
	Status string
	Limit  int
	Offset int
}

// CreateItemRequest carries the fields for a new item.
type CreateItemRequest struct {
	Type   string
	Title  string
	Slug   string
	Body   string
	Status string
}

// UpdateItemRequest carries a partial update; nil fields are left untouched.
type UpdateItemRequest struct {
	Type   string
	ID     int64
	Title  *string
	Slug   *string
	Body   *string
	Status *string
}

func cloneItem(src *Item) *Item {
	if src == nil {
		return nil
	}
	copied := *src
	return &copied
}
