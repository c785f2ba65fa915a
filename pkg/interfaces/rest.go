package interfaces

import "context"

// ItemRef names a persisted content item.
type ItemRef struct {
	ID   ItemID
	Type string
}

// RequestParams exposes the merged parameters of a write request.
type RequestParams interface {
	Has(name string) bool
	Get(name string) any
}

// FieldGetter resolves a derived response field for an item.
type FieldGetter func(ctx context.Context, item ItemRef) any

// FieldDefinition describes a derived field attached to item responses.
type FieldDefinition struct {
	Name   string
	Get    FieldGetter
	Schema map[string]any
}

// InsertHook runs once after an item is persisted by a create or update request.
// Hooks cannot influence the response.
type InsertHook func(ctx context.Context, item ItemRef, params RequestParams, creating bool)

// RESTExtensions is the extension surface a REST host offers to integrations.
type RESTExtensions interface {
	PublicTypes() []string
	RegisterField(contentType string, field FieldDefinition) error
	RegisterInsertHook(contentType string, hook InsertHook) error
}
