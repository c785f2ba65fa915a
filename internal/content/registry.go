package content

import (
	"fmt"
	"strings"
	"sync"

	"github.com/goliatone/go-slug"
	jsonschema "github.com/santhosh-tekuri/jsonschema/v5"
)

// ContentType names a kind of item. Public types are exposed to the language
// fields and link hooks; Schema defaults to DefaultItemSchema.
type ContentType struct {
	Name        string         `json:"name"`
	Public      bool           `json:"public"`
	Description string         `json:"description,omitempty"`
	Schema      map[string]any `json:"schema,omitempty"`
}

type registeredType struct {
	ContentType
	compiled *jsonschema.Schema
}

// TypeRegistry holds the known content types in registration order.
type TypeRegistry struct {
	mu    sync.RWMutex
	order []string
	types map[string]*registeredType
}

// NewTypeRegistry registers every supplied type.
func NewTypeRegistry(types ...ContentType) (*TypeRegistry, error) {
	registry := &TypeRegistry{types: map[string]*registeredType{}}
	for _, ct := range types {
		if err := registry.Register(ct); err != nil {
			return nil, err
		}
	}
	return registry, nil
}

// NormalizeTypeName lowercases and slugifies a type name.
func NormalizeTypeName(name string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		return ""
	}
	if normalized, err := slug.Normalize(name); err == nil && normalized != "" {
		return normalized
	}
	return strings.ToLower(name)
}

// Register adds a content type and compiles its schema.
func (r *TypeRegistry) Register(ct ContentType) error {
	name := NormalizeTypeName(ct.Name)
	if name == "" {
		return ErrContentTypeRequired
	}
	schema := cloneMap(ct.Schema)
	if len(schema) == 0 {
		schema = DefaultItemSchema()
	}
	compiled, err := compileSchema(schema)
	if err != nil {
		return fmt.Errorf("%w: %s: %v", ErrSchemaInvalid, name, err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.types[name]; exists {
		return fmt.Errorf("%w: %s", ErrContentTypeExists, name)
	}
	ct.Name = name
	ct.Schema = schema
	r.types[name] = &registeredType{ContentType: ct, compiled: compiled}
	r.order = append(r.order, name)
	return nil
}

// Get returns a copy of the named type.
func (r *TypeRegistry) Get(name string) (ContentType, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	entry, ok := r.types[NormalizeTypeName(name)]
	if !ok {
		return ContentType{}, false
	}
	return copyType(entry.ContentType), true
}

// List returns every type in registration order.
func (r *TypeRegistry) List() []ContentType {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]ContentType, 0, len(r.order))
	for _, name := range r.order {
		out = append(out, copyType(r.types[name].ContentType))
	}
	return out
}

// PublicTypes returns the names of public types in registration order.
func (r *TypeRegistry) PublicTypes() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]string, 0, len(r.order))
	for _, name := range r.order {
		if r.types[name].Public {
			out = append(out, name)
		}
	}
	return out
}

// Validate checks payload against the named type's schema.
func (r *TypeRegistry) Validate(name string, payload map[string]any) error {
	r.mu.RLock()
	entry, ok := r.types[NormalizeTypeName(name)]
	r.mu.RUnlock()
	if !ok {
		return ErrContentTypeRequired
	}
	return validatePayload(entry.Name, entry.compiled, payload)
}

func copyType(ct ContentType) ContentType {
	ct.Schema = cloneMap(ct.Schema)
	return ct
}
