package rest

import (
	"errors"
	"fmt"
	"net/http"
	"slices"
	"strings"
	"sync"

	"github.com/goliatone/go-langlink/internal/content"
	"github.com/goliatone/go-langlink/internal/logging"
	"github.com/goliatone/go-langlink/pkg/interfaces"
)

var (
	ErrContentServiceRequired = errors.New("rest: content service is required")
	ErrUnknownContentType     = errors.New("rest: unknown content type")
	ErrTypeNotPublic          = errors.New("rest: content type is not public")
	ErrFieldNameRequired      = errors.New("rest: field name is required")
	ErrFieldGetterRequired    = errors.New("rest: field getter is required")
	ErrFieldReserved          = errors.New("rest: field name is reserved")
	ErrHookRequired           = errors.New("rest: insert hook is required")
)

// reservedFields are the item keys extensions cannot replace.
var reservedFields = []string{"id", "type", "slug", "title", "status", "content", "date", "modified"}

// API registers item endpoints and implements interfaces.RESTExtensions.
type API struct {
	basePath string
	content  content.Service
	logger   interfaces.Logger

	mu     sync.RWMutex
	fields map[string][]interfaces.FieldDefinition
	hooks  map[string][]interfaces.InsertHook
}

var _ interfaces.RESTExtensions = (*API)(nil)

// Option mutates the API configuration.
type Option func(*API)

// NewAPI constructs an API instance.
func NewAPI(opts ...Option) *API {
	api := &API{
		basePath: "/api",
		logger:   logging.NoOp(),
		fields:   map[string][]interfaces.FieldDefinition{},
		hooks:    map[string][]interfaces.InsertHook{},
	}
	for _, opt := range opts {
		if opt != nil {
			opt(api)
		}
	}
	return api
}

// WithBasePath overrides the base API path (defaults to "/api").
func WithBasePath(path string) Option {
	return func(api *API) {
		if trimmed := strings.TrimSpace(path); trimmed != "" {
			api.basePath = trimmed
		}
	}
}

// WithContentService wires the content service.
func WithContentService(service content.Service) Option {
	return func(api *API) {
		api.content = service
	}
}

// WithLoggerProvider scopes the API logger to the rest module.
func WithLoggerProvider(provider interfaces.LoggerProvider) Option {
	return func(api *API) {
		api.logger = logging.RESTLogger(provider)
	}
}

// BasePath returns the normalised base path.
func (api *API) BasePath() string {
	return joinPath(api.basePath, "")
}

// Register attaches the item endpoints to the provided mux.
func (api *API) Register(mux *http.ServeMux) error {
	if mux == nil {
		return fmt.Errorf("rest: mux is required")
	}
	if api.content == nil {
		return ErrContentServiceRequired
	}
	base := api.BasePath()
	mux.HandleFunc("GET "+joinPath(base, "types"), api.handleTypes)

	collection := joinPath(base, "{type}")
	mux.HandleFunc("GET "+collection, api.handleList)
	mux.HandleFunc("POST "+collection, api.handleCreate)
	mux.HandleFunc("OPTIONS "+collection, api.handleSchema)

	single := joinPath(collection, "{id}")
	mux.HandleFunc("GET "+single, api.handleGet)
	mux.HandleFunc("PUT "+single, api.handleUpdate)
	mux.HandleFunc("POST "+single, api.handleUpdate)
	mux.HandleFunc("PATCH "+single, api.handleUpdate)
	mux.HandleFunc("DELETE "+single, api.handleDelete)
	return nil
}

// PublicTypes lists the public content types.
func (api *API) PublicTypes() []string {
	if api.content == nil {
		return nil
	}
	return api.content.Types().PublicTypes()
}

// RegisterField adds a computed response field to a public type. Registering
// the same name twice replaces the earlier definition.
func (api *API) RegisterField(contentType string, field interfaces.FieldDefinition) error {
	name, err := api.publicType(contentType)
	if err != nil {
		return err
	}
	field.Name = strings.TrimSpace(field.Name)
	if field.Name == "" {
		return ErrFieldNameRequired
	}
	if field.Get == nil {
		return ErrFieldGetterRequired
	}
	if slices.Contains(reservedFields, field.Name) {
		return fmt.Errorf("%w: %s", ErrFieldReserved, field.Name)
	}

	api.mu.Lock()
	defer api.mu.Unlock()
	fields := api.fields[name]
	idx := slices.IndexFunc(fields, func(existing interfaces.FieldDefinition) bool {
		return existing.Name == field.Name
	})
	if idx >= 0 {
		fields[idx] = field
	} else {
		fields = append(fields, field)
	}
	api.fields[name] = fields
	api.logger.Debug("rest.field.registered", "content_type", name, "field", field.Name)
	return nil
}

// RegisterInsertHook adds a hook run after items of a public type are
// created or updated, before the response is rendered.
func (api *API) RegisterInsertHook(contentType string, hook interfaces.InsertHook) error {
	name, err := api.publicType(contentType)
	if err != nil {
		return err
	}
	if hook == nil {
		return ErrHookRequired
	}
	api.mu.Lock()
	defer api.mu.Unlock()
	api.hooks[name] = append(api.hooks[name], hook)
	api.logger.Debug("rest.hook.registered", "content_type", name)
	return nil
}

func (api *API) publicType(contentType string) (string, error) {
	if api.content == nil {
		return "", ErrContentServiceRequired
	}
	ct, ok := api.content.Types().Get(contentType)
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrUnknownContentType, contentType)
	}
	if !ct.Public {
		return "", fmt.Errorf("%w: %s", ErrTypeNotPublic, ct.Name)
	}
	return ct.Name, nil
}

func (api *API) fieldsFor(contentType string) []interfaces.FieldDefinition {
	api.mu.RLock()
	defer api.mu.RUnlock()
	return slices.Clone(api.fields[contentType])
}

func (api *API) hooksFor(contentType string) []interfaces.InsertHook {
	api.mu.RLock()
	defer api.mu.RUnlock()
	return slices.Clone(api.hooks[contentType])
}
