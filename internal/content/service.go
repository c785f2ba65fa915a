package content

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/goliatone/go-slug"

	"github.com/goliatone/go-langlink/pkg/interfaces"
)

// Service manages items of registered content types.
type Service interface {
	Types() *TypeRegistry
	Create(ctx context.Context, req CreateItemRequest) (*Item, error)
	Get(ctx context.Context, contentType string, id int64) (*Item, error)
	List(ctx context.Context, opts ListOptions) ([]*Item, int, error)
	Update(ctx context.Context, req UpdateItemRequest) (*Item, error)
	Delete(ctx context.Context, contentType string, id int64) error
}

// maxSlugAttempts bounds the numeric suffixes tried for derived slugs.
const maxSlugAttempts = 100

// ServiceOption configures the service at construction time.
type ServiceOption func(*service)

// WithClock overrides the clock used to stamp records.
func WithClock(clock func() time.Time) ServiceOption {
	return func(s *service) {
		if clock != nil {
			s.now = clock
		}
	}
}

// WithMarkdownParser renders item bodies on read.
func WithMarkdownParser(parser interfaces.MarkdownParser) ServiceOption {
	return func(s *service) {
		s.parser = parser
	}
}

type service struct {
	items  Repository
	types  *TypeRegistry
	parser interfaces.MarkdownParser
	now    func() time.Time
}

// NewService constructs a content service.
func NewService(items Repository, types *TypeRegistry, opts ...ServiceOption) (Service, error) {
	if items == nil {
		return nil, ErrRepositoryRequired
	}
	if types == nil {
		types = &TypeRegistry{types: map[string]*registeredType{}}
	}
	s := &service{
		items: items,
		types: types,
		now:   func() time.Time { return time.Now().UTC() },
	}
	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}
	return s, nil
}

func (s *service) Types() *TypeRegistry {
	return s.types
}

// Create validates the request, derives a slug when needed and stores the item.
func (s *service) Create(ctx context.Context, req CreateItemRequest) (*Item, error) {
	ct, ok := s.types.Get(req.Type)
	if !ok {
		return nil, ErrContentTypeRequired
	}

	title := strings.TrimSpace(req.Title)
	explicit := strings.TrimSpace(req.Slug) != ""
	itemSlug, err := deriveSlug(req.Slug, title)
	if err != nil {
		return nil, err
	}

	now := s.now()
	record := &Item{
		Type:      ct.Name,
		Slug:      itemSlug,
		Title:     title,
		Body:      req.Body,
		Status:    chooseStatus(req.Status),
		CreatedAt: now,
		UpdatedAt: now,
	}
	if record.Title == "" {
		record.Title = itemSlug
	}
	if err := s.types.Validate(ct.Name, record.Payload()); err != nil {
		return nil, err
	}

	if !explicit {
		unique, err := s.uniqueSlug(ctx, ct.Name, itemSlug)
		if err != nil {
			return nil, err
		}
		record.Slug = unique
	}

	created, err := s.items.Create(ctx, record)
	if err != nil {
		return nil, err
	}
	return s.decorate(created)
}

// Get fetches an item, treating items of another type as missing.
func (s *service) Get(ctx context.Context, contentType string, id int64) (*Item, error) {
	record, err := s.load(ctx, contentType, id)
	if err != nil {
		return nil, err
	}
	return s.decorate(record)
}

// List returns items of opts.Type with the unpaginated total.
func (s *service) List(ctx context.Context, opts ListOptions) ([]*Item, int, error) {
	if opts.Type != "" {
		ct, ok := s.types.Get(opts.Type)
		if !ok {
			return nil, 0, ErrContentTypeRequired
		}
		opts.Type = ct.Name
	}
	records, total, err := s.items.List(ctx, opts)
	if err != nil {
		return nil, 0, err
	}
	for i, record := range records {
		decorated, err := s.decorate(record)
		if err != nil {
			return nil, 0, err
		}
		records[i] = decorated
	}
	return records, total, nil
}

// Update applies the non-nil fields of req.
func (s *service) Update(ctx context.Context, req UpdateItemRequest) (*Item, error) {
	record, err := s.load(ctx, req.Type, req.ID)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		record.Title = strings.TrimSpace(*req.Title)
	}
	if req.Slug != nil {
		itemSlug, err := deriveSlug(*req.Slug, "")
		if err != nil {
			return nil, err
		}
		record.Slug = itemSlug
	}
	if req.Body != nil {
		record.Body = *req.Body
	}
	if req.Status != nil {
		record.Status = chooseStatus(*req.Status)
	}
	record.UpdatedAt = s.now()

	if err := s.types.Validate(record.Type, record.Payload()); err != nil {
		return nil, err
	}
	updated, err := s.items.Update(ctx, record)
	if err != nil {
		return nil, err
	}
	return s.decorate(updated)
}

// Delete removes an item of the given type.
func (s *service) Delete(ctx context.Context, contentType string, id int64) error {
	if _, err := s.load(ctx, contentType, id); err != nil {
		return err
	}
	return s.items.Delete(ctx, id)
}

func (s *service) load(ctx context.Context, contentType string, id int64) (*Item, error) {
	if id <= 0 {
		return nil, ErrItemIDRequired
	}
	ct, ok := s.types.Get(contentType)
	if !ok {
		return nil, ErrContentTypeRequired
	}
	record, err := s.items.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if record.Type != ct.Name {
		return nil, &NotFoundError{Resource: ct.Name, Key: fmt.Sprint(id)}
	}
	return record, nil
}

func (s *service) uniqueSlug(ctx context.Context, contentType, base string) (string, error) {
	candidate := base
	for attempt := 2; attempt <= maxSlugAttempts+1; attempt++ {
		_, err := s.items.GetBySlug(ctx, contentType, candidate)
		if err != nil {
			if IsNotFound(err) {
				return candidate, nil
			}
			return "", err
		}
		candidate = fmt.Sprintf("%s-%d", base, attempt)
	}
	return "", ErrSlugExists
}

func (s *service) decorate(record *Item) (*Item, error) {
	if record == nil || s.parser == nil || record.Body == "" {
		return record, nil
	}
	rendered, err := s.parser.Parse([]byte(record.Body))
	if err != nil {
		return nil, fmt.Errorf("content: render item %d: %w", record.ID, err)
	}
	record.Rendered = string(rendered)
	return record, nil
}

func deriveSlug(explicit, title string) (string, error) {
	source := strings.TrimSpace(explicit)
	if source == "" {
		source = title
	}
	if source == "" {
		return "", ErrTitleRequired
	}
	normalized, err := slug.Normalize(source)
	if err != nil {
		return "", errors.Join(ErrSlugInvalid, err)
	}
	if normalized == "" {
		return "", ErrSlugInvalid
	}
	return normalized, nil
}

func chooseStatus(status string) string {
	status = strings.TrimSpace(status)
	if status == "" {
		return StatusDraft
	}
	return strings.ToLower(status)
}
