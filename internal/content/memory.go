package content

import (
	"context"
	"slices"
	"strconv"
	"sync"
)

// MemoryRepository is an in-memory implementation for scaffolding and tests.
type MemoryRepository struct {
	mu        sync.RWMutex
	nextID    int64
	items     map[int64]*Item
	slugIndex map[string]int64
}

var _ Repository = (*MemoryRepository)(nil)

// NewMemoryRepository creates an empty in-memory repository.
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{
		items:     make(map[int64]*Item),
		slugIndex: make(map[string]int64),
	}
}

// Create assigns the next identifier and stores the item.
func (m *MemoryRepository) Create(_ context.Context, record *Item) (*Item, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	key := slugKey(record.Type, record.Slug)
	if _, exists := m.slugIndex[key]; exists {
		return nil, ErrSlugExists
	}
	m.nextID++
	copied := cloneItem(record)
	copied.ID = m.nextID
	m.items[copied.ID] = copied
	m.slugIndex[key] = copied.ID
	return cloneItem(copied), nil
}

// GetByID retrieves an item by identifier.
func (m *MemoryRepository) GetByID(_ context.Context, id int64) (*Item, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	rec, ok := m.items[id]
	if !ok {
		return nil, &NotFoundError{Resource: "item", Key: strconv.FormatInt(id, 10)}
	}
	return cloneItem(rec), nil
}

// GetBySlug retrieves an item by type and slug.
func (m *MemoryRepository) GetBySlug(_ context.Context, contentType, slug string) (*Item, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	id, ok := m.slugIndex[slugKey(contentType, slug)]
	if !ok {
		return nil, &NotFoundError{Resource: "item", Key: slug}
	}
	return cloneItem(m.items[id]), nil
}

// List returns matching items ordered by identifier along with the unpaginated total.
func (m *MemoryRepository) List(_ context.Context, opts ListOptions) ([]*Item, int, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	matched := make([]*Item, 0, len(m.items))
	for _, rec := range m.items {
		if opts.Type != "" && rec.Type != opts.Type {
			continue
		}
		if opts.Status != "" && rec.Status != opts.Status {
			continue
		}
		matched = append(matched, rec)
	}
	slices.SortFunc(matched, func(a, b *Item) int {
		switch {
		case a.ID < b.ID:
			return -1
		case a.ID > b.ID:
			return 1
		}
		return 0
	})

	total := len(matched)
	start := min(max(opts.Offset, 0), total)
	end := total
	if opts.Limit > 0 {
		end = min(start+opts.Limit, total)
	}
	out := make([]*Item, 0, end-start)
	for _, rec := range matched[start:end] {
		out = append(out, cloneItem(rec))
	}
	return out, total, nil
}

// Update replaces the stored item.
func (m *MemoryRepository) Update(_ context.Context, record *Item) (*Item, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	current, ok := m.items[record.ID]
	if !ok {
		return nil, &NotFoundError{Resource: "item", Key: strconv.FormatInt(record.ID, 10)}
	}
	key := slugKey(record.Type, record.Slug)
	if owner, exists := m.slugIndex[key]; exists && owner != record.ID {
		return nil, ErrSlugExists
	}
	delete(m.slugIndex, slugKey(current.Type, current.Slug))
	copied := cloneItem(record)
	m.items[copied.ID] = copied
	m.slugIndex[key] = copied.ID
	return cloneItem(copied), nil
}

// Delete removes the item.
func (m *MemoryRepository) Delete(_ context.Context, id int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	rec, ok := m.items[id]
	if !ok {
		return &NotFoundError{Resource: "item", Key: strconv.FormatInt(id, 10)}
	}
	delete(m.slugIndex, slugKey(rec.Type, rec.Slug))
	delete(m.items, id)
	return nil
}

func slugKey(contentType, slug string) string {
	return contentType + "/" + slug
}
