package directory

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/goliatone/go-langlink/pkg/interfaces"
)

// MemoryDirectory keeps languages and groups in process memory.
type MemoryDirectory struct {
	mu         sync.RWMutex
	languages  map[interfaces.ItemID]string
	groups     map[uuid.UUID]interfaces.TranslationGroup
	membership map[interfaces.ItemID]uuid.UUID
}

var _ interfaces.LanguageDirectory = (*MemoryDirectory)(nil)

// NewMemoryDirectory constructs an empty in-memory directory.
func NewMemoryDirectory() *MemoryDirectory {
	return &MemoryDirectory{
		languages:  map[interfaces.ItemID]string{},
		groups:     map[uuid.UUID]interfaces.TranslationGroup{},
		membership: map[interfaces.ItemID]uuid.UUID{},
	}
}

// Available reports whether the directory was constructed.
func (d *MemoryDirectory) Available() bool {
	return d != nil && d.languages != nil
}

// GetLanguage returns the stored tag or an empty string.
func (d *MemoryDirectory) GetLanguage(_ context.Context, id interfaces.ItemID) (string, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.languages[id], nil
}

// SetLanguage overwrites the stored tag.
func (d *MemoryDirectory) SetLanguage(_ context.Context, id interfaces.ItemID, language string) error {
	if id <= 0 {
		return ErrInvalidItem
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	if language == "" {
		delete(d.languages, id)
		return nil
	}
	d.languages[id] = language
	return nil
}

// GetTranslationGroup returns a copy of the item's group.
func (d *MemoryDirectory) GetTranslationGroup(_ context.Context, id interfaces.ItemID) (interfaces.TranslationGroup, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	if groupID, ok := d.membership[id]; ok {
		return d.groups[groupID].Clone(), nil
	}
	return implicitGroup(id, d.languages[id]), nil
}

// SaveTranslationGroup stores group as authoritative for its members. Items of
// the extended group whose slot is taken by another item leave it; members are
// detached from any other group, whose remaining items stay linked.
func (d *MemoryDirectory) SaveTranslationGroup(_ context.Context, group interfaces.TranslationGroup) error {
	members := normalizeGroup(group)
	if len(members) == 0 {
		return nil
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	stored := map[uuid.UUID]interfaces.TranslationGroup{}
	for _, id := range members {
		if groupID, ok := d.membership[id]; ok {
			stored[groupID] = d.groups[groupID]
		}
	}
	groupID := adoptGroup(members, stored)
	if groupID == uuid.Nil {
		groupID = uuid.New()
	}

	for _, previous := range d.groups[groupID] {
		if !hasItem(members, previous) {
			delete(d.membership, previous)
		}
	}
	for _, id := range members {
		if other, ok := d.membership[id]; ok && other != groupID {
			d.detachLocked(other, id)
		}
		d.membership[id] = groupID
	}
	d.groups[groupID] = members
	return nil
}

// detachLocked removes id from groupID, dropping the group once empty.
func (d *MemoryDirectory) detachLocked(groupID uuid.UUID, id interfaces.ItemID) {
	group := d.groups[groupID]
	for language, member := range group {
		if member == id {
			delete(group, language)
		}
	}
	if len(group) == 0 {
		delete(d.groups, groupID)
	}
}
