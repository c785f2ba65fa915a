package interfaces

import (
	"context"
	"maps"
)

// ItemID identifies a content item in the host repository. Zero never names an item.
type ItemID int64

// TranslationGroup maps language tags to the items that translate one logical document.
type TranslationGroup map[string]ItemID

// Clone returns an independent copy of the group. A nil group clones to an empty one.
func (g TranslationGroup) Clone() TranslationGroup {
	out := make(TranslationGroup, len(g))
	maps.Copy(out, g)
	return out
}

// With returns a copy of the group with language mapped to id.
func (g TranslationGroup) With(language string, id ItemID) TranslationGroup {
	out := g.Clone()
	out[language] = id
	return out
}

// LanguageDirectory is the subsystem of record for item languages and translation
// groups. Callers never cache its answers; every operation re-reads current state.
type LanguageDirectory interface {
	// GetLanguage returns the item's language tag or an empty string when unset.
	GetLanguage(ctx context.Context, id ItemID) (string, error)
	// SetLanguage overwrites the item's language tag. Tags are not validated.
	SetLanguage(ctx context.Context, id ItemID, language string) error
	// GetTranslationGroup returns the group the item belongs to, or an empty group.
	GetTranslationGroup(ctx context.Context, id ItemID) (TranslationGroup, error)
	// SaveTranslationGroup persists group as authoritative. The directory infers
	// the group identity from its members.
	SaveTranslationGroup(ctx context.Context, group TranslationGroup) error
}

// DirectoryAvailability is an optional extension implemented by directories that
// can report whether their backing store is usable.
type DirectoryAvailability interface {
	Available() bool
}
