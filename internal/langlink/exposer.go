package langlink

import (
	"context"

	"github.com/goliatone/go-langlink/internal/logging"
	"github.com/goliatone/go-langlink/pkg/interfaces"
)

const (
	// FieldLanguage is the response field carrying the item's language tag.
	FieldLanguage = "lang"
	// FieldTranslations is the response field carrying the item's translation group.
	FieldTranslations = "translations"
)

// Exposer projects directory state onto item responses.
type Exposer struct {
	directory interfaces.LanguageDirectory
	logger    interfaces.Logger
}

// NewExposer constructs an exposer reading from directory.
func NewExposer(directory interfaces.LanguageDirectory, logger interfaces.Logger) *Exposer {
	return &Exposer{
		directory: directory,
		logger:    logging.Ensure(logger),
	}
}

// Language returns the item's language tag, or nil when the item has none.
func (e *Exposer) Language(ctx context.Context, id interfaces.ItemID) *string {
	if e == nil || e.directory == nil {
		return nil
	}
	language, err := e.directory.GetLanguage(ctx, id)
	if err != nil {
		e.logger.Debug("expose.language.lookup_failed", "item_id", int64(id), "error", err)
		return nil
	}
	if language == "" {
		return nil
	}
	return &language
}

// Translations returns a copy of the item's translation group. Items without a
// group, and failed lookups, yield an empty group.
func (e *Exposer) Translations(ctx context.Context, id interfaces.ItemID) interfaces.TranslationGroup {
	if e == nil || e.directory == nil {
		return interfaces.TranslationGroup{}
	}
	group, err := e.directory.GetTranslationGroup(ctx, id)
	if err != nil {
		e.logger.Debug("expose.translations.lookup_failed", "item_id", int64(id), "error", err)
		return interfaces.TranslationGroup{}
	}
	return group.Clone()
}

// Fields returns the response field definitions backed by this exposer.
func (e *Exposer) Fields() []interfaces.FieldDefinition {
	return []interfaces.FieldDefinition{
		{
			Name:   FieldLanguage,
			Schema: LanguageFieldSchema(),
			Get: func(ctx context.Context, item interfaces.ItemRef) any {
				if language := e.Language(ctx, item.ID); language != nil {
					return *language
				}
				return nil
			},
		},
		{
			Name:   FieldTranslations,
			Schema: TranslationsFieldSchema(),
			Get: func(ctx context.Context, item interfaces.ItemRef) any {
				return e.Translations(ctx, item.ID)
			},
		},
	}
}

// LanguageFieldSchema describes the lang response field.
func LanguageFieldSchema() map[string]any {
	return map[string]any{
		"description": "Language slug (e.g., en, fr)",
		"type":        []any{"string", "null"},
	}
}

// TranslationsFieldSchema describes the translations response field.
func TranslationsFieldSchema() map[string]any {
	return map[string]any{
		"description": "Object of linked translation IDs keyed by language slug",
		"type":        "object",
		"additionalProperties": map[string]any{
			"type": "integer",
		},
	}
}
