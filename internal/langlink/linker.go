package langlink

import (
	"context"

	"github.com/goliatone/go-langlink/internal/logging"
	"github.com/goliatone/go-langlink/pkg/interfaces"
)

// LinkOutcome names how the link step of a write ended.
type LinkOutcome string

const (
	// OutcomeNotRequested means the request carried no translation_of parameter.
	OutcomeNotRequested LinkOutcome = "not_requested"
	// OutcomeInvalidTarget means translation_of normalized to zero.
	OutcomeInvalidTarget LinkOutcome = "invalid_target"
	// OutcomeSelfReferential means translation_of named the item being written.
	OutcomeSelfReferential LinkOutcome = "self_referential"
	// OutcomeEffectiveLanguageUnresolved means neither the request nor the
	// directory supplied a language for the item.
	OutcomeEffectiveLanguageUnresolved LinkOutcome = "effective_language_unresolved"
	// OutcomeGroupReadFailed means the original's group could not be read.
	OutcomeGroupReadFailed LinkOutcome = "group_read_failed"
	// OutcomeSaveFailed means the directory rejected the updated group.
	OutcomeSaveFailed LinkOutcome = "save_failed"
	// OutcomeLinked means the updated group was handed to the directory.
	OutcomeLinked LinkOutcome = "linked"
)

// Skipped reports whether the outcome is an input guard that stopped the link
// step before any translation group was read. Directory failures are not skips.
func (o LinkOutcome) Skipped() bool {
	switch o {
	case OutcomeNotRequested, OutcomeInvalidTarget, OutcomeSelfReferential,
		OutcomeEffectiveLanguageUnresolved:
		return true
	default:
		return false
	}
}

// Result describes what a write did to the directory. Callers on the HTTP path
// discard it.
type Result struct {
	LanguageRequested bool
	Language          string
	LanguageErr       error

	Link              LinkOutcome
	Target            interfaces.ItemID
	EffectiveLanguage string
	Group             interfaces.TranslationGroup
	LinkErr           error
}

// Err returns the first directory error recorded by the write, if any.
func (r Result) Err() error {
	if r.LanguageErr != nil {
		return r.LanguageErr
	}
	return r.LinkErr
}

// LinkWriter applies lang and translation_of write parameters to the directory.
type LinkWriter struct {
	directory interfaces.LanguageDirectory
	logger    interfaces.Logger
}

// NewLinkWriter constructs a writer mutating directory.
func NewLinkWriter(directory interfaces.LanguageDirectory, logger interfaces.Logger) *LinkWriter {
	return &LinkWriter{
		directory: directory,
		logger:    logging.Ensure(logger),
	}
}

// Apply runs the set-language step followed by the link step for a persisted
// item. creating is recorded in logs only; creates and updates behave the same.
func (w *LinkWriter) Apply(ctx context.Context, id interfaces.ItemID, params WriteParams, creating bool) Result {
	result := Result{Link: OutcomeNotRequested}
	if w == nil || w.directory == nil {
		return result
	}
	logger := logging.WithFields(w.logger, map[string]any{
		"item_id":  int64(id),
		"creating": creating,
	})

	if params.HasLang {
		result.LanguageRequested = true
		result.Language = params.Lang
		result.LanguageErr = w.SetLanguage(ctx, id, params.Lang)
		if result.LanguageErr != nil {
			logger.Warn("link.language.failed", "language", params.Lang, "error", result.LanguageErr)
		} else {
			logger.Debug("link.language.set", "language", params.Lang)
		}
	}

	if !params.HasTranslationOf {
		return result
	}

	result.Target = ParseTranslationOf(params.TranslationOf)
	var override *string
	if params.HasLang {
		override = &params.Lang
	}
	result.Link, result.EffectiveLanguage, result.Group, result.LinkErr = w.link(ctx, id, result.Target, override)

	switch {
	case result.LinkErr != nil:
		logger.Warn("link.translation.failed",
			"outcome", string(result.Link),
			"translation_of", int64(result.Target),
			"error", result.LinkErr,
		)
	case result.Link.Skipped():
		logger.Debug("link.translation.skipped",
			"outcome", string(result.Link),
			"translation_of", params.TranslationOf,
		)
	default:
		logger.Info("link.translation.linked",
			"translation_of", int64(result.Target),
			"language", result.EffectiveLanguage,
		)
	}
	return result
}

// SetLanguage overwrites the item's language without validating the tag.
func (w *LinkWriter) SetLanguage(ctx context.Context, id interfaces.ItemID, language string) error {
	return w.directory.SetLanguage(ctx, id, language)
}

// LinkTranslation joins id into the group of original under the item's stored
// language.
func (w *LinkWriter) LinkTranslation(ctx context.Context, id, original interfaces.ItemID) (LinkOutcome, interfaces.TranslationGroup, error) {
	outcome, _, group, err := w.link(ctx, id, original, nil)
	return outcome, group, err
}

// link merges {effective language: id} into the group of original. override,
// when set, is the request's language and is trusted without a read-back.
func (w *LinkWriter) link(ctx context.Context, id, original interfaces.ItemID, override *string) (LinkOutcome, string, interfaces.TranslationGroup, error) {
	if original == 0 {
		return OutcomeInvalidTarget, "", nil, nil
	}
	if original == id {
		return OutcomeSelfReferential, "", nil, nil
	}

	effective, err := w.effectiveLanguage(ctx, id, override)
	if err != nil || effective == "" {
		return OutcomeEffectiveLanguageUnresolved, "", nil, nil
	}

	existing, err := w.directory.GetTranslationGroup(ctx, original)
	if err != nil {
		return OutcomeGroupReadFailed, effective, nil, err
	}

	// Read, copy with one key set, write back. Concurrent writers targeting the
	// same original race here and the last save wins.
	updated := existing.With(effective, id)
	if err := w.directory.SaveTranslationGroup(ctx, updated); err != nil {
		return OutcomeSaveFailed, effective, updated, err
	}
	return OutcomeLinked, effective, updated, nil
}

func (w *LinkWriter) effectiveLanguage(ctx context.Context, id interfaces.ItemID, override *string) (string, error) {
	if override != nil {
		return *override, nil
	}
	return w.directory.GetLanguage(ctx, id)
}

// Hook adapts the writer into a REST insert hook. The hook never reports back
// to the request.
func (w *LinkWriter) Hook() interfaces.InsertHook {
	return func(ctx context.Context, item interfaces.ItemRef, req interfaces.RequestParams, creating bool) {
		params := ParamsFromRequest(req)
		if !params.HasLang && !params.HasTranslationOf {
			return
		}
		w.Apply(ctx, item.ID, params, creating)
	}
}
