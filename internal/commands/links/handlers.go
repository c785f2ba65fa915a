package links

import (
	"context"
	"errors"
	"fmt"

	command "github.com/goliatone/go-command"

	"github.com/goliatone/go-langlink/internal/commands"
	"github.com/goliatone/go-langlink/internal/langlink"
	"github.com/goliatone/go-langlink/internal/logging"
	"github.com/goliatone/go-langlink/pkg/interfaces"
)

const (
	setLanguageOperation     = "links.set_language"
	linkTranslationOperation = "links.link_translation"
	applyOperation           = "links.apply"
)

var (
	// ErrWriterRequired is returned when no language directory is configured.
	ErrWriterRequired = errors.New("links command: link writer is required")
	// ErrLinkSkipped reports a translation link that was not written.
	ErrLinkSkipped = errors.New("links command: translation link skipped")
)

var (
	_ command.Commander[SetLanguageCommand]     = (*SetLanguageHandler)(nil)
	_ command.Commander[LinkTranslationCommand] = (*LinkTranslationHandler)(nil)
	_ command.Commander[ApplyLinksCommand]      = (*ApplyLinksHandler)(nil)
)

// SetLanguageHandler executes SetLanguageCommand.
type SetLanguageHandler struct {
	inner *commands.Handler[SetLanguageCommand]
}

// NewSetLanguageHandler binds the handler to writer.
func NewSetLanguageHandler(writer *langlink.LinkWriter, logger interfaces.Logger, opts ...commands.HandlerOption[SetLanguageCommand]) *SetLanguageHandler {
	exec := func(ctx context.Context, msg SetLanguageCommand) error {
		if writer == nil {
			return ErrWriterRequired
		}
		return writer.SetLanguage(ctx, interfaces.ItemID(msg.ItemID), msg.Language)
	}
	return &SetLanguageHandler{inner: commands.NewHandler[SetLanguageCommand](exec, handlerOptions(logger, setLanguageOperation, opts)...)}
}

// Execute implements command.Commander.
func (h *SetLanguageHandler) Execute(ctx context.Context, msg SetLanguageCommand) error {
	return h.inner.Execute(ctx, msg)
}

// LinkTranslationHandler executes LinkTranslationCommand. Skipped links are
// returned as errors wrapping ErrLinkSkipped.
type LinkTranslationHandler struct {
	inner *commands.Handler[LinkTranslationCommand]
}

// NewLinkTranslationHandler binds the handler to writer.
func NewLinkTranslationHandler(writer *langlink.LinkWriter, logger interfaces.Logger, opts ...commands.HandlerOption[LinkTranslationCommand]) *LinkTranslationHandler {
	base := logging.Ensure(logger)
	exec := func(ctx context.Context, msg LinkTranslationCommand) error {
		if writer == nil {
			return ErrWriterRequired
		}
		outcome, group, err := writer.LinkTranslation(ctx, interfaces.ItemID(msg.ItemID), interfaces.ItemID(msg.TranslationOf))
		if err != nil {
			return err
		}
		if outcome.Skipped() {
			return fmt.Errorf("%w: %s", ErrLinkSkipped, outcome)
		}
		logging.WithItem(base, msg.ItemID, "").Info("links.command.linked", "group_size", len(group))
		return nil
	}
	return &LinkTranslationHandler{inner: commands.NewHandler[LinkTranslationCommand](exec, handlerOptions(logger, linkTranslationOperation, opts)...)}
}

// Execute implements command.Commander.
func (h *LinkTranslationHandler) Execute(ctx context.Context, msg LinkTranslationCommand) error {
	return h.inner.Execute(ctx, msg)
}

// ApplyLinksHandler executes ApplyLinksCommand. Like the insert hook it only
// fails on directory errors; skipped steps are logged.
type ApplyLinksHandler struct {
	inner *commands.Handler[ApplyLinksCommand]
}

// NewApplyLinksHandler binds the handler to writer.
func NewApplyLinksHandler(writer *langlink.LinkWriter, logger interfaces.Logger, opts ...commands.HandlerOption[ApplyLinksCommand]) *ApplyLinksHandler {
	base := logging.Ensure(logger)
	exec := func(ctx context.Context, msg ApplyLinksCommand) error {
		if writer == nil {
			return ErrWriterRequired
		}
		params := langlink.WriteParams{
			TranslationOf:    msg.TranslationOf,
			HasTranslationOf: msg.TranslationOf != nil,
		}
		if msg.Lang != nil {
			params.Lang = *msg.Lang
			params.HasLang = true
		}
		result := writer.Apply(ctx, interfaces.ItemID(msg.ItemID), params, msg.Creating)
		logging.WithItem(base, msg.ItemID, "").Debug("links.command.applied", "link", string(result.Link))
		return result.Err()
	}
	return &ApplyLinksHandler{inner: commands.NewHandler[ApplyLinksCommand](exec, handlerOptions(logger, applyOperation, opts)...)}
}

// Execute implements command.Commander.
func (h *ApplyLinksHandler) Execute(ctx context.Context, msg ApplyLinksCommand) error {
	return h.inner.Execute(ctx, msg)
}

func handlerOptions[T command.Message](logger interfaces.Logger, operation string, extra []commands.HandlerOption[T]) []commands.HandlerOption[T] {
	opts := []commands.HandlerOption[T]{
		commands.WithLogger[T](logger),
		commands.WithOperation[T](operation),
	}
	return append(opts, extra...)
}
