package markdowncmd

import (
	"context"
	"io/fs"
	"os"

	command "github.com/goliatone/go-command"

	"github.com/goliatone/go-langlink/internal/commands"
	"github.com/goliatone/go-langlink/internal/logging"
	"github.com/goliatone/go-langlink/internal/markdown"
	"github.com/goliatone/go-langlink/pkg/interfaces"
)

const importOperation = "markdown.import_directory"

var _ command.Commander[ImportDirectoryCommand] = (*ImportDirectoryHandler)(nil)

// FSFactory opens the filesystem rooted at a command's directory.
type FSFactory func(dir string) fs.FS

// ImportDirectoryHandler runs ImportDirectoryCommand through a markdown.Importer.
type ImportDirectoryHandler struct {
	inner *commands.Handler[ImportDirectoryCommand]
	last  *markdown.ImportResult
}

// NewImportDirectoryHandler binds the handler to importer. A nil openFS uses os.DirFS.
func NewImportDirectoryHandler(importer *markdown.Importer, openFS FSFactory, logger interfaces.Logger, opts ...commands.HandlerOption[ImportDirectoryCommand]) *ImportDirectoryHandler {
	if openFS == nil {
		openFS = func(dir string) fs.FS { return os.DirFS(dir) }
	}
	base := logging.Ensure(logger)
	h := &ImportDirectoryHandler{}

	exec := func(ctx context.Context, msg ImportDirectoryCommand) error {
		loader := markdown.NewLoader(openFS(msg.Directory), markdown.LoaderConfig{
			Languages:       msg.Languages,
			DefaultLanguage: msg.DefaultLanguage,
			Recursive:       msg.Recursive,
		})
		result, err := importer.ImportDirectory(ctx, loader, ".", markdown.ImportOptions{
			DefaultType:   msg.DefaultType,
			DefaultStatus: msg.DefaultStatus,
		})
		h.last = result
		if result != nil {
			logging.WithFields(base, map[string]any{
				"document_count": len(result.Items),
				"linked_count":   result.Linked(),
				"error_count":    len(result.Errors),
			}).Info("markdown.command.import_directory.completed")
		}
		return err
	}

	handlerOpts := []commands.HandlerOption[ImportDirectoryCommand]{
		commands.WithLogger[ImportDirectoryCommand](logger),
		commands.WithOperation[ImportDirectoryCommand](importOperation),
	}
	h.inner = commands.NewHandler[ImportDirectoryCommand](exec, append(handlerOpts, opts...)...)
	return h
}

// Execute implements command.Commander.
func (h *ImportDirectoryHandler) Execute(ctx context.Context, msg ImportDirectoryCommand) error {
	return h.inner.Execute(ctx, msg)
}

// LastResult returns the result of the most recent execution.
func (h *ImportDirectoryHandler) LastResult() *markdown.ImportResult {
	return h.last
}
