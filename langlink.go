package langlink

import (
	"context"
	"net/http"

	"github.com/goliatone/go-langlink/internal/content"
	"github.com/goliatone/go-langlink/internal/di"
	"github.com/goliatone/go-langlink/internal/markdown"
	"github.com/goliatone/go-langlink/pkg/interfaces"
)

// ContentService exports the item service contract.
type ContentService = content.Service

// Commands exports the command handler set.
type Commands = di.CommandHandlers

// ImportResult exports the markdown import summary.
type ImportResult = markdown.ImportResult

// Module represents the top level runtime facade.
type Module struct {
	container *di.Container
}

// New constructs a module using the provided configuration and optional DI overrides.
func New(cfg Config, opts ...di.Option) (*Module, error) {
	container, err := di.NewContainer(cfg, opts...)
	if err != nil {
		return nil, err
	}
	return &Module{container: container}, nil
}

// Container exposes the underlying DI container for advanced integrations.
func (m *Module) Container() *di.Container {
	return m.container
}

// Handler returns the HTTP handler serving the REST routes.
func (m *Module) Handler() http.Handler {
	return m.container.Handler()
}

// Directory returns the active language directory, nil when linking is inactive.
func (m *Module) Directory() interfaces.LanguageDirectory {
	return m.container.Directory()
}

// Content returns the configured content service.
func (m *Module) Content() ContentService {
	return m.container.ContentService()
}

// Commands returns the command handlers.
func (m *Module) Commands() *Commands {
	return m.container.Commands()
}

// ImportMarkdown imports the documents under dir through the markdown
// import command.
func (m *Module) ImportMarkdown(ctx context.Context, cmd ImportDirectoryCommand) (*ImportResult, error) {
	handler := m.container.Commands().ImportDirectory
	err := handler.Execute(ctx, cmd)
	return handler.LastResult(), err
}

// Close releases resources held by the module.
func (m *Module) Close() error {
	if m == nil || m.container == nil {
		return nil
	}
	return m.container.Close()
}
