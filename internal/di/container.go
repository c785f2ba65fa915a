package di

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	_ "github.com/lib/pq"
	_ "github.com/mattn/go-sqlite3"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/pgdialect"
	"github.com/uptrace/bun/dialect/sqlitedialect"

	"github.com/goliatone/go-langlink/internal/commands"
	"github.com/goliatone/go-langlink/internal/commands/links"
	markdowncmd "github.com/goliatone/go-langlink/internal/commands/markdown"
	"github.com/goliatone/go-langlink/internal/content"
	"github.com/goliatone/go-langlink/internal/directory"
	"github.com/goliatone/go-langlink/internal/langlink"
	"github.com/goliatone/go-langlink/internal/logging"
	"github.com/goliatone/go-langlink/internal/logging/gologger"
	"github.com/goliatone/go-langlink/internal/markdown"
	"github.com/goliatone/go-langlink/internal/rest"
	"github.com/goliatone/go-langlink/internal/runtimeconfig"
	"github.com/goliatone/go-langlink/pkg/interfaces"
)

// Container wires module dependencies from a runtime configuration.
type Container struct {
	Config runtimeconfig.Config

	loggerProvider interfaces.LoggerProvider
	logger         interfaces.Logger
	clock          func() time.Time

	bunDB  *bun.DB
	ownsDB bool

	directoryOverride bool
	directoryCandidate any

	types       *content.TypeRegistry
	contentRepo content.Repository
	contentSvc  content.Service
	parser      *markdown.GoldmarkParser

	api          *rest.API
	mux          *http.ServeMux
	registration *langlink.Registration

	importer *markdown.Importer
	commands *CommandHandlers
}

// CommandHandlers groups the command handlers exposed by the container.
type CommandHandlers struct {
	SetLanguage     *links.SetLanguageHandler
	LinkTranslation *links.LinkTranslationHandler
	ApplyLinks      *links.ApplyLinksHandler
	ImportDirectory *markdowncmd.ImportDirectoryHandler
}

// Option mutates the container before it is finalised.
type Option func(*Container)

// WithBunDB supplies an existing database handle. The container migrates it
// but never closes it.
func WithBunDB(db *bun.DB) Option {
	return func(c *Container) {
		c.bunDB = db
	}
}

// WithLoggerProvider overrides the provider built from the logging config.
func WithLoggerProvider(provider interfaces.LoggerProvider) Option {
	return func(c *Container) {
		c.loggerProvider = provider
	}
}

// WithDirectory replaces the configured directory with candidate. The
// candidate goes through the same capability check as the built-in ones,
// so nil or an unavailable directory disables language linking.
func WithDirectory(candidate any) Option {
	return func(c *Container) {
		c.directoryOverride = true
		c.directoryCandidate = candidate
	}
}

// WithContentRepository overrides the item repository selected by storage config.
func WithContentRepository(repo content.Repository) Option {
	return func(c *Container) {
		c.contentRepo = repo
	}
}

// WithClock overrides the clock used for timestamps.
func WithClock(clock func() time.Time) Option {
	return func(c *Container) {
		if clock != nil {
			c.clock = clock
		}
	}
}

// NewContainer creates a container with the provided configuration.
func NewContainer(cfg runtimeconfig.Config, opts ...Option) (*Container, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	c := &Container{
		Config: cfg,
		clock:  time.Now,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(c)
		}
	}

	if err := c.configureLoggerProvider(); err != nil {
		return nil, err
	}
	c.logger = logging.RootLogger(c.loggerProvider)

	steps := []func(context.Context) error{
		c.configureStorage,
		c.configureContent,
		c.configureDirectory,
		c.configureREST,
		c.configureCommands,
	}
	ctx := context.Background()
	for _, step := range steps {
		if err := step(ctx); err != nil {
			c.Close()
			return nil, err
		}
	}

	logging.WithFields(c.logger, map[string]any{
		"storage":        c.Config.Storage.Provider,
		"link_active":    c.registration != nil,
		"public_types":   c.api.PublicTypes(),
		"rest_base_path": c.api.BasePath(),
	}).Info("langlink.container.ready")
	return c, nil
}

func (c *Container) configureLoggerProvider() error {
	if c.loggerProvider != nil || !c.Config.Features.Logger {
		return nil
	}
	if strings.EqualFold(strings.TrimSpace(c.Config.Logging.Provider), runtimeconfig.LoggingNoop) {
		return nil
	}
	provider, err := gologger.NewProvider(gologger.Config{
		Level:     c.Config.Logging.Level,
		Format:    c.Config.Logging.Format,
		AddSource: c.Config.Logging.AddSource,
		Focus:     c.Config.Logging.Focus,
	})
	if err != nil {
		return fmt.Errorf("configure logger provider: %w", err)
	}
	c.loggerProvider = provider
	return nil
}

func (c *Container) configureStorage(ctx context.Context) error {
	if c.bunDB == nil && strings.EqualFold(c.Config.Storage.Provider, runtimeconfig.StorageBun) {
		db, err := openDatabase(c.Config.Storage)
		if err != nil {
			return err
		}
		c.bunDB = db
		c.ownsDB = true
	}
	if c.bunDB == nil {
		return nil
	}
	if err := content.Migrate(ctx, c.bunDB); err != nil {
		return fmt.Errorf("migrate content: %w", err)
	}
	if err := directory.Migrate(ctx, c.bunDB); err != nil {
		return fmt.Errorf("migrate directory: %w", err)
	}
	return nil
}

func openDatabase(cfg runtimeconfig.StorageConfig) (*bun.DB, error) {
	switch strings.ToLower(strings.TrimSpace(cfg.Dialect)) {
	case runtimeconfig.DialectPostgres:
		sqldb, err := sql.Open("postgres", cfg.DSN)
		if err != nil {
			return nil, fmt.Errorf("open postgres: %w", err)
		}
		return bun.NewDB(sqldb, pgdialect.New()), nil
	default:
		sqldb, err := sql.Open("sqlite3", cfg.DSN)
		if err != nil {
			return nil, fmt.Errorf("open sqlite: %w", err)
		}
		sqldb.SetMaxOpenConns(1)
		return bun.NewDB(sqldb, sqlitedialect.New()), nil
	}
}

func (c *Container) configureContent(context.Context) error {
	types := make([]content.ContentType, 0, len(c.Config.Content.Types))
	for _, ct := range c.Config.Content.Types {
		types = append(types, content.ContentType{
			Name:        ct.Name,
			Public:      ct.Public,
			Description: ct.Description,
			Schema:      ct.Schema,
		})
	}
	registry, err := content.NewTypeRegistry(types...)
	if err != nil {
		return fmt.Errorf("register content types: %w", err)
	}
	c.types = registry

	if c.contentRepo == nil {
		if c.bunDB != nil {
			c.contentRepo = content.NewBunRepository(c.bunDB)
		} else {
			c.contentRepo = content.NewMemoryRepository()
		}
	}

	c.parser = markdown.NewGoldmarkParser(interfaces.ParseOptions{
		Extensions: c.Config.Markdown.Extensions,
		HardWraps:  c.Config.Markdown.HardWraps,
		SafeMode:   c.Config.Markdown.SafeMode,
	})

	svc, err := content.NewService(c.contentRepo, registry,
		content.WithClock(c.clock),
		content.WithMarkdownParser(c.parser),
	)
	if err != nil {
		return err
	}
	c.contentSvc = svc
	return nil
}

func (c *Container) configureDirectory(context.Context) error {
	if c.directoryOverride {
		return nil
	}
	if !c.Config.Enabled || !c.Config.Features.Directory {
		c.directoryCandidate = nil
		return nil
	}
	if c.bunDB != nil {
		c.directoryCandidate = directory.NewBunDirectory(c.bunDB,
			directory.WithLogger(logging.DirectoryLogger(c.loggerProvider)),
			directory.WithClock(c.clock),
		)
		return nil
	}
	c.directoryCandidate = directory.NewMemoryDirectory()
	return nil
}

func (c *Container) configureREST(context.Context) error {
	c.api = rest.NewAPI(
		rest.WithBasePath(c.Config.REST.BasePath),
		rest.WithContentService(c.contentSvc),
		rest.WithLoggerProvider(c.loggerProvider),
	)

	if c.Config.Enabled {
		registration, err := langlink.Activate(c.api, c.directoryCandidate,
			langlink.WithLoggerProvider(c.loggerProvider),
		)
		if err != nil {
			return fmt.Errorf("activate language links: %w", err)
		}
		c.registration = registration
	}

	mux := http.NewServeMux()
	if err := c.api.Register(mux); err != nil {
		return fmt.Errorf("register rest routes: %w", err)
	}
	c.mux = mux
	return nil
}

func (c *Container) configureCommands(context.Context) error {
	writer := c.LinkWriter()
	c.importer = markdown.NewImporter(markdown.ImporterConfig{
		Content: c.contentSvc,
		Writer:  writer,
		Logger:  logging.MarkdownLogger(c.loggerProvider),
	})
	c.commands = &CommandHandlers{
		SetLanguage:     links.NewSetLanguageHandler(writer, commands.CommandLogger(c.loggerProvider, "links")),
		LinkTranslation: links.NewLinkTranslationHandler(writer, commands.CommandLogger(c.loggerProvider, "links")),
		ApplyLinks:      links.NewApplyLinksHandler(writer, commands.CommandLogger(c.loggerProvider, "links")),
		ImportDirectory: markdowncmd.NewImportDirectoryHandler(c.importer, nil, commands.CommandLogger(c.loggerProvider, "markdown")),
	}
	return nil
}

// Close releases the database handle when the container opened it.
func (c *Container) Close() error {
	if c == nil || c.bunDB == nil || !c.ownsDB {
		return nil
	}
	err := c.bunDB.Close()
	c.bunDB = nil
	if err != nil && !errors.Is(err, sql.ErrConnDone) {
		return err
	}
	return nil
}

// Handler returns the HTTP handler serving the REST routes.
func (c *Container) Handler() http.Handler {
	return c.mux
}

// API exposes the REST host.
func (c *Container) API() *rest.API {
	return c.api
}

// LoggerProvider returns the configured provider, nil when logging is disabled.
func (c *Container) LoggerProvider() interfaces.LoggerProvider {
	return c.loggerProvider
}

// BunDB returns the database handle, nil for memory storage.
func (c *Container) BunDB() *bun.DB {
	return c.bunDB
}

// Registration reports what language linking installed, nil when inactive.
func (c *Container) Registration() *langlink.Registration {
	return c.registration
}

// Directory returns the active language directory, nil when linking is inactive.
func (c *Container) Directory() interfaces.LanguageDirectory {
	if c.registration == nil {
		return nil
	}
	return c.registration.Directory
}

// LinkWriter returns the active link writer, nil when linking is inactive.
func (c *Container) LinkWriter() *langlink.LinkWriter {
	if c.registration == nil {
		return nil
	}
	return c.registration.Writer
}

// ContentService returns the item service.
func (c *Container) ContentService() content.Service {
	return c.contentSvc
}

// ContentTypes returns the content type registry.
func (c *Container) ContentTypes() *content.TypeRegistry {
	return c.types
}

// MarkdownImporter returns the markdown importer.
func (c *Container) MarkdownImporter() *markdown.Importer {
	return c.importer
}

// Commands returns the command handlers.
func (c *Container) Commands() *CommandHandlers {
	return c.commands
}
