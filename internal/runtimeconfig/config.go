package runtimeconfig

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrStorageProviderUnknown = errors.New("langlink config: storage provider is invalid")
	ErrStorageDialectUnknown  = errors.New("langlink config: storage dialect is invalid")
	ErrStorageDSNRequired     = errors.New("langlink config: storage dsn is required for the bun provider")
	ErrContentTypesRequired   = errors.New("langlink config: at least one content type is required")
	ErrContentTypeNameInvalid = errors.New("langlink config: content type name is required")
	ErrContentTypeDuplicate   = errors.New("langlink config: content type declared twice")
	ErrBasePathInvalid        = errors.New("langlink config: rest base path must start with /")
	ErrLoggingProviderUnknown = errors.New("langlink config: logging provider is invalid")
	ErrLoggingLevelInvalid    = errors.New("langlink config: logging level is invalid")
	ErrLoggingFormatInvalid   = errors.New("langlink config: logging format is invalid")
)

const (
	StorageMemory = "memory"
	StorageBun    = "bun"

	DialectSQLite   = "sqlite"
	DialectPostgres = "postgres"

	LoggingGoLogger = "gologger"
	LoggingNoop     = "noop"
)

// Config aggregates feature flags and adapter bindings for the module.
type Config struct {
	Enabled  bool
	Features Features
	Storage  StorageConfig
	REST     RESTConfig
	Content  ContentConfig
	Markdown MarkdownConfig
	Logging  LoggingConfig
}

// Features toggles optional behaviour. Directory false leaves the language
// fields and link hooks unregistered, as if no directory existed.
type Features struct {
	Directory bool
	Logger    bool
}

// StorageConfig selects where items and directory rows live.
type StorageConfig struct {
	Provider string
	Dialect  string
	DSN      string
}

// RESTConfig configures the HTTP host.
type RESTConfig struct {
	BasePath string
	Addr     string
}

// ContentConfig lists the content types registered at startup.
type ContentConfig struct {
	Types []ContentTypeConfig
}

// ContentTypeConfig declares one content type.
type ContentTypeConfig struct {
	Name        string
	Public      bool
	Description string
	Schema      map[string]any
}

// MarkdownConfig mirrors interfaces.ParseOptions for item body rendering.
type MarkdownConfig struct {
	Extensions []string
	HardWraps  bool
	SafeMode   bool
}

// LoggingConfig selects the logger provider.
type LoggingConfig struct {
	Provider  string
	Level     string
	Format    string
	AddSource bool
	Focus     []string
}

// DefaultConfig returns in-memory storage with post and page exposed.
func DefaultConfig() Config {
	return Config{
		Enabled: true,
		Features: Features{
			Directory: true,
			Logger:    true,
		},
		Storage: StorageConfig{
			Provider: StorageMemory,
			Dialect:  DialectSQLite,
		},
		REST: RESTConfig{
			BasePath: "/api",
			Addr:     ":8080",
		},
		Content: ContentConfig{
			Types: []ContentTypeConfig{
				{Name: "post", Public: true, Description: "Blog posts"},
				{Name: "page", Public: true, Description: "Static pages"},
				{Name: "revision", Public: false, Description: "Internal revisions"},
			},
		},
		Markdown: MarkdownConfig{},
		Logging: LoggingConfig{
			Provider: LoggingGoLogger,
			Level:    "info",
			Format:   "console",
		},
	}
}

// Validate performs high-level consistency checks.
func (cfg Config) Validate() error {
	switch normalize(cfg.Storage.Provider) {
	case StorageMemory:
	case StorageBun:
		switch normalize(cfg.Storage.Dialect) {
		case DialectSQLite, DialectPostgres:
		default:
			return fmt.Errorf("%w: %s", ErrStorageDialectUnknown, cfg.Storage.Dialect)
		}
		if strings.TrimSpace(cfg.Storage.DSN) == "" {
			return ErrStorageDSNRequired
		}
	default:
		return fmt.Errorf("%w: %s", ErrStorageProviderUnknown, cfg.Storage.Provider)
	}

	if base := strings.TrimSpace(cfg.REST.BasePath); base != "" && !strings.HasPrefix(base, "/") {
		return fmt.Errorf("%w: %s", ErrBasePathInvalid, base)
	}

	if len(cfg.Content.Types) == 0 {
		return ErrContentTypesRequired
	}
	seen := map[string]struct{}{}
	for _, ct := range cfg.Content.Types {
		name := normalize(ct.Name)
		if name == "" {
			return ErrContentTypeNameInvalid
		}
		if _, ok := seen[name]; ok {
			return fmt.Errorf("%w: %s", ErrContentTypeDuplicate, name)
		}
		seen[name] = struct{}{}
	}

	if cfg.Features.Logger {
		provider := normalize(cfg.Logging.Provider)
		if provider != LoggingGoLogger && provider != LoggingNoop {
			return fmt.Errorf("%w: %s", ErrLoggingProviderUnknown, cfg.Logging.Provider)
		}
		if level := strings.TrimSpace(cfg.Logging.Level); level != "" && !isSupportedLevel(level) {
			return fmt.Errorf("%w: %s", ErrLoggingLevelInvalid, level)
		}
		if format := strings.TrimSpace(cfg.Logging.Format); format != "" && !isSupportedFormat(format) {
			return fmt.Errorf("%w: %s", ErrLoggingFormatInvalid, format)
		}
	}
	return nil
}

// PublicTypes returns the names of public content types.
func (cfg Config) PublicTypes() []string {
	var out []string
	for _, ct := range cfg.Content.Types {
		if ct.Public {
			out = append(out, normalize(ct.Name))
		}
	}
	return out
}

func normalize(value string) string {
	return strings.ToLower(strings.TrimSpace(value))
}

func isSupportedLevel(level string) bool {
	switch normalize(level) {
	case "trace", "debug", "info", "warn", "warning", "error", "fatal":
		return true
	default:
		return false
	}
}

func isSupportedFormat(format string) bool {
	switch normalize(format) {
	case "json", "console", "pretty":
		return true
	default:
		return false
	}
}
