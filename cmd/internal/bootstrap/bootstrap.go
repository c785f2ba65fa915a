package bootstrap

import (
	"flag"
	"strings"

	langlink "github.com/goliatone/go-langlink"
)

// Flags holds the command line settings shared by the binaries.
type Flags struct {
	Storage     string
	Dialect     string
	DSN         string
	NoDirectory bool
	LogLevel    string
	LogFormat   string
	LogFocus    string
	Quiet       bool
}

// Register binds the shared flags to fs.
func (f *Flags) Register(fs *flag.FlagSet) {
	defaults := langlink.DefaultConfig()
	fs.StringVar(&f.Storage, "storage", defaults.Storage.Provider, "Storage provider (memory or bun)")
	fs.StringVar(&f.Dialect, "dialect", defaults.Storage.Dialect, "SQL dialect for bun storage (sqlite or postgres)")
	fs.StringVar(&f.DSN, "dsn", "", "Database DSN for bun storage")
	fs.BoolVar(&f.NoDirectory, "no-directory", false, "Run without a language directory")
	fs.StringVar(&f.LogLevel, "log-level", defaults.Logging.Level, "Log level")
	fs.StringVar(&f.LogFormat, "log-format", defaults.Logging.Format, "Log format (json, console or pretty)")
	fs.StringVar(&f.LogFocus, "log-focus", "", "Comma separated langlink modules to focus on (link, rest, directory)")
	fs.BoolVar(&f.Quiet, "quiet", false, "Disable logging")
}

// Config converts the parsed flags into a module configuration.
func (f Flags) Config() langlink.Config {
	cfg := langlink.DefaultConfig()
	cfg.Storage.Provider = strings.TrimSpace(f.Storage)
	cfg.Storage.Dialect = strings.TrimSpace(f.Dialect)
	cfg.Storage.DSN = strings.TrimSpace(f.DSN)
	cfg.Features.Directory = !f.NoDirectory
	cfg.Features.Logger = !f.Quiet
	cfg.Logging.Level = f.LogLevel
	cfg.Logging.Format = f.LogFormat
	cfg.Logging.Focus = SplitList(f.LogFocus)
	return cfg
}

// ModuleBuilder constructs a module from configuration.
type ModuleBuilder func(cfg langlink.Config) (*langlink.Module, error)

// BuildModule is the default ModuleBuilder.
func BuildModule(cfg langlink.Config) (*langlink.Module, error) {
	return langlink.New(cfg)
}

// SplitList splits a comma separated flag value, dropping empty entries.
func SplitList(value string) []string {
	if strings.TrimSpace(value) == "" {
		return nil
	}
	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
