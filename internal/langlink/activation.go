package langlink

import (
	"fmt"
	"slices"
	"strings"

	"github.com/goliatone/go-langlink/internal/logging"
	"github.com/goliatone/go-langlink/pkg/interfaces"
)

// Registration records what Activate installed on a REST host.
type Registration struct {
	Directory interfaces.LanguageDirectory
	Exposer   *Exposer
	Writer    *LinkWriter
	Types     []string
}

// Option mutates activation settings.
type Option func(*activation)

type activation struct {
	provider interfaces.LoggerProvider
	types    []string
}

// WithLoggerProvider sets the provider used for the expose, link and root loggers.
func WithLoggerProvider(provider interfaces.LoggerProvider) Option {
	return func(a *activation) {
		if a != nil {
			a.provider = provider
		}
	}
}

// WithContentTypes restricts registration to the listed types instead of every
// public type reported by the host.
func WithContentTypes(types ...string) Option {
	return func(a *activation) {
		if a != nil {
			a.types = append([]string(nil), types...)
		}
	}
}

// ProbeDirectory reports whether candidate offers the directory capability.
// Nil values and directories reporting themselves unavailable are treated as absent.
func ProbeDirectory(candidate any) (interfaces.LanguageDirectory, bool) {
	if candidate == nil {
		return nil, false
	}
	directory, ok := candidate.(interfaces.LanguageDirectory)
	if !ok || directory == nil {
		return nil, false
	}
	if availability, ok := candidate.(interfaces.DirectoryAvailability); ok && !availability.Available() {
		return nil, false
	}
	return directory, true
}

// Activate checks candidate once and, when it is a usable directory, registers
// the lang and translations fields plus the link hook for every public content
// type. A missing directory installs nothing and returns a nil registration.
func Activate(ext interfaces.RESTExtensions, candidate any, opts ...Option) (*Registration, error) {
	if ext == nil {
		return nil, fmt.Errorf("langlink: rest extensions are required")
	}
	cfg := &activation{}
	for _, opt := range opts {
		if opt != nil {
			opt(cfg)
		}
	}
	root := logging.RootLogger(cfg.provider)

	directory, ok := ProbeDirectory(candidate)
	if !ok {
		root.Info("langlink.activation.skipped", "reason", "directory_unavailable")
		return nil, nil
	}

	types := cfg.types
	if types == nil {
		types = ext.PublicTypes()
	}
	types = normalizeTypes(types)

	reg := &Registration{
		Directory: directory,
		Exposer:   NewExposer(directory, logging.ExposeLogger(cfg.provider)),
		Writer:    NewLinkWriter(directory, logging.LinkLogger(cfg.provider)),
		Types:     types,
	}

	fields := reg.Exposer.Fields()
	hook := reg.Writer.Hook()
	for _, contentType := range types {
		for _, field := range fields {
			if err := ext.RegisterField(contentType, field); err != nil {
				return nil, fmt.Errorf("langlink: register field %s on %s: %w", field.Name, contentType, err)
			}
		}
		if err := ext.RegisterInsertHook(contentType, hook); err != nil {
			return nil, fmt.Errorf("langlink: register insert hook on %s: %w", contentType, err)
		}
	}

	root.Info("langlink.activation.registered", "content_types", types)
	return reg, nil
}

func normalizeTypes(types []string) []string {
	out := make([]string, 0, len(types))
	for _, contentType := range types {
		trimmed := strings.TrimSpace(contentType)
		if trimmed == "" || slices.Contains(out, trimmed) {
			continue
		}
		out = append(out, trimmed)
	}
	return out
}
