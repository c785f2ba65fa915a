package logging

import (
	"context"
	"strings"

	"github.com/goliatone/go-langlink/pkg/interfaces"
)

const (
	rootModule      = "langlink"
	exposeModule    = "langlink.expose"
	linkModule      = "langlink.link"
	restModule      = "langlink.rest"
	directoryModule = "langlink.directory"
	markdownModule  = "langlink.markdown"
)

// ModuleLogger returns a module-scoped logger, defaulting to a no-op
// implementation when no provider is supplied. The module identifier is
// attached as a structured field.
func ModuleLogger(provider interfaces.LoggerProvider, module string) interfaces.Logger {
	module = strings.TrimSpace(module)
	if module == "" {
		module = rootModule
	}

	logger := NoOp()
	if provider != nil {
		if provided := provider.GetLogger(module); provided != nil {
			logger = provided
		}
	}

	return WithFields(logger, map[string]any{
		"module": module,
	})
}

// RootLogger returns the top level langlink logger.
func RootLogger(provider interfaces.LoggerProvider) interfaces.Logger {
	return ModuleLogger(provider, rootModule)
}

// ExposeLogger returns the logger namespace used by read projections.
func ExposeLogger(provider interfaces.LoggerProvider) interfaces.Logger {
	return ModuleLogger(provider, exposeModule)
}

// LinkLogger returns the logger namespace used by the write hook.
func LinkLogger(provider interfaces.LoggerProvider) interfaces.Logger {
	return ModuleLogger(provider, linkModule)
}

// RESTLogger returns the logger namespace used by the HTTP host.
func RESTLogger(provider interfaces.LoggerProvider) interfaces.Logger {
	return ModuleLogger(provider, restModule)
}

// DirectoryLogger returns the logger namespace used by directory adapters.
func DirectoryLogger(provider interfaces.LoggerProvider) interfaces.Logger {
	return ModuleLogger(provider, directoryModule)
}

// MarkdownLogger returns the logger namespace used by markdown imports.
func MarkdownLogger(provider interfaces.LoggerProvider) interfaces.Logger {
	return ModuleLogger(provider, markdownModule)
}

// WithItem enriches the logger with the item identity and content type.
// Empty values are skipped.
func WithItem(logger interfaces.Logger, id int64, contentType string) interfaces.Logger {
	fields := map[string]any{}
	if id > 0 {
		fields["item_id"] = id
	}
	if trimmed := strings.TrimSpace(contentType); trimmed != "" {
		fields["content_type"] = trimmed
	}
	return WithFields(logger, fields)
}

// NoOp returns a logger that drops every entry.
func NoOp() interfaces.Logger {
	return noopLogger{}
}

type noopLogger struct{}

var _ interfaces.Logger = noopLogger{}

func (noopLogger) Trace(string, ...any) {}
func (noopLogger) Debug(string, ...any) {}
func (noopLogger) Info(string, ...any)  {}
func (noopLogger) Warn(string, ...any)  {}
func (noopLogger) Error(string, ...any) {}
func (noopLogger) Fatal(string, ...any) {}

func (n noopLogger) WithFields(map[string]any) interfaces.Logger {
	return n
}

func (n noopLogger) WithContext(context.Context) interfaces.Logger {
	return n
}
