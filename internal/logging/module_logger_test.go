package logging

import (
	"context"
	"testing"

	"github.com/goliatone/go-langlink/pkg/interfaces"
)

type recordingLogger struct {
	fields   []map[string]any
	contexts []context.Context
}

func (r *recordingLogger) Trace(string, ...any) {}
func (r *recordingLogger) Debug(string, ...any) {}
func (r *recordingLogger) Info(string, ...any)  {}
func (r *recordingLogger) Warn(string, ...any)  {}
func (r *recordingLogger) Error(string, ...any) {}
func (r *recordingLogger) Fatal(string, ...any) {}

func (r *recordingLogger) WithFields(fields map[string]any) interfaces.Logger {
	copied := make(map[string]any, len(fields))
	for k, v := range fields {
		copied[k] = v
	}
	r.fields = append(r.fields, copied)
	return r
}

func (r *recordingLogger) WithContext(ctx context.Context) interfaces.Logger {
	r.contexts = append(r.contexts, ctx)
	return r
}

type plainLogger struct{}

func (plainLogger) Trace(string, ...any)                          {}
func (plainLogger) Debug(string, ...any)                          {}
func (plainLogger) Info(string, ...any)                           {}
func (plainLogger) Warn(string, ...any)                           {}
func (plainLogger) Error(string, ...any)                          {}
func (plainLogger) Fatal(string, ...any)                          {}
func (p plainLogger) WithContext(context.Context) interfaces.Logger { return p }

type stubProvider struct {
	requested []string
	logger    interfaces.Logger
}

func (s *stubProvider) GetLogger(name string) interfaces.Logger {
	s.requested = append(s.requested, name)
	return s.logger
}

func TestModuleLoggerFallsBackToNoOp(t *testing.T) {
	logger := ModuleLogger(nil, "langlink.test")
	if _, ok := logger.(noopLogger); !ok {
		t.Fatalf("expected noopLogger fallback, got %T", logger)
	}
	logger = logger.WithContext(context.Background())
	logger.Debug("noop")
}

func TestModuleLoggerUsesProviderAndAnnotatesFields(t *testing.T) {
	rec := &recordingLogger{}
	provider := &stubProvider{logger: rec}

	_ = ModuleLogger(provider, linkModule)

	if len(provider.requested) != 1 || provider.requested[0] != linkModule {
		t.Fatalf("expected module %s, got %v", linkModule, provider.requested)
	}
	if len(rec.fields) != 1 {
		t.Fatalf("expected module fields to be applied once, got %d", len(rec.fields))
	}
	if got := rec.fields[0]["module"]; got != linkModule {
		t.Fatalf("expected module field %s, got %v", linkModule, got)
	}
}

func TestModuleLoggerDefaultsToRootModule(t *testing.T) {
	rec := &recordingLogger{}
	provider := &stubProvider{logger: rec}

	_ = ModuleLogger(provider, "  ")

	if len(provider.requested) != 1 || provider.requested[0] != rootModule {
		t.Fatalf("expected default module %s, got %v", rootModule, provider.requested)
	}
}

func TestNamedLoggersRequestTheirModules(t *testing.T) {
	cases := []struct {
		name   string
		build  func(interfaces.LoggerProvider) interfaces.Logger
		module string
	}{
		{name: "expose", build: ExposeLogger, module: exposeModule},
		{name: "link", build: LinkLogger, module: linkModule},
		{name: "rest", build: RESTLogger, module: restModule},
		{name: "directory", build: DirectoryLogger, module: directoryModule},
		{name: "markdown", build: MarkdownLogger, module: markdownModule},
		{name: "root", build: RootLogger, module: rootModule},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			provider := &stubProvider{logger: &recordingLogger{}}
			_ = tc.build(provider)
			if len(provider.requested) == 0 || provider.requested[0] != tc.module {
				t.Fatalf("expected %s module request, got %v", tc.module, provider.requested)
			}
		})
	}
}

func TestWithItemSkipsEmptyValues(t *testing.T) {
	rec := &recordingLogger{}

	_ = WithItem(rec, 42, " post ")
	if len(rec.fields) != 1 {
		t.Fatalf("expected one WithFields call, got %d", len(rec.fields))
	}
	if rec.fields[0]["item_id"] != int64(42) || rec.fields[0]["content_type"] != "post" {
		t.Fatalf("unexpected fields %v", rec.fields[0])
	}

	_ = WithItem(rec, 0, "")
	if len(rec.fields) != 1 {
		t.Fatalf("expected empty item fields to be skipped, got %v", rec.fields)
	}
}

func TestWithFieldsIgnoresLoggersWithoutFieldsSupport(t *testing.T) {
	logger := WithFields(plainLogger{}, map[string]any{"k": "v"})
	if _, ok := logger.(plainLogger); !ok {
		t.Fatalf("expected plain logger to pass through, got %T", logger)
	}
	if _, ok := WithFields(nil, nil).(noopLogger); !ok {
		t.Fatalf("expected nil logger to resolve to noop")
	}
}
