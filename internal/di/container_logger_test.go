package di

import (
	"testing"

	"github.com/goliatone/go-langlink/internal/logging/gologger"
	"github.com/goliatone/go-langlink/internal/runtimeconfig"
	"github.com/goliatone/go-langlink/pkg/interfaces"
)

func TestConfigureLoggerProviderUsesGoLoggerAdapter(t *testing.T) {
	cfg := runtimeconfig.DefaultConfig()
	cfg.Features.Logger = true
	cfg.Logging.Provider = "gologger"
	cfg.Logging.Level = "debug"
	cfg.Logging.Format = "json"

	container := newTestContainer(t, cfg)

	provider, ok := container.LoggerProvider().(*gologger.Provider)
	if !ok {
		t.Fatalf("expected go-logger provider, got %T", container.LoggerProvider())
	}
	if logger := provider.GetLogger("langlink.test"); logger == nil {
		t.Fatal("expected logger from go-logger provider, got nil")
	}
}

func TestConfigureLoggerProviderNoop(t *testing.T) {
	cfg := runtimeconfig.DefaultConfig()
	cfg.Logging.Provider = "noop"

	container := newTestContainer(t, cfg)
	if container.LoggerProvider() != nil {
		t.Fatalf("expected no provider, got %T", container.LoggerProvider())
	}
}

type stubProvider struct{ names []string }

func (s *stubProvider) GetLogger(name string) interfaces.Logger {
	s.names = append(s.names, name)
	return nil
}

func TestWithLoggerProviderOverridesConfig(t *testing.T) {
	stub := &stubProvider{}
	container := newTestContainer(t, runtimeconfig.DefaultConfig(), WithLoggerProvider(stub))
	if container.LoggerProvider() != stub {
		t.Fatal("expected override provider")
	}
	if len(stub.names) == 0 {
		t.Fatal("expected module loggers to be requested from the provider")
	}
}
