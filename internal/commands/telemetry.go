package commands

import (
	"context"
	"time"

	command "github.com/goliatone/go-command"

	"github.com/goliatone/go-langlink/internal/logging"
	"github.com/goliatone/go-langlink/pkg/interfaces"
)

// TelemetryStatus is the result category of one langlink command.
type TelemetryStatus string

const (
	TelemetryStatusSuccess      TelemetryStatus = "success"
	TelemetryStatusFailed       TelemetryStatus = "failed"
	TelemetryStatusContextError TelemetryStatus = "context_error"
)

// ItemScoped is implemented by messages that act on one content item, so
// telemetry can name the item whose language or group the command touched.
type ItemScoped interface {
	TargetItem() int64
}

// TelemetryInfo describes a command execution outcome. ItemID is zero for
// messages that are not ItemScoped.
type TelemetryInfo struct {
	Command   string
	Operation string
	ItemID    int64
	Fields    map[string]any
	Duration  time.Duration
	Error     error
	Status    TelemetryStatus
}

// Telemetry is invoked once after every execution that passed validation.
type Telemetry[T command.Message] func(ctx context.Context, msg T, info TelemetryInfo)

// DefaultTelemetry logs command outcomes with the supplied logger, scoping
// the entry to the item when the message names one. Cancellations are logged
// at warn.
func DefaultTelemetry[T command.Message](logger interfaces.Logger) Telemetry[T] {
	logger = logging.Ensure(logger)
	return func(_ context.Context, _ T, info TelemetryInfo) {
		entry := logging.WithFields(logger, info.Fields)
		if info.ItemID > 0 {
			entry = logging.WithItem(entry, info.ItemID, "")
		}
		args := []any{"duration_ms", info.Duration.Milliseconds()}
		switch info.Status {
		case TelemetryStatusSuccess:
			entry.Info("langlink.command.success", args...)
		case TelemetryStatusContextError:
			entry.Warn("langlink.command.context_error", append(args, "error", info.Error)...)
		default:
			entry.Error("langlink.command.failed", append(args, "error", info.Error)...)
		}
	}
}
