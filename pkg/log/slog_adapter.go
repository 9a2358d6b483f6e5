package log

import (
	"context"
	"log/slog"
)

// SlogAdapter writes protocol events to an slog.Logger.
// Useful for development when you want to see protocol events in console.
type SlogAdapter struct {
	logger *slog.Logger
}

// NewSlogAdapter creates a new SlogAdapter that writes to the given slog.Logger.
func NewSlogAdapter(logger *slog.Logger) *SlogAdapter {
	return &SlogAdapter{logger: logger}
}

// Log writes the event to the slog logger at Debug level
// (Error level for CategoryError events).
func (a *SlogAdapter) Log(event Event) {
	attrs := []slog.Attr{
		slog.String("conn_id", event.ConnectionID),
		slog.String("direction", event.Direction.String()),
		slog.String("category", event.Category.String()),
	}

	if event.RemoteAddr != "" {
		attrs = append(attrs, slog.String("remote_addr", event.RemoteAddr))
	}
	if event.MessageID != 0 {
		attrs = append(attrs, slog.Uint64("msg_id", uint64(event.MessageID)))
	}
	if event.Expr != "" {
		attrs = append(attrs, slog.String("expr", event.Expr))
	}
	if event.EventName != "" {
		attrs = append(attrs, slog.String("event", event.EventName))
	}
	if event.State != "" {
		attrs = append(attrs, slog.String("state", event.State))
	}

	level := slog.LevelDebug
	if event.Err != nil {
		level = slog.LevelError
		attrs = append(attrs, slog.String("error", event.Err.Error()))
	}

	a.logger.LogAttrs(context.Background(), level, "craftlink", attrs...)
}

// Compile-time interface satisfaction check.
var _ Logger = (*SlogAdapter)(nil)
