// Package log provides structured protocol logging for CraftLink.
//
// This package defines the Logger interface and Event types for capturing
// link-level events: eval requests going out, responses and inbound game
// events coming in, connection state changes, and errors. It is separate
// from operational logging (slog); a protocol trace is machine-readable
// and complete, suitable for replaying a session against a host.
//
// Applications configure logging by providing a Logger implementation:
//
//	// For development: log to console via slog
//	cfg.Logger = log.NewSlogAdapter(slog.Default())
//
//	// Both console and a custom sink: use MultiLogger
//	cfg.Logger = log.NewMultiLogger(log.NewSlogAdapter(slog.Default()), sink)
//
// Pass nil or NoopLogger to disable capture entirely.
package log
