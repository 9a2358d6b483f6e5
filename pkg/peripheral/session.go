package peripheral

import (
	"context"

	"github.com/craftlink/craftlink-go/pkg/eval"
	"github.com/craftlink/craftlink-go/pkg/events"
)

// Session is the host connection a proxy calls through.
// transport.Conn implements it.
type Session interface {
	// Eval evaluates a source expression on the host.
	Eval(ctx context.Context, expr string, args ...any) (*eval.Result, error)

	// CaptureEvents registers a tap for inbound game events with the
	// given name. The caller must Close the tap when done.
	CaptureEvents(name string) *events.Tap
}
