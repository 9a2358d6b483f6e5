package eval

import (
	"context"
)

// Evaluator executes a source expression on the remote host.
//
// The expression is evaluated with args substituted for its "..." vararg.
// A returned error means the round-trip itself failed (host unreachable,
// the evaluation raised remotely); a non-nil Result means the evaluation
// completed and its return vector is available for typed extraction.
//
// Implementations must be safe for concurrent use; every call is exactly
// one remote round-trip, never retried.
type Evaluator interface {
	Eval(ctx context.Context, expr string, args ...any) (*Result, error)
}
