package peripheral

import (
	"fmt"
)

// AccessorExpr is the host expression proxies call through by default.
const AccessorExpr = "peripheral.call"

// ForwardMarker is the prepended argument that routes a call through a
// wired modem to a named far-side device.
const ForwardMarker = "callRemote"

// Handle identifies how to reach a device: the target expression evaluated
// on the host plus the arguments prepended before the caller's own on every
// call. A locally attached device prepends its side; a far-side device
// additionally prepends the forward marker and its name.
//
// Handles are immutable; Extend returns a new one.
type Handle struct {
	target  string
	prepend []any
}

// NewHandle creates a handle for the given target expression and prepended
// arguments.
func NewHandle(target string, prepend ...any) Handle {
	return Handle{
		target:  target,
		prepend: append([]any(nil), prepend...),
	}
}

// Target returns the handle's target expression.
func (h Handle) Target() string {
	return h.target
}

// Prepend returns a copy of the prepended argument list.
func (h Handle) Prepend() []any {
	return append([]any(nil), h.prepend...)
}

// Extend returns a new handle with the same target and the prepended
// argument list extended by args.
func (h Handle) Extend(args ...any) Handle {
	combined := make([]any, 0, len(h.prepend)+len(args))
	combined = append(combined, h.prepend...)
	combined = append(combined, args...)
	return Handle{target: h.target, prepend: combined}
}

// String returns a debug representation.
func (h Handle) String() string {
	return fmt.Sprintf("%s%v", h.target, h.prepend)
}
