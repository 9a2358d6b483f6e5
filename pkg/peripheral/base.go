package peripheral

import (
	"context"

	"github.com/craftlink/craftlink-go/pkg/eval"
)

// Peripheral is a typed proxy bound to exactly one device handle.
type Peripheral interface {
	// Handle returns the device handle the proxy calls through.
	Handle() Handle
}

// Base carries the session and handle every proxy calls through.
// Embed it when implementing a third-party kind:
//
//	type Tank struct{ peripheral.Base }
//
//	func (t *Tank) Level(ctx context.Context) (int64, error) {
//		res, err := t.Call(ctx, "getLevel")
//		if err != nil {
//			return 0, err
//		}
//		return res.Int()
//	}
type Base struct {
	sess   Session
	handle Handle
}

// NewBase creates a Base bound to the given session and handle.
func NewBase(sess Session, handle Handle) Base {
	return Base{sess: sess, handle: handle}
}

// Handle returns the device handle.
func (b *Base) Handle() Handle {
	return b.handle
}

// Session returns the host session.
func (b *Base) Session() Session {
	return b.sess
}

// Call invokes a named method on the device: the handle's target expression
// is evaluated with the prepended arguments, then the method name, then
// args, as one flat call. Exactly one remote round-trip.
func (b *Base) Call(ctx context.Context, method string, args ...any) (*eval.Result, error) {
	callArgs := make([]any, 0, len(b.handle.prepend)+1+len(args))
	callArgs = append(callArgs, b.handle.prepend...)
	callArgs = append(callArgs, method)
	callArgs = append(callArgs, args...)
	return b.sess.Eval(ctx, "return "+b.handle.target+"(...)", callArgs...)
}

// Compile-time interface satisfaction check.
var _ Peripheral = (*Base)(nil)
