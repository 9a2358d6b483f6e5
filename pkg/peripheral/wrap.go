package peripheral

import (
	"context"

	"github.com/craftlink/craftlink-go/pkg/eval"
)

// accessor evaluates a method of the host's peripheral accessor
// ("peripheral.isPresent", "peripheral.getType", ...).
func accessor(ctx context.Context, sess Session, method string, args ...any) (*eval.Result, error) {
	return sess.Eval(ctx, "return peripheral."+method+"(...)", args...)
}

// IsPresent reports whether a device is attached at the given side.
func IsPresent(ctx context.Context, sess Session, side string) (bool, error) {
	res, err := accessor(ctx, sess, "isPresent", side)
	if err != nil {
		return false, err
	}
	return res.Bool()
}

// TypeOf returns the kind identifier of the device at the given side,
// or nil when no device is attached.
func TypeOf(ctx context.Context, sess Session, side string) (*string, error) {
	res, err := accessor(ctx, sess, "getType", side)
	if err != nil {
		return nil, err
	}
	return res.OptionString()
}

// Names lists the sides and network names with an attached device.
func Names(ctx context.Context, sess Session) ([]string, error) {
	res, err := accessor(ctx, sess, "getNames")
	if err != nil {
		return nil, err
	}
	return res.StringList()
}

// Wrap discovers the device at the given side and constructs its proxy
// through the default registry. Returns (nil, nil) when no device is
// attached, and ErrUnknownKind when a device is present but its kind has
// no registered constructor.
func Wrap(ctx context.Context, sess Session, side string) (Peripheral, error) {
	return Default.Wrap(ctx, sess, side)
}

// Wrap discovers the device at the given side and constructs its proxy.
//
// The modem kind is resolved before registry lookup: the host reports wired
// and wireless modems under the one kind string, so one extra remote call
// asks the device itself and picks the specialization.
func (r *Registry) Wrap(ctx context.Context, sess Session, side string) (Peripheral, error) {
	kind, err := TypeOf(ctx, sess, side)
	if err != nil {
		return nil, err
	}
	if kind == nil {
		return nil, nil
	}

	handle := NewHandle(AccessorExpr, side)

	if *kind == KindModem {
		res, err := accessor(ctx, sess, "call", side, "isWireless")
		if err != nil {
			return nil, err
		}
		wireless, err := res.Bool()
		if err != nil {
			return nil, err
		}
		if wireless {
			return NewWirelessModem(sess, handle), nil
		}
		return NewWiredModem(sess, handle, r), nil
	}

	return r.Resolve(*kind, sess, handle)
}
