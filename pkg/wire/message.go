package wire

import (
	"fmt"
)

// CBOR map keys for message encoding.
// All CraftLink messages use integer keys for efficiency. Key 1 is the
// message id on every shape; the remaining keys are disjoint per shape so
// the message type can be determined without a discriminator field.
const (
	KeyMessageID = 1

	// Request keys
	KeyExpr = 2
	KeyArgs = 3

	// Response keys
	KeyStatus = 4
	KeyValues = 5
	KeyError  = 6

	// Event keys (messageId=0 indicates an event)
	KeyEventName   = 7
	KeyEventParams = 8
)

// EventMessageID is the message id carried by all event messages.
const EventMessageID uint32 = 0

// Status represents a response status code.
type Status uint8

const (
	// StatusOK indicates the evaluation completed and returned values.
	StatusOK Status = 0

	// StatusEvalError indicates the evaluation raised on the host side.
	// The Response Error field carries the host's error text.
	StatusEvalError Status = 1
)

// String returns the status name.
func (s Status) String() string {
	switch s {
	case StatusOK:
		return "OK"
	case StatusEvalError:
		return "EVAL_ERROR"
	default:
		return fmt.Sprintf("STATUS(%d)", uint8(s))
	}
}

// IsSuccess returns true for StatusOK.
func (s Status) IsSuccess() bool {
	return s == StatusOK
}

// Request is a remote-evaluation request.
type Request struct {
	// MessageID correlates the response. Must be non-zero; zero is
	// reserved for events.
	MessageID uint32 `cbor:"1,keyasint"`

	// Expr is the source expression the host evaluates. The host
	// substitutes Args for the "..." vararg.
	Expr string `cbor:"2,keyasint"`

	// Args is the positional argument vector.
	Args []any `cbor:"3,keyasint,omitempty"`
}

// Validate checks the request is well-formed.
func (r *Request) Validate() error {
	if r.MessageID == EventMessageID {
		return fmt.Errorf("request messageId must be non-zero")
	}
	if r.Expr == "" {
		return fmt.Errorf("request expr must not be empty")
	}
	return nil
}

// Response is the result of a remote evaluation.
type Response struct {
	// MessageID matches the request.
	MessageID uint32 `cbor:"1,keyasint"`

	// Status reports whether the evaluation succeeded.
	Status Status `cbor:"4,keyasint"`

	// Values is the value vector the evaluation returned.
	// Lua functions return multiple values; order is preserved.
	Values []any `cbor:"5,keyasint,omitempty"`

	// Error is the host's error text when Status is StatusEvalError.
	Error string `cbor:"6,keyasint,omitempty"`
}

// Event is an unsolicited game event forwarded by the host.
type Event struct {
	// Name is the game event name, e.g. "modem_message".
	Name string `cbor:"7,keyasint"`

	// Params is the raw event parameter vector.
	Params []any `cbor:"8,keyasint,omitempty"`
}
