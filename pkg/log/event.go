package log

import (
	"time"
)

// Event represents a protocol log event captured at any layer.
type Event struct {
	// Timestamp when the event occurred (nanosecond precision).
	Timestamp time.Time

	// ConnectionID uniquely identifies the host connection (UUID).
	ConnectionID string

	// Direction indicates message flow.
	Direction Direction

	// Category classifies the event type.
	Category Category

	// RemoteAddr is the peer address (IP:port), when known.
	RemoteAddr string

	// MessageID is the eval request/response correlation id (0 for
	// game events and state changes).
	MessageID uint32

	// Expr is the evaluated source expression (requests only).
	Expr string

	// EventName is the game event name (game events only).
	EventName string

	// State is the new connection state (state changes only).
	State string

	// Err carries the error for CategoryError events.
	Err error
}

// Direction indicates the direction of message flow.
type Direction uint8

const (
	// DirectionIn indicates an incoming message.
	DirectionIn Direction = 0
	// DirectionOut indicates an outgoing message.
	DirectionOut Direction = 1
)

// String returns the direction name.
func (d Direction) String() string {
	switch d {
	case DirectionIn:
		return "IN"
	case DirectionOut:
		return "OUT"
	default:
		return "UNKNOWN"
	}
}

// Category classifies the event type.
type Category uint8

const (
	// CategoryRequest indicates an outgoing eval request.
	CategoryRequest Category = 0
	// CategoryResponse indicates an incoming eval response.
	CategoryResponse Category = 1
	// CategoryGameEvent indicates an asynchronous inbound game event.
	CategoryGameEvent Category = 2
	// CategoryState indicates a connection state change.
	CategoryState Category = 3
	// CategoryError indicates an error event.
	CategoryError Category = 4
)

// String returns the category name.
func (c Category) String() string {
	switch c {
	case CategoryRequest:
		return "REQUEST"
	case CategoryResponse:
		return "RESPONSE"
	case CategoryGameEvent:
		return "GAME_EVENT"
	case CategoryState:
		return "STATE"
	case CategoryError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}
