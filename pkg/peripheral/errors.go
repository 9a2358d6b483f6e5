package peripheral

import (
	"errors"
)

// Peripheral errors.
var (
	// ErrUnknownKind indicates a device is present but its kind string
	// has no registered constructor. Distinct from absence: a missing
	// device is reported as a nil proxy, not an error.
	ErrUnknownKind = errors.New("unknown peripheral kind")

	// ErrChannelBusy indicates a Receive attempted to reserve a channel
	// the host already reports open. Surfaced before any remote state
	// is mutated.
	ErrChannelBusy = errors.New("channel is busy")

	// ErrSubscriptionClosed indicates a subscription's message stream
	// ended: the subscription was closed or the host connection is gone.
	ErrSubscriptionClosed = errors.New("subscription closed")
)
