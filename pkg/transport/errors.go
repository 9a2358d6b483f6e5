package transport

import (
	"errors"
)

// Transport errors.
var (
	// ErrConnClosed indicates the host connection is gone.
	ErrConnClosed = errors.New("connection closed")

	// ErrEvalFailed indicates the remote evaluation raised on the host
	// side. The wrapped message carries the host's error text.
	ErrEvalFailed = errors.New("remote evaluation failed")

	// ErrServerRunning indicates Start was called on a running server.
	ErrServerRunning = errors.New("server already running")

	// ErrServerStopped indicates the server is not running.
	ErrServerStopped = errors.New("server not running")
)
