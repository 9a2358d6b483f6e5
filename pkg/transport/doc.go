// Package transport implements the CraftLink eval link.
//
// The controller runs a WebSocket server; the in-game host dials it and
// keeps one long-lived connection. Each Conn carries concurrent eval
// round-trips (atomic message ids, a pending-response map) and routes
// unsolicited game events onto a per-connection events.Bus.
//
// Conn implements eval.Evaluator and peripheral.Session: one Eval call is
// exactly one remote round-trip, never retried. A failed round-trip — host
// unreachable, connection torn down, or the evaluation raising remotely —
// surfaces as an error wrapping ErrEvalFailed or ErrConnClosed; decoding
// the returned values is the caller's concern (package eval).
package transport
