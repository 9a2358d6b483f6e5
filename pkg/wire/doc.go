// Package wire defines the CraftLink eval-link message format and codec.
//
// Three message shapes travel over a host connection, all CBOR maps with
// integer keys:
//
//   - Request: controller -> host. Carries a message id, a source expression
//     the host evaluates ("return peripheral.call(...)"), and the positional
//     argument vector substituted for "...".
//   - Response: host -> controller. Carries the matching message id, a
//     status, the value vector the evaluation returned, and an error string
//     when the evaluation raised.
//   - Event: host -> controller, unsolicited. Message id 0 marks an event;
//     it carries the game event name ("modem_message", "redstone", ...) and
//     the raw event parameters.
//
// Encoding is deterministic (canonical key order, definite lengths) so a
// request encodes identically on every controller; decoding is lenient so
// newer hosts can add keys without breaking older controllers.
package wire
