// Package events implements the process-wide inbound game event stream.
//
// The transport publishes every unsolicited event a host forwards onto a
// Bus. Consumers register Taps: a Tap names the event it wants
// ("modem_message", "redstone", ...; empty matches everything) and receives
// its own copy of each matching event on a buffered channel, in arrival
// order. Taps never consume events away from each other — the bus copies an
// event to every matching tap, so unrelated consumers coexist on the one
// stream.
//
// A slow consumer does not stall the transport read loop: when a tap's
// buffer is full the event is dropped for that tap only and counted on
// Tap.Dropped.
package events
