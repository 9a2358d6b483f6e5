// Package discovery implements mDNS/DNS-SD discovery for CraftLink gateways.
//
// A gateway advertises the _craftlink._tcp service so that hosts and tools on
// the local network can find its WebSocket endpoint without configuration.
// Instance name format: CraftLink-<gateway-id>.
//
// TXT records carry: id (gateway id), ver (protocol version), path (WebSocket
// path), and optionally name (user-friendly gateway name) and hosts (number
// of connected hosts, refreshed while running).
package discovery
