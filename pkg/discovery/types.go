package discovery

import (
	"errors"
	"time"
)

// Service constants for mDNS.
const (
	// ServiceType is the DNS-SD service type gateways advertise under.
	ServiceType = "_craftlink._tcp"

	// Domain is the mDNS domain.
	Domain = "local"

	// ProtocolVersion is the advertised wire protocol version.
	ProtocolVersion = 1
)

// TXT record key constants.
const (
	TXTKeyGatewayID = "id"   // Gateway id
	TXTKeyVersion   = "ver"  // Protocol version
	TXTKeyPath      = "path" // WebSocket path
	TXTKeyName      = "name" // User-friendly gateway name (optional)
	TXTKeyHosts     = "hn"   // Connected host count (optional)
)

// Timing constants.
const (
	// DefaultTTL is the DNS record TTL.
	DefaultTTL = 120 * time.Second

	// BrowseTimeout is the default timeout for mDNS browsing.
	BrowseTimeout = 10 * time.Second
)

// MaxInstanceNameLen is the DNS label limit.
const MaxInstanceNameLen = 63

// Discovery errors.
var (
	ErrMissingRequired     = errors.New("missing required field")
	ErrInvalidTXTRecord    = errors.New("invalid TXT record format")
	ErrInstanceNameInvalid = errors.New("invalid instance name")
	ErrNotFound            = errors.New("service not found")
	ErrAlreadyAdvertising  = errors.New("already advertising")
)

// GatewayInfo contains the information a gateway advertises.
type GatewayInfo struct {
	// GatewayID identifies this gateway instance.
	GatewayID string

	// Name is an optional user-friendly gateway name.
	Name string

	// Path is the WebSocket path hosts connect to.
	Path string

	// Hosts is the number of currently connected hosts.
	Hosts int

	// Port is the service port.
	Port int
}

// GatewayService represents a gateway found via mDNS.
type GatewayService struct {
	// InstanceName is the mDNS instance name (e.g. "CraftLink-a1b2c3").
	InstanceName string

	// Host is the hostname (e.g. "gateway-01.local").
	Host string

	// Port is the service port.
	Port int

	// Addresses contains resolved IP addresses.
	Addresses []string

	// GatewayID is the gateway id (from TXT "id").
	GatewayID string

	// Version is the protocol version (from TXT "ver").
	Version int

	// Path is the WebSocket path (from TXT "path").
	Path string

	// Name is the optional user-friendly name (from TXT "name").
	Name string

	// Hosts is the advertised connected host count (from TXT "hn").
	Hosts int
}

// AdvertiserConfig configures advertiser behavior.
type AdvertiserConfig struct {
	// Interface specifies which network interface to use.
	// Empty string means all interfaces.
	Interface string

	// TTL is the DNS record TTL. Default: DefaultTTL.
	TTL time.Duration
}

// DefaultAdvertiserConfig returns the default advertiser configuration.
func DefaultAdvertiserConfig() AdvertiserConfig {
	return AdvertiserConfig{
		Interface: "",
		TTL:       DefaultTTL,
	}
}

// BrowserConfig configures browser behavior.
type BrowserConfig struct {
	// Interface specifies which network interface to browse on.
	// Empty string means all interfaces.
	Interface string
}
