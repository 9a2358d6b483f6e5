package discovery

import (
	"fmt"
	"net"
	"sync"

	"github.com/enbility/zeroconf/v3"
)

// Advertiser announces a gateway via mDNS.
type Advertiser struct {
	config AdvertiserConfig

	mu     sync.Mutex
	info   *GatewayInfo
	server *zeroconf.Server
}

// NewAdvertiser creates a new mDNS advertiser.
func NewAdvertiser(config AdvertiserConfig) *Advertiser {
	return &Advertiser{config: config}
}

// getInterfaces returns the network interfaces to use for advertising.
// Returns nil to use all interfaces.
func (a *Advertiser) getInterfaces() []net.Interface {
	if a.config.Interface == "" {
		return nil
	}

	iface, err := net.InterfaceByName(a.config.Interface)
	if err != nil {
		return nil
	}
	return []net.Interface{*iface}
}

// Advertise starts announcing the gateway. One advertisement per Advertiser;
// call Stop before advertising again.
func (a *Advertiser) Advertise(info *GatewayInfo) error {
	if info.GatewayID == "" {
		return fmt.Errorf("%w: gateway id", ErrMissingRequired)
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	if a.server != nil {
		return ErrAlreadyAdvertising
	}

	instanceName := InstanceName(info.GatewayID)
	if err := ValidateInstanceName(instanceName); err != nil {
		return err
	}

	txtStrings := TXTRecordsToStrings(EncodeGatewayTXT(info))

	var opts []zeroconf.ServerOption
	if a.config.TTL > 0 {
		opts = append(opts, zeroconf.TTL(uint32(a.config.TTL.Seconds())))
	}

	server, err := zeroconf.Register(
		instanceName,
		ServiceType,
		Domain,
		info.Port,
		txtStrings,
		a.getInterfaces(),
		opts...,
	)
	if err != nil {
		return fmt.Errorf("failed to register gateway service: %w", err)
	}

	infoCopy := *info
	a.info = &infoCopy
	a.server = server
	return nil
}

// SetHosts refreshes the advertised connected host count.
func (a *Advertiser) SetHosts(hosts int) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.server == nil {
		return ErrNotFound
	}

	a.info.Hosts = hosts
	a.server.SetText(TXTRecordsToStrings(EncodeGatewayTXT(a.info)))
	return nil
}

// Stop withdraws the advertisement.
func (a *Advertiser) Stop() {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.server != nil {
		a.server.Shutdown()
		a.server = nil
		a.info = nil
	}
}
