package peripheral

import (
	"context"
)

// ModemMessageEvent is the game event name carrying modem messages.
const ModemMessageEvent = "modem_message"

// modemOps is the operation set shared by wired and wireless modems.
type modemOps struct {
	Base
}

// IsOpen reports whether the host has the given channel open on this modem.
func (m *modemOps) IsOpen(ctx context.Context, channel int) (bool, error) {
	res, err := m.Call(ctx, "isOpen", channel)
	if err != nil {
		return false, err
	}
	return res.Bool()
}

// Open opens a channel for receiving. Prefer Receive, which pairs the open
// with a guaranteed close.
func (m *modemOps) Open(ctx context.Context, channel int) error {
	res, err := m.Call(ctx, "open", channel)
	if err != nil {
		return err
	}
	return res.None()
}

// Close closes a previously opened channel.
func (m *modemOps) Close(ctx context.Context, channel int) error {
	res, err := m.Call(ctx, "close", channel)
	if err != nil {
		return err
	}
	return res.None()
}

// CloseAll closes every channel open on this modem.
func (m *modemOps) CloseAll(ctx context.Context) error {
	res, err := m.Call(ctx, "closeAll")
	if err != nil {
		return err
	}
	return res.None()
}

// Transmit sends a message on a channel, advertising replyChannel for
// answers. The channel need not be open to transmit.
func (m *modemOps) Transmit(ctx context.Context, channel, replyChannel int, payload any) error {
	res, err := m.Call(ctx, "transmit", channel, replyChannel, payload)
	if err != nil {
		return err
	}
	return res.None()
}

// IsWireless reports whether this modem is wireless.
func (m *modemOps) IsWireless(ctx context.Context) (bool, error) {
	res, err := m.Call(ctx, "isWireless")
	if err != nil {
		return false, err
	}
	return res.Bool()
}

// side returns the side argument the modem's handle is bound to.
// Events report the side as their first parameter, so it is the
// subscription filter key.
func (m *modemOps) side() any {
	if len(m.handle.prepend) == 0 {
		return nil
	}
	return m.handle.prepend[0]
}

// WirelessModem is a wireless network modem.
type WirelessModem struct {
	modemOps
}

// NewWirelessModem creates a wireless modem proxy bound to the given handle.
func NewWirelessModem(sess Session, handle Handle) *WirelessModem {
	return &WirelessModem{modemOps{Base: NewBase(sess, handle)}}
}

// WiredModem is a wired network modem. Beyond the shared modem operations
// it exposes the devices on the far side of its network.
type WiredModem struct {
	modemOps
	registry *Registry
}

// NewWiredModem creates a wired modem proxy bound to the given handle.
// registry resolves far-side device kinds; nil means the default registry.
func NewWiredModem(sess Session, handle Handle, registry *Registry) *WiredModem {
	if registry == nil {
		registry = Default
	}
	return &WiredModem{
		modemOps: modemOps{Base: NewBase(sess, handle)},
		registry: registry,
	}
}

// NameLocal returns the name this computer is known by on the modem's
// network, or nil when the modem is inactive.
func (m *WiredModem) NameLocal(ctx context.Context) (*string, error) {
	res, err := m.Call(ctx, "getNameLocal")
	if err != nil {
		return nil, err
	}
	return res.OptionString()
}

// NamesRemote lists the devices reachable on the far side of the network.
func (m *WiredModem) NamesRemote(ctx context.Context) ([]string, error) {
	res, err := m.Call(ctx, "getNamesRemote")
	if err != nil {
		return nil, err
	}
	return res.StringList()
}

// TypeRemote returns the kind identifier of a far-side device, or nil when
// no device by that name is reachable.
func (m *WiredModem) TypeRemote(ctx context.Context, name string) (*string, error) {
	res, err := m.Call(ctx, "getTypeRemote", name)
	if err != nil {
		return nil, err
	}
	return res.OptionString()
}

// IsPresentRemote reports whether a far-side device by that name is reachable.
func (m *WiredModem) IsPresentRemote(ctx context.Context, name string) (bool, error) {
	res, err := m.Call(ctx, "isPresentRemote", name)
	if err != nil {
		return false, err
	}
	return res.Bool()
}

// WrapRemote constructs a proxy for a far-side device.
//
// The proxy shares the modem's target expression and side; its prepend
// vector is extended with the forward marker and the device name, so every
// operation is routed through the modem as one flat call — no nested
// round-trip, no second connection. Returns (nil, nil) when no device by
// that name is reachable.
//
// Far-side devices are assumed not to be bridges themselves: forwarding
// composes one level deep, matching what the host supports.
func (m *WiredModem) WrapRemote(ctx context.Context, name string) (Peripheral, error) {
	kind, err := m.TypeRemote(ctx, name)
	if err != nil {
		return nil, err
	}
	if kind == nil {
		return nil, nil
	}

	handle := m.Handle().Extend(ForwardMarker, name)
	return m.registry.Resolve(*kind, m.Session(), handle)
}
