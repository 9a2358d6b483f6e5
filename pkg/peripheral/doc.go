// Package peripheral provides typed proxies for devices attached to a
// CraftLink host.
//
// A proxy is bound to a Handle: the accessor expression evaluated on the
// host ("peripheral.call") plus the arguments prepended before the caller's
// own on every call (the physical side, and for far-side devices the
// callRemote marker and device name). Proxies are stateless beyond the
// handle; they cache no remote state and need no teardown.
//
// Discovery runs through Wrap: the host reports a kind string for a side,
// the kind resolves through a Registry to a constructor, and the constructor
// produces the specialized proxy. The modem kind is special-cased before the
// registry because the wired/wireless split is a runtime property, not a
// kind string. Third parties extend the vocabulary with Register.
//
// A wired modem reaches devices on the far side of its network without a
// second connection: WrapRemote composes a proxy whose handle extends the
// modem's own prepend vector with the callRemote marker and the far-side
// name, so every operation stays a single flat call.
//
// Modem message reception is a reserved-channel subscription: Receive
// refuses a channel the host already reports open, opens it, and delivers
// matching messages until the consumer closes the subscription — at which
// point the channel is closed on the host exactly once, however the
// subscription ended.
package peripheral
