package events

import (
	"sync"
	"sync/atomic"
)

// DefaultTapBuffer is the per-tap channel buffer size.
const DefaultTapBuffer = 64

// Event is an inbound game event as forwarded by the host.
type Event struct {
	// Name is the game event name, e.g. "modem_message".
	Name string

	// Params is the raw event parameter vector.
	Params []any
}

// Bus fans inbound events out to registered taps.
// The zero value is not usable; create with NewBus.
type Bus struct {
	mu        sync.RWMutex
	taps      map[*Tap]struct{}
	closed    bool
	tapBuffer int
}

// NewBus creates a bus with the default per-tap buffer.
func NewBus() *Bus {
	return NewBusWithBuffer(DefaultTapBuffer)
}

// NewBusWithBuffer creates a bus with a custom per-tap buffer size.
func NewBusWithBuffer(tapBuffer int) *Bus {
	if tapBuffer <= 0 {
		tapBuffer = DefaultTapBuffer
	}
	return &Bus{
		taps:      make(map[*Tap]struct{}),
		tapBuffer: tapBuffer,
	}
}

// Publish delivers the event to every matching tap.
// Never blocks: a tap whose buffer is full misses the event and its
// drop counter is incremented.
func (b *Bus) Publish(evt Event) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if b.closed {
		return
	}

	for t := range b.taps {
		if t.name != "" && t.name != evt.Name {
			continue
		}
		select {
		case t.ch <- evt:
		default:
			t.dropped.Add(1)
		}
	}
}

// Tap registers a consumer for events with the given name.
// An empty name matches all events. The caller must Close the tap when done.
func (b *Bus) Tap(name string) *Tap {
	t := &Tap{
		bus:  b,
		name: name,
		ch:   make(chan Event, b.tapBuffer),
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		close(t.ch)
		t.detached = true
		return t
	}
	b.taps[t] = struct{}{}
	return t
}

// Close shuts the bus down and closes every tap's channel.
// Publish becomes a no-op afterwards.
func (b *Bus) Close() {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		return
	}
	b.closed = true
	for t := range b.taps {
		t.detached = true
		close(t.ch)
	}
	b.taps = make(map[*Tap]struct{})
}

// TapCount returns the number of registered taps.
func (b *Bus) TapCount() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.taps)
}

// Tap is one consumer's view of the event stream.
type Tap struct {
	bus  *Bus
	name string
	ch   chan Event

	closeOnce sync.Once
	detached  bool // guarded by bus.mu
	dropped   atomic.Uint64
}

// Events returns the tap's delivery channel. The channel is closed when the
// tap or the bus is closed.
func (t *Tap) Events() <-chan Event {
	return t.ch
}

// Name returns the event name this tap filters on (empty = all).
func (t *Tap) Name() string {
	return t.name
}

// Dropped returns the number of events this tap missed because its buffer
// was full.
func (t *Tap) Dropped() uint64 {
	return t.dropped.Load()
}

// Close detaches the tap from the bus and closes its channel.
// Safe to call more than once.
func (t *Tap) Close() {
	t.closeOnce.Do(func() {
		t.bus.mu.Lock()
		defer t.bus.mu.Unlock()
		if t.detached {
			return
		}
		t.detached = true
		delete(t.bus.taps, t)
		close(t.ch)
	})
}
