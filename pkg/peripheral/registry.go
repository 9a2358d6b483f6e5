package peripheral

import (
	"fmt"
	"sort"
	"sync"
)

// Built-in kind identifiers as reported by the host.
const (
	KindDrive     = "drive"
	KindMonitor   = "monitor"
	KindComputer  = "computer"
	KindTurtle    = "turtle"
	KindPrinter   = "printer"
	KindSpeaker   = "speaker"
	KindCommand   = "command"
	KindWorkbench = "workbench"

	// KindModem is never registered: the wired/wireless split is decided
	// by a runtime query, so Wrap special-cases it before registry lookup.
	KindModem = "modem"
)

// InventoryKinds are the namespaced container kinds served by the generic
// inventory proxy.
var InventoryKinds = []string{
	"minecraft:chest",
	"minecraft:furnace",
	"minecraft:barrel",
	"minecraft:hopper",
	"minecraft:dropper",
	"minecraft:dispenser",
	"minecraft:blast_furnace",
	"minecraft:smoker",
	"minecraft:shulker_box",
	"minecraft:brewing_stand",
}

// Constructor produces a proxy for a freshly discovered device.
type Constructor func(sess Session, handle Handle) Peripheral

// Registry maps device kind identifiers to proxy constructors.
// The kind vocabulary is open: third-party devices register additional
// kinds. Safe for concurrent use; registration overwrites (last wins).
type Registry struct {
	mu    sync.RWMutex
	kinds map[string]Constructor
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{kinds: make(map[string]Constructor)}
}

// Register maps a kind identifier to a constructor, replacing any previous
// registration for that kind.
func (r *Registry) Register(kind string, ctor Constructor) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.kinds[kind] = ctor
}

// Resolve instantiates the proxy registered for kind.
// Fails with ErrUnknownKind when no constructor is registered.
func (r *Registry) Resolve(kind string, sess Session, handle Handle) (Peripheral, error) {
	r.mu.RLock()
	ctor, ok := r.kinds[kind]
	r.mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownKind, kind)
	}
	return ctor(sess, handle), nil
}

// Kinds returns the registered kind identifiers, sorted.
func (r *Registry) Kinds() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]string, 0, len(r.kinds))
	for k := range r.kinds {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// Default is the process-wide registry. All built-in kinds are registered
// before first use; third parties add kinds with the package-level Register.
var Default = NewRegistry()

// Register maps a kind to a constructor in the default registry.
func Register(kind string, ctor Constructor) {
	Default.Register(kind, ctor)
}

func init() {
	registerBuiltins(Default)
}

func registerBuiltins(r *Registry) {
	r.Register(KindDrive, func(s Session, h Handle) Peripheral { return NewDrive(s, h) })
	r.Register(KindMonitor, func(s Session, h Handle) Peripheral { return NewMonitor(s, h) })
	r.Register(KindComputer, func(s Session, h Handle) Peripheral { return NewComputer(s, h) })
	r.Register(KindTurtle, func(s Session, h Handle) Peripheral { return NewTurtle(s, h) })
	r.Register(KindPrinter, func(s Session, h Handle) Peripheral { return NewPrinter(s, h) })
	r.Register(KindSpeaker, func(s Session, h Handle) Peripheral { return NewSpeaker(s, h) })
	r.Register(KindCommand, func(s Session, h Handle) Peripheral { return NewCommandBlock(s, h) })
	r.Register(KindWorkbench, func(s Session, h Handle) Peripheral { return NewWorkbench(s, h) })
	for _, kind := range InventoryKinds {
		r.Register(kind, func(s Session, h Handle) Peripheral { return NewInventory(s, h) })
	}
}
