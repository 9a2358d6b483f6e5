package peripheral

import (
	"errors"
	"testing"
)

func TestRegistryResolvePreservesHandle(t *testing.T) {
	r := NewRegistry()
	registerBuiltins(r)

	sess := newFakeSession(nil)
	h := NewHandle(AccessorExpr, "left")

	p, err := r.Resolve(KindDrive, sess, h)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if _, isDrive := p.(*Drive); !isDrive {
		t.Fatalf("Resolve(drive) = %T, want *Drive", p)
	}
	if got := p.Handle(); got.Target() != AccessorExpr || !argsEqual(got.Prepend(), []any{"left"}) {
		t.Errorf("proxy handle = %v, want unmodified %v", got, h)
	}
}

func TestRegistryResolveUnknownKind(t *testing.T) {
	r := NewRegistry()
	_, err := r.Resolve("mymod:unheard_of", newFakeSession(nil), NewHandle(AccessorExpr, "top"))
	if !errors.Is(err, ErrUnknownKind) {
		t.Errorf("Resolve error = %v, want ErrUnknownKind", err)
	}
}

func TestRegistryLastRegistrationWins(t *testing.T) {
	r := NewRegistry()
	r.Register("tank", func(s Session, h Handle) Peripheral { return NewDrive(s, h) })
	r.Register("tank", func(s Session, h Handle) Peripheral { return NewInventory(s, h) })

	p, err := r.Resolve("tank", newFakeSession(nil), NewHandle(AccessorExpr, "top"))
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if _, isInv := p.(*Inventory); !isInv {
		t.Errorf("Resolve = %T, want *Inventory (last registration)", p)
	}
}

func TestRegistryBuiltins(t *testing.T) {
	r := NewRegistry()
	registerBuiltins(r)

	sess := newFakeSession(nil)
	h := NewHandle(AccessorExpr, "bottom")

	tests := []struct {
		kind string
		want string
	}{
		{KindDrive, "*peripheral.Drive"},
		{KindMonitor, "*peripheral.Monitor"},
		{KindComputer, "*peripheral.Computer"},
		{KindTurtle, "*peripheral.Turtle"},
		{KindPrinter, "*peripheral.Printer"},
		{KindSpeaker, "*peripheral.Speaker"},
		{KindCommand, "*peripheral.CommandBlock"},
		{KindWorkbench, "*peripheral.Workbench"},
		{"minecraft:furnace", "*peripheral.Inventory"},
		{"minecraft:chest", "*peripheral.Inventory"},
	}
	for _, tt := range tests {
		p, err := r.Resolve(tt.kind, sess, h)
		if err != nil {
			t.Errorf("Resolve(%q): %v", tt.kind, err)
			continue
		}
		if got := typeName(p); got != tt.want {
			t.Errorf("Resolve(%q) = %s, want %s", tt.kind, got, tt.want)
		}
	}

	// The modem kind stays out of the registry: its dispatch depends on a
	// runtime property, handled in Wrap.
	if _, err := r.Resolve(KindModem, sess, h); !errors.Is(err, ErrUnknownKind) {
		t.Errorf("Resolve(modem) error = %v, want ErrUnknownKind", err)
	}
}

func TestDefaultRegistryOpenForExtension(t *testing.T) {
	Register("craftlinktest:tank", func(s Session, h Handle) Peripheral { return NewInventory(s, h) })

	p, err := Default.Resolve("craftlinktest:tank", newFakeSession(nil), NewHandle(AccessorExpr, "top"))
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if _, isInv := p.(*Inventory); !isInv {
		t.Errorf("Resolve = %T, want *Inventory", p)
	}
}

func TestRegistryKindsSorted(t *testing.T) {
	r := NewRegistry()
	r.Register("b", func(s Session, h Handle) Peripheral { return NewDrive(s, h) })
	r.Register("a", func(s Session, h Handle) Peripheral { return NewDrive(s, h) })

	kinds := r.Kinds()
	if len(kinds) != 2 || kinds[0] != "a" || kinds[1] != "b" {
		t.Errorf("Kinds = %v, want [a b]", kinds)
	}
}

func typeName(v any) string {
	switch v.(type) {
	case *Drive:
		return "*peripheral.Drive"
	case *Monitor:
		return "*peripheral.Monitor"
	case *Computer:
		return "*peripheral.Computer"
	case *Turtle:
		return "*peripheral.Turtle"
	case *Printer:
		return "*peripheral.Printer"
	case *Speaker:
		return "*peripheral.Speaker"
	case *CommandBlock:
		return "*peripheral.CommandBlock"
	case *Workbench:
		return "*peripheral.Workbench"
	case *Inventory:
		return "*peripheral.Inventory"
	case *WirelessModem:
		return "*peripheral.WirelessModem"
	case *WiredModem:
		return "*peripheral.WiredModem"
	default:
		return "unknown"
	}
}
