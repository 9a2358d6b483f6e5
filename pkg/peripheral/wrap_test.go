package peripheral

import (
	"context"
	"errors"
	"fmt"
	"testing"
)

func TestIsPresent(t *testing.T) {
	sess := newFakeSession(func(expr string, args []any) ([]any, error) {
		return []any{true}, nil
	})

	present, err := IsPresent(context.Background(), sess, "left")
	if err != nil {
		t.Fatalf("IsPresent: %v", err)
	}
	if !present {
		t.Error("IsPresent = false, want true")
	}

	calls := sess.callLog()
	if len(calls) != 1 {
		t.Fatalf("call count = %d, want 1", len(calls))
	}
	if calls[0].expr != "return peripheral.isPresent(...)" {
		t.Errorf("expr = %q", calls[0].expr)
	}
	if !argsEqual(calls[0].args, []any{"left"}) {
		t.Errorf("args = %v", calls[0].args)
	}
}

func TestNames(t *testing.T) {
	sess := newFakeSession(func(expr string, args []any) ([]any, error) {
		return []any{[]any{"left", "top", "furnace_0"}}, nil
	})

	names, err := Names(context.Background(), sess)
	if err != nil {
		t.Fatalf("Names: %v", err)
	}
	if len(names) != 3 || names[2] != "furnace_0" {
		t.Errorf("names = %v", names)
	}
}

func TestWrapAbsentSide(t *testing.T) {
	sess := newFakeSession(func(expr string, args []any) ([]any, error) {
		return []any{nil}, nil
	})

	p, err := Wrap(context.Background(), sess, "top")
	if err != nil {
		t.Fatalf("Wrap: %v", err)
	}
	if p != nil {
		t.Errorf("Wrap = %T, want nil for an empty side", p)
	}
	if n := len(sess.callLog()); n != 1 {
		t.Errorf("call count = %d, want only the type query", n)
	}
}

func TestWrapDrive(t *testing.T) {
	sess := newFakeSession(func(expr string, args []any) ([]any, error) {
		return []any{"drive"}, nil
	})

	p, err := Wrap(context.Background(), sess, "left")
	if err != nil {
		t.Fatalf("Wrap: %v", err)
	}
	drive, ok := p.(*Drive)
	if !ok {
		t.Fatalf("Wrap = %T, want *Drive", p)
	}
	h := drive.Handle()
	if h.Target() != AccessorExpr || !argsEqual(h.Prepend(), []any{"left"}) {
		t.Errorf("handle = %v", h)
	}
}

func TestWrapUnknownKind(t *testing.T) {
	sess := newFakeSession(func(expr string, args []any) ([]any, error) {
		return []any{"mymod:unheard_of"}, nil
	})

	_, err := Wrap(context.Background(), sess, "left")
	if !errors.Is(err, ErrUnknownKind) {
		t.Errorf("Wrap error = %v, want ErrUnknownKind", err)
	}
}

func TestWrapModemSpecialization(t *testing.T) {
	tests := []struct {
		name     string
		wireless bool
	}{
		{"wireless", true},
		{"wired", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sess := newFakeSession(func(expr string, args []any) ([]any, error) {
				if expr == "return peripheral.getType(...)" {
					return []any{"modem"}, nil
				}
				// The runtime probe deciding the specialization.
				if !argsEqual(args, []any{"right", "isWireless"}) {
					return nil, fmt.Errorf("unexpected call: %q %v", expr, args)
				}
				return []any{tt.wireless}, nil
			})

			p, err := Wrap(context.Background(), sess, "right")
			if err != nil {
				t.Fatalf("Wrap: %v", err)
			}
			_, isWireless := p.(*WirelessModem)
			_, isWired := p.(*WiredModem)
			if isWireless != tt.wireless || isWired == tt.wireless {
				t.Errorf("Wrap = %T, wireless = %v", p, tt.wireless)
			}
			if n := len(sess.callLog()); n != 2 {
				t.Errorf("call count = %d, want type query plus probe", n)
			}
		})
	}
}

// End to end through a wrapped proxy: one flat accessor call per operation.
func TestWrappedModemCallShape(t *testing.T) {
	sess := newFakeSession(func(expr string, args []any) ([]any, error) {
		switch expr {
		case "return peripheral.getType(...)":
			return []any{"modem"}, nil
		case "return peripheral.call(...)":
			switch args[1] {
			case "isWireless":
				return []any{true}, nil
			case "isOpen":
				return []any{true}, nil
			}
		}
		return nil, fmt.Errorf("unexpected call: %q %v", expr, args)
	})

	p, err := Wrap(context.Background(), sess, "left")
	if err != nil {
		t.Fatalf("Wrap: %v", err)
	}
	modem := p.(*WirelessModem)

	open, err := modem.IsOpen(context.Background(), 5)
	if err != nil {
		t.Fatalf("IsOpen: %v", err)
	}
	if !open {
		t.Error("IsOpen = false, want true")
	}

	calls := sess.callLog()
	last := calls[len(calls)-1]
	if last.expr != "return peripheral.call(...)" {
		t.Errorf("expr = %q", last.expr)
	}
	if !argsEqual(last.args, []any{"left", "isOpen", 5}) {
		t.Errorf("args = %v", last.args)
	}
}

func TestWrapRemoteError(t *testing.T) {
	wantErr := errors.New("connection lost")
	sess := newFakeSession(func(expr string, args []any) ([]any, error) {
		return nil, wantErr
	})

	_, err := Wrap(context.Background(), sess, "left")
	if !errors.Is(err, wantErr) {
		t.Errorf("Wrap error = %v, want %v", err, wantErr)
	}
}
