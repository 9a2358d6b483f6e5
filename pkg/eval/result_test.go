package eval

import (
	"errors"
	"testing"
)

func TestResultBool(t *testing.T) {
	r := NewResult([]any{true})
	v, err := r.Bool()
	if err != nil {
		t.Fatalf("Bool: %v", err)
	}
	if !v {
		t.Error("Bool = false, want true")
	}
}

func TestResultBoolShapeMismatch(t *testing.T) {
	tests := []struct {
		name   string
		values []any
	}{
		{"string value", []any{"yes"}},
		{"nil value", []any{nil}},
		{"no value", nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewResult(tt.values)
			if _, err := r.Bool(); !errors.Is(err, ErrShapeMismatch) {
				t.Errorf("Bool error = %v, want ErrShapeMismatch", err)
			}
		})
	}
}

func TestResultInt(t *testing.T) {
	tests := []struct {
		name  string
		value any
		want  int64
	}{
		{"int64", int64(-3), -3},
		{"uint64", uint64(27), 27},
		{"integral float", float64(16), 16},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewResult([]any{tt.value})
			got, err := r.Int()
			if err != nil {
				t.Fatalf("Int: %v", err)
			}
			if got != tt.want {
				t.Errorf("Int = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestResultIntRejectsFraction(t *testing.T) {
	r := NewResult([]any{12.5})
	if _, err := r.Int(); !errors.Is(err, ErrShapeMismatch) {
		t.Errorf("Int(12.5) error = %v, want ErrShapeMismatch", err)
	}
}

func TestResultSequentialTakes(t *testing.T) {
	// A cursor read: getCursorPos returns two integers.
	r := NewResult([]any{uint64(4), uint64(7)})

	x, err := r.Int()
	if err != nil {
		t.Fatalf("first Int: %v", err)
	}
	y, err := r.Int()
	if err != nil {
		t.Fatalf("second Int: %v", err)
	}
	if x != 4 || y != 7 {
		t.Errorf("got (%d,%d), want (4,7)", x, y)
	}
	if r.Remaining() != 0 {
		t.Errorf("Remaining = %d, want 0", r.Remaining())
	}
}

func TestResultNone(t *testing.T) {
	if err := NewResult(nil).None(); err != nil {
		t.Errorf("None on empty vector: %v", err)
	}
	if err := NewResult([]any{nil}).None(); err != nil {
		t.Errorf("None on explicit nil: %v", err)
	}
	if err := NewResult([]any{true}).None(); !errors.Is(err, ErrShapeMismatch) {
		t.Errorf("None on value = %v, want ErrShapeMismatch", err)
	}
}

func TestResultOptionString(t *testing.T) {
	s, err := NewResult([]any{"disk"}).OptionString()
	if err != nil || s == nil || *s != "disk" {
		t.Errorf("OptionString(disk) = %v, %v", s, err)
	}

	s, err = NewResult([]any{nil}).OptionString()
	if err != nil || s != nil {
		t.Errorf("OptionString(nil) = %v, %v", s, err)
	}

	s, err = NewResult(nil).OptionString()
	if err != nil || s != nil {
		t.Errorf("OptionString(absent) = %v, %v", s, err)
	}

	if _, err = NewResult([]any{uint64(1)}).OptionString(); !errors.Is(err, ErrShapeMismatch) {
		t.Errorf("OptionString(1) error = %v, want ErrShapeMismatch", err)
	}
}

func TestResultOptionInt(t *testing.T) {
	n, err := NewResult([]any{uint64(12)}).OptionInt()
	if err != nil || n == nil || *n != 12 {
		t.Errorf("OptionInt(12) = %v, %v", n, err)
	}
	n, err = NewResult([]any{nil}).OptionInt()
	if err != nil || n != nil {
		t.Errorf("OptionInt(nil) = %v, %v", n, err)
	}
}

func TestResultOptionStringOrBool(t *testing.T) {
	s, b, err := NewResult([]any{"title"}).OptionStringOrBool()
	if err != nil || s == nil || *s != "title" || b != nil {
		t.Errorf("string case: %v %v %v", s, b, err)
	}

	s, b, err = NewResult([]any{false}).OptionStringOrBool()
	if err != nil || s != nil || b == nil || *b != false {
		t.Errorf("bool case: %v %v %v", s, b, err)
	}

	s, b, err = NewResult([]any{nil}).OptionStringOrBool()
	if err != nil || s != nil || b != nil {
		t.Errorf("nil case: %v %v %v", s, b, err)
	}

	if _, _, err = NewResult([]any{uint64(1)}).OptionStringOrBool(); !errors.Is(err, ErrShapeMismatch) {
		t.Errorf("numeric case error = %v, want ErrShapeMismatch", err)
	}
}

func TestResultStringList(t *testing.T) {
	list, err := NewResult([]any{[]any{"left", "back"}}).StringList()
	if err != nil {
		t.Fatalf("StringList: %v", err)
	}
	if len(list) != 2 || list[0] != "left" || list[1] != "back" {
		t.Errorf("StringList = %v", list)
	}

	if _, err = NewResult([]any{[]any{"left", uint64(2)}}).StringList(); !errors.Is(err, ErrShapeMismatch) {
		t.Errorf("mixed list error = %v, want ErrShapeMismatch", err)
	}
	if _, err = NewResult([]any{"left"}).StringList(); !errors.Is(err, ErrShapeMismatch) {
		t.Errorf("scalar error = %v, want ErrShapeMismatch", err)
	}
}

func TestResultMap(t *testing.T) {
	m, err := NewResult([]any{map[any]any{uint64(1): "stone"}}).Map()
	if err != nil {
		t.Fatalf("Map: %v", err)
	}
	if m[uint64(1)] != "stone" {
		t.Errorf("Map = %v", m)
	}

	// String-keyed maps are normalized.
	m, err = NewResult([]any{map[string]any{"name": "stone"}}).Map()
	if err != nil {
		t.Fatalf("Map(string keys): %v", err)
	}
	if m["name"] != "stone" {
		t.Errorf("Map = %v", m)
	}
}

func TestResultOptionMap(t *testing.T) {
	m, err := NewResult([]any{nil}).OptionMap()
	if err != nil || m != nil {
		t.Errorf("OptionMap(nil) = %v, %v", m, err)
	}
	m, err = NewResult([]any{map[any]any{"a": uint64(1)}}).OptionMap()
	if err != nil || m == nil {
		t.Errorf("OptionMap(map) = %v, %v", m, err)
	}
}

func TestResultTake(t *testing.T) {
	r := NewResult([]any{map[any]any{"x": uint64(1)}})
	v, err := r.Take()
	if err != nil {
		t.Fatalf("Take: %v", err)
	}
	if _, isMap := v.(map[any]any); !isMap {
		t.Errorf("Take = %T, want map", v)
	}
	if _, err = r.Take(); !errors.Is(err, ErrShapeMismatch) {
		t.Errorf("Take on exhausted vector = %v, want ErrShapeMismatch", err)
	}
}

func TestResultValues(t *testing.T) {
	r := NewResult([]any{true, "x", uint64(3)})
	if _, err := r.Bool(); err != nil {
		t.Fatalf("Bool: %v", err)
	}

	vals := r.Values()
	if len(vals) != 2 || vals[0] != "x" {
		t.Errorf("Values = %v", vals)
	}
	// Peeking does not advance the cursor.
	if r.Remaining() != 2 {
		t.Errorf("Remaining = %d, want 2", r.Remaining())
	}
}
