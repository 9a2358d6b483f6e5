package eval

import (
	"errors"
	"fmt"
	"math"
)

// ErrShapeMismatch indicates a result extraction did not match the shape of
// the underlying value. It marks a protocol mismatch between a proxy and the
// remote host; callers should treat it as fatal for the call.
var ErrShapeMismatch = errors.New("result shape mismatch")

// Result is a cursor over the value vector a remote evaluation returned.
//
// Typed take operations consume values left to right, so a call returning
// two integers is read with two Int() calls. A Result is not safe for
// concurrent use; it belongs to the single caller that made the evaluation.
type Result struct {
	values []any
	pos    int
}

// NewResult creates a Result over the given return vector.
func NewResult(values []any) *Result {
	return &Result{values: values}
}

// Remaining returns the number of values not yet consumed.
func (r *Result) Remaining() int {
	return len(r.values) - r.pos
}

// Values returns a copy of the values not yet consumed, without advancing
// the cursor. Intended for generic display and debugging.
func (r *Result) Values() []any {
	return append([]any(nil), r.values[r.pos:]...)
}

// next consumes and returns the next value. The second return reports
// whether a value was present.
func (r *Result) next() (any, bool) {
	if r.pos >= len(r.values) {
		return nil, false
	}
	v := r.values[r.pos]
	r.pos++
	return v, true
}

func shapeErr(want string, got any, present bool) error {
	if !present {
		return fmt.Errorf("%w: expected %s, got no value", ErrShapeMismatch, want)
	}
	return fmt.Errorf("%w: expected %s, got %T", ErrShapeMismatch, want, got)
}

// Take consumes and returns the next raw value without a shape check.
// It fails only when the vector is exhausted.
func (r *Result) Take() (any, error) {
	v, ok := r.next()
	if !ok {
		return nil, shapeErr("a value", nil, false)
	}
	return v, nil
}

// None asserts the evaluation returned no further value.
// A trailing nil counts as no value.
func (r *Result) None() error {
	v, ok := r.next()
	if !ok || v == nil {
		return nil
	}
	return fmt.Errorf("%w: expected no value, got %T", ErrShapeMismatch, v)
}

// Bool consumes the next value as a boolean.
func (r *Result) Bool() (bool, error) {
	v, ok := r.next()
	b, isBool := v.(bool)
	if !ok || !isBool {
		return false, shapeErr("bool", v, ok)
	}
	return b, nil
}

// Int consumes the next value as an integer.
// Integral floats are accepted; the host's number type does not distinguish.
func (r *Result) Int() (int64, error) {
	v, ok := r.next()
	n, isInt := asInt64(v)
	if !ok || !isInt {
		return 0, shapeErr("integer", v, ok)
	}
	return n, nil
}

// OptionInt consumes the next value as an integer or nil.
// An exhausted vector counts as nil.
func (r *Result) OptionInt() (*int64, error) {
	v, ok := r.next()
	if !ok || v == nil {
		return nil, nil
	}
	n, isInt := asInt64(v)
	if !isInt {
		return nil, shapeErr("integer or nil", v, true)
	}
	return &n, nil
}

// Float consumes the next value as a number.
func (r *Result) Float() (float64, error) {
	v, ok := r.next()
	f, isNum := asFloat64(v)
	if !ok || !isNum {
		return 0, shapeErr("number", v, ok)
	}
	return f, nil
}

// String consumes the next value as a string.
func (r *Result) String() (string, error) {
	v, ok := r.next()
	s, isStr := v.(string)
	if !ok || !isStr {
		return "", shapeErr("string", v, ok)
	}
	return s, nil
}

// OptionString consumes the next value as a string or nil.
// An exhausted vector counts as nil.
func (r *Result) OptionString() (*string, error) {
	v, ok := r.next()
	if !ok || v == nil {
		return nil, nil
	}
	s, isStr := v.(string)
	if !isStr {
		return nil, shapeErr("string or nil", v, true)
	}
	return &s, nil
}

// OptionStringOrBool consumes the next value as a string, a boolean, or nil.
// Some host methods report "no data" as false rather than nil.
func (r *Result) OptionStringOrBool() (s *string, b *bool, err error) {
	v, ok := r.next()
	if !ok || v == nil {
		return nil, nil, nil
	}
	switch t := v.(type) {
	case string:
		return &t, nil, nil
	case bool:
		return nil, &t, nil
	default:
		return nil, nil, shapeErr("string, bool or nil", v, true)
	}
}

// StringList consumes the next value as a list of strings.
func (r *Result) StringList() ([]string, error) {
	v, ok := r.next()
	list, isList := v.([]any)
	if !ok || !isList {
		return nil, shapeErr("list of strings", v, ok)
	}
	out := make([]string, len(list))
	for i, e := range list {
		s, isStr := e.(string)
		if !isStr {
			return nil, fmt.Errorf("%w: list element %d is %T, expected string", ErrShapeMismatch, i, e)
		}
		out[i] = s
	}
	return out, nil
}

// List consumes the next value as a raw list.
func (r *Result) List() ([]any, error) {
	v, ok := r.next()
	list, isList := v.([]any)
	if !ok || !isList {
		return nil, shapeErr("list", v, ok)
	}
	return list, nil
}

// Map consumes the next value as a raw mapping.
func (r *Result) Map() (map[any]any, error) {
	v, ok := r.next()
	if !ok {
		return nil, shapeErr("map", v, ok)
	}
	switch m := v.(type) {
	case map[any]any:
		return m, nil
	case map[string]any:
		out := make(map[any]any, len(m))
		for k, val := range m {
			out[k] = val
		}
		return out, nil
	default:
		return nil, shapeErr("map", v, true)
	}
}

// OptionMap consumes the next value as a mapping or nil.
func (r *Result) OptionMap() (map[any]any, error) {
	if r.pos >= len(r.values) || r.values[r.pos] == nil {
		r.next()
		return nil, nil
	}
	return r.Map()
}

// asInt64 converts the CBOR-decoded numeric representations to int64.
func asInt64(v any) (int64, bool) {
	switch n := v.(type) {
	case int64:
		return n, true
	case int:
		return int64(n), true
	case uint64:
		if n > math.MaxInt64 {
			return 0, false
		}
		return int64(n), true
	case float64:
		if n != math.Trunc(n) || math.IsInf(n, 0) || math.IsNaN(n) {
			return 0, false
		}
		return int64(n), true
	default:
		return 0, false
	}
}

// asFloat64 converts the CBOR-decoded numeric representations to float64.
func asFloat64(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case int64:
		return float64(n), true
	case int:
		return float64(n), true
	case uint64:
		return float64(n), true
	default:
		return 0, false
	}
}
