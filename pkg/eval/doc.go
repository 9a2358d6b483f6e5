// Package eval defines the remote-evaluation contract: the Evaluator
// interface a transport implements, and the Result type callers use to
// extract typed values from an evaluation's return vector.
//
// A remote evaluation returns zero or more values (Lua functions return
// multiple values). Result is a cursor over that vector: each typed take
// operation consumes the next value and fails with ErrShapeMismatch when
// the value's shape does not match the request. The caller must use exactly
// the extraction matching the expected shape; nothing is coerced silently.
//
//	res, err := sess.Eval(ctx, "return peripheral.isPresent(...)", "left")
//	if err != nil { ... }          // transport or remote eval failure
//	present, err := res.Bool()     // shape mismatch is a distinct error
package eval
