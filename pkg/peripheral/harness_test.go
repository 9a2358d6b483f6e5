package peripheral

import (
	"context"
	"sync"

	"github.com/craftlink/craftlink-go/pkg/eval"
	"github.com/craftlink/craftlink-go/pkg/events"
)

// evalCall records one Eval invocation made by a proxy.
type evalCall struct {
	expr string
	args []any
}

// fakeSession is a scripted host session. The handler decides each call's
// return vector; every call is recorded for assertions.
type fakeSession struct {
	mu      sync.Mutex
	calls   []evalCall
	handler func(expr string, args []any) ([]any, error)

	bus *events.Bus
}

func newFakeSession(handler func(expr string, args []any) ([]any, error)) *fakeSession {
	return &fakeSession{
		handler: handler,
		bus:     events.NewBus(),
	}
}

func (f *fakeSession) Eval(_ context.Context, expr string, args ...any) (*eval.Result, error) {
	f.mu.Lock()
	f.calls = append(f.calls, evalCall{expr: expr, args: args})
	handler := f.handler
	f.mu.Unlock()

	if handler == nil {
		return eval.NewResult(nil), nil
	}
	values, err := handler(expr, args)
	if err != nil {
		return nil, err
	}
	return eval.NewResult(values), nil
}

func (f *fakeSession) CaptureEvents(name string) *events.Tap {
	return f.bus.Tap(name)
}

// callLog returns a snapshot of the recorded calls.
func (f *fakeSession) callLog() []evalCall {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]evalCall(nil), f.calls...)
}

// methodCount counts recorded accessor calls whose method argument (the
// argument following prepend) equals method.
func (f *fakeSession) methodCount(prependLen int, method string) int {
	n := 0
	for _, c := range f.callLog() {
		if len(c.args) > prependLen && c.args[prependLen] == method {
			n++
		}
	}
	return n
}

// argsEqual compares an argument vector for equality on scalar values.
func argsEqual(got, want []any) bool {
	if len(got) != len(want) {
		return false
	}
	for i := range got {
		if got[i] != want[i] {
			return false
		}
	}
	return true
}

var _ Session = (*fakeSession)(nil)
