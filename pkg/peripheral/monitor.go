package peripheral

import (
	"context"
)

// Monitor is an attached display.
type Monitor struct {
	Base
}

// NewMonitor creates a monitor proxy bound to the given handle.
func NewMonitor(sess Session, handle Handle) *Monitor {
	return &Monitor{Base: NewBase(sess, handle)}
}

// TextScale returns the monitor's text scale.
func (m *Monitor) TextScale(ctx context.Context) (int64, error) {
	res, err := m.Call(ctx, "getTextScale")
	if err != nil {
		return 0, err
	}
	return res.Int()
}

// SetTextScale sets the monitor's text scale.
func (m *Monitor) SetTextScale(ctx context.Context, scale int) error {
	res, err := m.Call(ctx, "setTextScale", scale)
	if err != nil {
		return err
	}
	return res.None()
}
