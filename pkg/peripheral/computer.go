package peripheral

import (
	"context"
)

// computerOps is the operation set shared by computers and turtles.
type computerOps struct {
	Base
}

// TurnOn powers the computer on.
func (c *computerOps) TurnOn(ctx context.Context) error {
	res, err := c.Call(ctx, "turnOn")
	if err != nil {
		return err
	}
	return res.None()
}

// Shutdown powers the computer off.
func (c *computerOps) Shutdown(ctx context.Context) error {
	res, err := c.Call(ctx, "shutdown")
	if err != nil {
		return err
	}
	return res.None()
}

// Reboot restarts the computer.
func (c *computerOps) Reboot(ctx context.Context) error {
	res, err := c.Call(ctx, "reboot")
	if err != nil {
		return err
	}
	return res.None()
}

// ID returns the computer's numeric id.
func (c *computerOps) ID(ctx context.Context) (int64, error) {
	res, err := c.Call(ctx, "getID")
	if err != nil {
		return 0, err
	}
	return res.Int()
}

// Label returns the computer's label, or nil when unlabelled.
func (c *computerOps) Label(ctx context.Context) (*string, error) {
	res, err := c.Call(ctx, "getLabel")
	if err != nil {
		return nil, err
	}
	return res.OptionString()
}

// IsOn reports whether the computer is running.
func (c *computerOps) IsOn(ctx context.Context) (bool, error) {
	res, err := c.Call(ctx, "isOn")
	if err != nil {
		return false, err
	}
	return res.Bool()
}

// Computer is an adjacent computer.
type Computer struct {
	computerOps
}

// NewComputer creates a computer proxy bound to the given handle.
func NewComputer(sess Session, handle Handle) *Computer {
	return &Computer{computerOps{Base: NewBase(sess, handle)}}
}

// Turtle is an adjacent turtle.
type Turtle struct {
	computerOps
}

// NewTurtle creates a turtle proxy bound to the given handle.
func NewTurtle(sess Session, handle Handle) *Turtle {
	return &Turtle{computerOps{Base: NewBase(sess, handle)}}
}
