package peripheral

import (
	"context"
)

// Workbench is a crafting table attached via a turtle.
type Workbench struct {
	Base
}

// NewWorkbench creates a workbench proxy bound to the given handle.
func NewWorkbench(sess Session, handle Handle) *Workbench {
	return &Workbench{Base: NewBase(sess, handle)}
}

// Craft crafts up to quantity items from the turtle's inventory grid.
func (w *Workbench) Craft(ctx context.Context, quantity int) (bool, error) {
	res, err := w.Call(ctx, "craft", quantity)
	if err != nil {
		return false, err
	}
	return res.Bool()
}
