package peripheral

import (
	"context"
)

// Inventory is the generic proxy for container kinds (chests, furnaces,
// hoppers, ...). Register it for third-party container kinds too:
//
//	peripheral.Register("mymod:crate", func(s peripheral.Session, h peripheral.Handle) peripheral.Peripheral {
//		return peripheral.NewInventory(s, h)
//	})
type Inventory struct {
	Base
}

// NewInventory creates an inventory proxy bound to the given handle.
func NewInventory(sess Session, handle Handle) *Inventory {
	return &Inventory{Base: NewBase(sess, handle)}
}

// Size returns the number of slots.
func (i *Inventory) Size(ctx context.Context) (int64, error) {
	res, err := i.Call(ctx, "size")
	if err != nil {
		return 0, err
	}
	return res.Int()
}

// List returns the occupied slots mapped to basic item descriptions.
func (i *Inventory) List(ctx context.Context) (map[any]any, error) {
	res, err := i.Call(ctx, "list")
	if err != nil {
		return nil, err
	}
	return res.Map()
}

// ItemDetail returns a detailed description of the item in slot, or nil for
// an empty slot.
func (i *Inventory) ItemDetail(ctx context.Context, slot int) (map[any]any, error) {
	res, err := i.Call(ctx, "getItemDetail", slot)
	if err != nil {
		return nil, err
	}
	return res.OptionMap()
}

// PullItems moves items from another inventory on the same network into
// this one. limit and toSlot are optional (nil = host default). Returns the
// number of items moved.
func (i *Inventory) PullItems(ctx context.Context, fromName string, fromSlot int, limit, toSlot *int) (int64, error) {
	res, err := i.Call(ctx, "pullItems", fromName, fromSlot, optInt(limit), optInt(toSlot))
	if err != nil {
		return 0, err
	}
	return res.Int()
}

// PushItems moves items from this inventory into another on the same
// network. limit and toSlot are optional (nil = host default). Returns the
// number of items moved.
func (i *Inventory) PushItems(ctx context.Context, toName string, fromSlot int, limit, toSlot *int) (int64, error) {
	res, err := i.Call(ctx, "pushItems", toName, fromSlot, optInt(limit), optInt(toSlot))
	if err != nil {
		return 0, err
	}
	return res.Int()
}

// optInt widens an optional int to the argument encoding (nil stays nil).
func optInt(p *int) any {
	if p == nil {
		return nil
	}
	return *p
}
