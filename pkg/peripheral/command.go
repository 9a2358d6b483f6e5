package peripheral

import (
	"context"
)

// CommandBlock is an adjacent command block.
type CommandBlock struct {
	Base
}

// NewCommandBlock creates a command block proxy bound to the given handle.
func NewCommandBlock(sess Session, handle Handle) *CommandBlock {
	return &CommandBlock{Base: NewBase(sess, handle)}
}

// Command returns the currently configured command.
func (c *CommandBlock) Command(ctx context.Context) (string, error) {
	res, err := c.Call(ctx, "getCommand")
	if err != nil {
		return "", err
	}
	return res.String()
}

// SetCommand configures the command.
func (c *CommandBlock) SetCommand(ctx context.Context, command string) error {
	res, err := c.Call(ctx, "setCommand", command)
	if err != nil {
		return err
	}
	return res.None()
}

// RunCommand executes the configured command.
func (c *CommandBlock) RunCommand(ctx context.Context) (bool, error) {
	res, err := c.Call(ctx, "runCommand")
	if err != nil {
		return false, err
	}
	return res.Bool()
}
