package peripheral

import (
	"context"
)

// Printer is an attached printer.
type Printer struct {
	Base
}

// NewPrinter creates a printer proxy bound to the given handle.
func NewPrinter(sess Session, handle Handle) *Printer {
	return &Printer{Base: NewBase(sess, handle)}
}

// NewPage starts a new page. Returns false when out of paper or ink.
func (p *Printer) NewPage(ctx context.Context) (bool, error) {
	res, err := p.Call(ctx, "newPage")
	if err != nil {
		return false, err
	}
	return res.Bool()
}

// EndPage finishes the current page and ejects it.
func (p *Printer) EndPage(ctx context.Context) (bool, error) {
	res, err := p.Call(ctx, "endPage")
	if err != nil {
		return false, err
	}
	return res.Bool()
}

// Write prints text at the current cursor position.
func (p *Printer) Write(ctx context.Context, text string) error {
	res, err := p.Call(ctx, "write", text)
	if err != nil {
		return err
	}
	return res.None()
}

// SetCursorPos moves the print cursor.
func (p *Printer) SetCursorPos(ctx context.Context, x, y int) error {
	res, err := p.Call(ctx, "setCursorPos", x, y)
	if err != nil {
		return err
	}
	return res.None()
}

// CursorPos returns the print cursor position.
func (p *Printer) CursorPos(ctx context.Context) (x, y int64, err error) {
	res, err := p.Call(ctx, "getCursorPos")
	if err != nil {
		return 0, 0, err
	}
	if x, err = res.Int(); err != nil {
		return 0, 0, err
	}
	y, err = res.Int()
	return x, y, err
}

// PageSize returns the current page dimensions.
func (p *Printer) PageSize(ctx context.Context) (width, height int64, err error) {
	res, err := p.Call(ctx, "getPageSize")
	if err != nil {
		return 0, 0, err
	}
	if width, err = res.Int(); err != nil {
		return 0, 0, err
	}
	height, err = res.Int()
	return width, height, err
}

// SetPageTitle sets the title of the current page.
func (p *Printer) SetPageTitle(ctx context.Context, title string) error {
	res, err := p.Call(ctx, "setPageTitle", title)
	if err != nil {
		return err
	}
	return res.None()
}

// PaperLevel returns the amount of loaded paper.
func (p *Printer) PaperLevel(ctx context.Context) (int64, error) {
	res, err := p.Call(ctx, "getPaperLevel")
	if err != nil {
		return 0, err
	}
	return res.Int()
}

// InkLevel returns the amount of loaded ink.
func (p *Printer) InkLevel(ctx context.Context) (int64, error) {
	res, err := p.Call(ctx, "getInkLevel")
	if err != nil {
		return 0, err
	}
	return res.Int()
}
