package ui

import (
	"os"

	"github.com/charmbracelet/x/term"
)

// DefaultTermWidth is the fallback width when stdout is not a terminal or
// its size cannot be read.
const DefaultTermWidth = 120

// DisplayContext carries the terminal facts output code needs: how wide to
// wrap and whether rendering applies at all.
type DisplayContext struct {
	TermWidth int
	IsTTY     bool
}

// NewDisplayContext detects the terminal on stdout.
func NewDisplayContext() *DisplayContext {
	fd := os.Stdout.Fd()
	ctx := &DisplayContext{
		TermWidth: DefaultTermWidth,
		IsTTY:     term.IsTerminal(fd),
	}
	if !ctx.IsTTY {
		return ctx
	}
	if w, _, err := term.GetSize(fd); err == nil && w > 0 {
		ctx.TermWidth = w
	}
	return ctx
}

// NewDisplayContextWithWidth returns a TTY context with a fixed width, for tests.
func NewDisplayContextWithWidth(width int) *DisplayContext {
	return &DisplayContext{TermWidth: width, IsTTY: true}
}

// AvailableWidth returns the usable width after a left margin.
func (d *DisplayContext) AvailableWidth(leftMargin int) int {
	return d.TermWidth - leftMargin
}
