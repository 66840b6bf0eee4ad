// Package tui renders the live code table: ANSI terminal control plus
// the fixed-interval scheduler that recomputes and redraws codes.
package tui

import (
	"fmt"
	"io"
	"os"

	"golang.org/x/term"
)

// ANSI escape codes for terminal control.
const (
	ansiClearLine  = "\x1b[2K"
	ansiCursorUp   = "\x1b[%dA"
	ansiHideCursor = "\x1b[?25l"
	ansiShowCursor = "\x1b[?25h"
)

// Terminal owns the display side effects: raw mode on stdin and cursor
// visibility on the output. Restore must run on every exit path.
type Terminal struct {
	out   io.Writer
	inFd  int
	isTTY bool
	saved *term.State
}

// NewTerminal creates a Terminal for stdout/stdin with TTY auto-detection.
func NewTerminal() *Terminal {
	return &Terminal{
		out:   os.Stdout,
		inFd:  int(os.Stdin.Fd()),
		isTTY: term.IsTerminal(int(os.Stdout.Fd())),
	}
}

// IsTTY returns true if stdout is a terminal.
func (t *Terminal) IsTTY() bool {
	return t.isTTY
}

// Out returns the writer frames should be rendered to.
func (t *Terminal) Out() io.Writer {
	return t.out
}

// Acquire hides the cursor and, when stdin is a terminal, switches it
// to raw mode so single keypresses arrive without a newline.
func (t *Terminal) Acquire() error {
	if !t.isTTY {
		return nil
	}
	fmt.Fprint(t.out, ansiHideCursor)
	if term.IsTerminal(t.inFd) {
		saved, err := term.MakeRaw(t.inFd)
		if err != nil {
			fmt.Fprint(t.out, ansiShowCursor)
			return fmt.Errorf("enter raw mode: %w", err)
		}
		t.saved = saved
	}
	return nil
}

// Restore undoes Acquire. Safe to call when Acquire failed or never ran.
func (t *Terminal) Restore() {
	if t.saved != nil {
		_ = term.Restore(t.inFd, t.saved)
		t.saved = nil
	}
	if t.isTTY {
		fmt.Fprint(t.out, ansiShowCursor)
	}
}
