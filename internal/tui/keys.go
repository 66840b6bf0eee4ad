package tui

import (
	"context"
	"io"
)

// Quit keys recognized while the loop runs.
const (
	keyCtrlC = 0x03
	keyEsc   = 0x1b
)

// WatchKeys reads single bytes from in (raw mode) and calls cancel on
// q, Esc or Ctrl+C. It runs until a quit key or a read error, so the
// goroutine ends when stdin closes or the process exits.
func WatchKeys(in io.Reader, cancel context.CancelFunc) {
	go func() {
		buf := make([]byte, 1)
		for {
			n, err := in.Read(buf)
			if err != nil {
				return
			}
			if n == 0 {
				continue
			}
			switch buf[0] {
			case 'q', 'Q', keyEsc, keyCtrlC:
				cancel()
				return
			}
		}
	}()
}
