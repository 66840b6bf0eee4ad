package tui

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/atinyakov/authtui/internal/models"
	"github.com/atinyakov/authtui/internal/otp"
	"github.com/atinyakov/authtui/internal/store"
)

const separatorWidth = 68

// Scheduler drives the render loop: on every tick it recomputes the
// code and countdown for each record and redraws the full table. The
// store is read once at construction and never re-read from disk; only
// time advances between ticks.
type Scheduler struct {
	store store.Store
	clock otp.Clock
	tick  time.Duration
	out   io.Writer
}

// NewScheduler builds a Scheduler rendering st's codes to out every tick.
func NewScheduler(st store.Store, clock otp.Clock, tick time.Duration, out io.Writer) *Scheduler {
	return &Scheduler{store: st, clock: clock, tick: tick, out: out}
}

// Run draws frames until ctx is cancelled. Cancellation is checked once
// per tick and is not an error.
func (s *Scheduler) Run(ctx context.Context) error {
	ticker := time.NewTicker(s.tick)
	defer ticker.Stop()

	height := 0
	for {
		height = s.renderFrame(height)
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
		}
	}
}

// renderFrame draws one full frame, repositioning the cursor over the
// previous frame unless this is the first one. It returns the frame
// height in lines. The frame is built in memory and written in a single
// call to avoid flicker.
func (s *Scheduler) renderFrame(prevHeight int) int {
	var b bytes.Buffer
	if prevHeight > 0 {
		fmt.Fprintf(&b, ansiCursorUp, prevHeight)
	}

	now := uint64(s.clock.Now().Unix())

	fmt.Fprintf(&b, "%s%-28s %-20s %11s %5s\r\n", ansiClearLine, "NAME", "ISSUER", "CODE", "TTL")
	fmt.Fprintf(&b, "%s%s\r\n", ansiClearLine, strings.Repeat("-", separatorWidth))

	for _, r := range s.store.Records {
		code, err := otp.Generate(r, now)
		if err != nil {
			// Unreachable for records the codec accepted.
			code = "ERROR"
		}
		ttl := "-"
		if r.Kind == models.TOTP {
			ttl = fmt.Sprintf("%ds", otp.Remaining(now, r.Period))
		}
		fmt.Fprintf(&b, "%s%-28s %-20s %11s %5s\r\n",
			ansiClearLine, clip(r.Label, 28), clip(r.Issuer, 20), code, ttl)
	}

	_, _ = s.out.Write(b.Bytes())
	return s.store.Len() + 2
}

func clip(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max]
}
