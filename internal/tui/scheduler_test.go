package tui

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/atinyakov/authtui/internal/models"
	"github.com/atinyakov/authtui/internal/otp"
	"github.com/atinyakov/authtui/internal/store"
)

var rfcKey = []byte("12345678901234567890")

func testStore() store.Store {
	return store.Store{Records: []models.Record{
		{
			Label: "alice", Issuer: "Example", Secret: rfcKey,
			Algorithm: models.SHA1, Digits: 8, Period: 30, Kind: models.TOTP,
		},
		{
			Label: "bank", Secret: rfcKey,
			Algorithm: models.SHA1, Digits: 6, Counter: 0, Kind: models.HOTP,
		},
	}}
}

func fixedClock(unix int64) otp.Clock {
	return otp.ClockFunc(func() time.Time { return time.Unix(unix, 0) })
}

func frameAt(t *testing.T, unix int64) string {
	t.Helper()
	var buf bytes.Buffer
	s := NewScheduler(testStore(), fixedClock(unix), time.Second, &buf)
	height := s.renderFrame(0)
	require.Equal(t, 4, height)
	return buf.String()
}

func TestRenderFrame_Codes(t *testing.T) {
	frame := frameAt(t, 59)

	// RFC 6238 vector for t=59, and RFC 4226 vector for counter 0.
	assert.Contains(t, frame, "94287082")
	assert.Contains(t, frame, "755224")
	assert.Contains(t, frame, "alice")
	assert.Contains(t, frame, "Example")
	assert.Contains(t, frame, "NAME")
	// One second to the window boundary for the TOTP row, no TTL for HOTP.
	assert.Contains(t, frame, "1s")
	hotpRow := frame[strings.Index(frame, "bank"):]
	assert.Contains(t, hotpRow, "-")
}

func TestRenderFrame_StableWithinWindow(t *testing.T) {
	mid := frameAt(t, 45)
	assert.Contains(t, mid, "94287082")

	next := frameAt(t, 60)
	assert.NotContains(t, next, "94287082")
}

func TestRenderFrame_RepositionsAfterFirst(t *testing.T) {
	var buf bytes.Buffer
	s := NewScheduler(testStore(), fixedClock(59), time.Second, &buf)

	h := s.renderFrame(0)
	first := buf.String()
	assert.False(t, strings.HasPrefix(first, "\x1b[4A"), "first frame must not reposition")

	buf.Reset()
	s.renderFrame(h)
	assert.True(t, strings.HasPrefix(buf.String(), "\x1b[4A"), "later frames reposition over the previous one")
}

func TestRun_StopsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var buf bytes.Buffer
	s := NewScheduler(testStore(), fixedClock(59), time.Millisecond, &buf)

	done := make(chan error, 1)
	go func() { done <- s.Run(ctx) }()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("Run did not stop on cancellation")
	}
	// The first frame is drawn even when cancellation is already pending.
	assert.Contains(t, buf.String(), "94287082")
}
