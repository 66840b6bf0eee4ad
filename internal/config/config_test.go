package config_test

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/atinyakov/authtui/internal/config"
)

func TestParse_FlagWins(t *testing.T) {
	t.Setenv("AUTHTUI_FILE", "/env/secrets")

	opts, err := config.Parse("/flag/secrets")
	require.NoError(t, err)
	assert.Equal(t, "/flag/secrets", opts.File)
}

func TestParse_EnvFallback(t *testing.T) {
	t.Setenv("AUTHTUI_FILE", "/env/secrets")

	opts, err := config.Parse("")
	require.NoError(t, err)
	assert.Equal(t, "/env/secrets", opts.File)
}

func TestParse_Default(t *testing.T) {
	t.Setenv("AUTHTUI_FILE", "")

	opts, err := config.Parse("")
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(opts.File, ".authtui"), "got %q", opts.File)
	assert.Equal(t, time.Second, opts.Tick)
}

func TestParse_TickOverride(t *testing.T) {
	t.Setenv("AUTHTUI_TICK", "250ms")

	opts, err := config.Parse("")
	require.NoError(t, err)
	assert.Equal(t, 250*time.Millisecond, opts.Tick)
}

func TestParse_InvalidTick(t *testing.T) {
	t.Setenv("AUTHTUI_TICK", "-1s")

	_, err := config.Parse("")
	assert.Error(t, err)
}
