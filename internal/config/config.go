// Package config resolves configuration for the application from
// command-line flags and environment variables.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/caarlos0/env/v11"
)

// Options holds the configuration values for the application.
type Options struct {
	// File is the path to the secrets file.
	File string `env:"AUTHTUI_FILE"`

	// Tick is the render loop refresh interval.
	Tick time.Duration `env:"AUTHTUI_TICK" envDefault:"1s"`
}

// Parse resolves the final configuration. An explicit -f flag value
// wins over the AUTHTUI_FILE environment variable, which wins over the
// default path in the user's home directory.
func Parse(flagFile string) (*Options, error) {
	opts := &Options{}
	if err := env.Parse(opts); err != nil {
		return nil, fmt.Errorf("parse environment: %w", err)
	}
	if flagFile != "" {
		opts.File = flagFile
	}
	if opts.File == "" {
		opts.File = DefaultPath()
	}
	if opts.Tick <= 0 {
		return nil, fmt.Errorf("invalid tick interval %v", opts.Tick)
	}
	return opts, nil
}

// DefaultPath returns ~/.authtui, or .authtui in the working directory
// when the home directory cannot be determined.
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".authtui"
	}
	return filepath.Join(home, ".authtui")
}
