// Package cli wires the command tree: the default display loop plus the
// import and export subcommands, sharing the -f secrets-file flag.
package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/atinyakov/authtui/internal/config"
	"github.com/atinyakov/authtui/internal/otp"
	"github.com/atinyakov/authtui/internal/store"
	"github.com/atinyakov/authtui/internal/tui"
)

var (
	flagFile string
	logger   *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:          "authtui",
	Short:        "Terminal one-time password authenticator",
	Long:         "authtui shows live TOTP/HOTP codes for secrets kept in a plain-text otpauth URI file.",
	SilenceUsage: true,
	RunE:         runDisplay,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&flagFile, "file", "f", "",
		"path to the secrets file (default ~/.authtui)")
	rootCmd.AddCommand(importCmd, exportCmd, versionCmd)
}

// Execute runs the CLI. Unrecoverable failures exit non-zero.
func Execute() {
	var err error
	logger, err = zap.NewDevelopment()
	if err != nil {
		fmt.Fprintln(os.Stderr, "failed to init logger:", err)
		os.Exit(1)
	}

	err = rootCmd.Execute()
	if err != nil {
		logger.Error("command failed", zap.Error(err))
	}
	_ = logger.Sync()
	if err != nil {
		os.Exit(1)
	}
}

// runDisplay loads the store once and runs the render loop until a
// signal or quit keypress cancels it.
func runDisplay(cmd *cobra.Command, _ []string) error {
	opts, err := config.Parse(flagFile)
	if err != nil {
		return err
	}

	st, lineErrs, err := store.ReadFile(opts.File)
	if err != nil {
		return err
	}
	warnLineErrors(opts.File, lineErrs)
	if st.Len() == 0 {
		fmt.Fprintln(cmd.ErrOrStderr(), "No secrets found. Import some with: authtui import FILE")
		return nil
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	terminal := tui.NewTerminal()
	if err := terminal.Acquire(); err != nil {
		return err
	}
	defer terminal.Restore()

	if terminal.IsTTY() {
		tui.WatchKeys(os.Stdin, cancel)
	}

	return tui.NewScheduler(st, otp.SystemClock{}, opts.Tick, terminal.Out()).Run(ctx)
}

func warnLineErrors(path string, errs []store.LineError) {
	for _, le := range errs {
		logger.Warn("skipping malformed secret",
			zap.String("file", path),
			zap.Int("line", le.Line),
			zap.Error(le.Err),
		)
	}
}
