package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/atinyakov/authtui/internal/config"
	"github.com/atinyakov/authtui/internal/store"
)

var exportCmd = &cobra.Command{
	Use:   "export FILE",
	Short: "Export canonical otpauth URIs to a text file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		opts, err := config.Parse(flagFile)
		if err != nil {
			return err
		}

		st, lineErrs, err := store.ReadFile(opts.File)
		if err != nil {
			return err
		}
		warnLineErrors(opts.File, lineErrs)

		if err := store.WriteFile(args[0], st); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Exported %d entries to %s\n", st.Len(), args[0])
		return nil
	},
}
