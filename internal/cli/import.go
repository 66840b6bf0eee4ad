package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/atinyakov/authtui/internal/config"
	"github.com/atinyakov/authtui/internal/store"
)

var importCmd = &cobra.Command{
	Use:   "import FILE",
	Short: "Import otpauth URIs from a text file (one per line)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		opts, err := config.Parse(flagFile)
		if err != nil {
			return err
		}

		data, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("read import file %s: %w", args[0], err)
		}
		incoming, lineErrs := store.Load(strings.Split(string(data), "\n"))
		warnLineErrors(args[0], lineErrs)

		existing, storeErrs, err := store.ReadFile(opts.File)
		if err != nil {
			return err
		}
		warnLineErrors(opts.File, storeErrs)

		merged := existing.Merge(incoming)
		if err := store.WriteFile(opts.File, merged); err != nil {
			return err
		}

		added := merged.Len() - existing.Len()
		dupes := incoming.Len() - added
		fmt.Fprintf(cmd.OutOrStdout(), "Imported %d entries (%d duplicates, %d invalid lines skipped)\n",
			added, dupes, len(lineErrs))
		return nil
	},
}
