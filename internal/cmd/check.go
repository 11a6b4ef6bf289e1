package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"adaptation-engine/internal/manifest"
)

func newCheckCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "check [manifest]",
		Short: "Validate a manifest against its packages and the factory catalog",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := a.load(args)
			if err != nil {
				return err
			}

			res := manifest.Validate(s.file, s.table, a.catalog)
			out := cmd.OutOrStdout()

			for _, d := range res.All() {
				fmt.Fprintf(out, "%s: %s\n", d.Severity, d)
			}

			if res.HasErrors() {
				return fmt.Errorf("%s: %d error(s)", s.path, len(res.Errors))
			}

			fmt.Fprintf(out, "ok: %s (%d types, %d offers, %d provides, %d warnings)\n",
				s.path, len(s.file.Types)+len(s.summary.Types)+len(s.summary.Interfaces),
				len(s.file.Offers), len(s.file.Provides), len(res.Warnings))

			return nil
		},
	}
}
