package cmd

import (
	"fmt"

	"github.com/davecgh/go-spew/spew"
	"github.com/spf13/cobra"

	"adaptation-engine/internal/manifest"
)

var dumpConfig = spew.ConfigState{
	Indent:                  "  ",
	DisablePointerAddresses: true,
	DisableCapacities:       true,
	DisableMethods:          true,
	SortKeys:                true,
}

func newPlanCommand(a *app) *cobra.Command {
	var (
		from string
		to   string
		dump bool
	)

	cmd := &cobra.Command{
		Use:   "plan [manifest] --from CAPABILITY --to CAPABILITY",
		Short: "Show the adapter chain tried first between two capabilities",
		Long: `plan resolves an adaptation without running any factory. It prints the
chain a value of the source capability would be adapted through, assuming
every factory on it accepts.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := a.apply(args)
			if err != nil {
				return err
			}

			src, dst := manifest.Resolve(from), manifest.Resolve(to)
			out := cmd.OutOrStdout()

			chain, ok := s.mgr.Plan(src, dst)
			if !ok {
				return fmt.Errorf("no adaptation chain from %s to %s", src, dst)
			}

			if len(chain) == 0 {
				fmt.Fprintf(out, "%s already satisfies %s\n", src, dst)
				return nil
			}

			for i, offer := range chain {
				fmt.Fprintf(out, "%d. %s\n", i+1, offer)
			}

			if dump {
				dumpConfig.Fdump(out, chain)
			}

			return nil
		},
	}

	cmd.Flags().StringVar(&from, "from", "", "source capability (qualified name)")
	cmd.Flags().StringVar(&to, "to", "", "target capability (qualified name)")
	cmd.Flags().BoolVar(&dump, "dump", false, "dump the chain offers")
	_ = cmd.MarkFlagRequired("from")
	_ = cmd.MarkFlagRequired("to")

	return cmd
}
