package cmd

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"adaptation-engine/capability"
	"adaptation-engine/internal/common"
)

func newCapabilitiesCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "capabilities [manifest]",
		Short: "List declared capabilities with their ancestors and rank",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := a.apply(args)
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "CAPABILITY\tRANK\tANCESTORS\tPROVIDES")

			for _, c := range s.table.Capabilities() {
				fmt.Fprintf(w, "%s\t%d\t%s\t%s\n",
					short(c), s.table.Rank(c), join(s.table.Ancestors(c)), join(s.table.Provided(c)))
			}

			return w.Flush()
		},
	}
}

func short(c capability.Capability) string {
	return common.ShortName(c.PkgPath, c.Name)
}

func join(cs []capability.Capability) string {
	if len(cs) == 0 {
		return "-"
	}

	names := make([]string, 0, len(cs))
	for _, c := range cs {
		names = append(names, short(c))
	}

	return strings.Join(names, ",")
}
