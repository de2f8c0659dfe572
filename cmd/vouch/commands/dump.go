package commands

import (
	"github.com/spf13/cobra"
)

func (c *CLI) newDumpCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "dump",
		Short: "Print every cache entry in a stable, diffable format",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return c.app.Dump(cmd.OutOrStdout())
		},
	}
}
