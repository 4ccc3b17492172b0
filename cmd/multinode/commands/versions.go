package commands

import "github.com/spf13/cobra"

func (c *CLI) newVersionsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "versions",
		Short: "List the configured version and architecture pairs",
		Args:  usageArgs(cobra.NoArgs),
		RunE: func(cmd *cobra.Command, _ []string) error {
			return c.app.Versions(cmd.Context(), c.opts)
		},
	}
}
