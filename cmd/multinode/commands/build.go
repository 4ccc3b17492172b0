package commands

import "github.com/spf13/cobra"

func (c *CLI) newBuildCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "build",
		Short: "Build the native addon against every runtime",
		Args:  usageArgs(cobra.NoArgs),
		RunE: func(cmd *cobra.Command, _ []string) error {
			return c.app.Build(cmd.Context(), c.opts)
		},
	}
}
