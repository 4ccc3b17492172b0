package commands

import "github.com/spf13/cobra"

func (c *CLI) newClobberCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "clobber",
		Short: "Remove the built addon from every runtime",
		Args:  usageArgs(cobra.NoArgs),
		RunE: func(cmd *cobra.Command, _ []string) error {
			return c.app.Clobber(cmd.Context(), c.opts)
		},
	}
}
