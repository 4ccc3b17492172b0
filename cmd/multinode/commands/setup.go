package commands

import "github.com/spf13/cobra"

func (c *CLI) newSetupCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "setup",
		Short: "Download and extract every configured runtime",
		Args:  usageArgs(cobra.NoArgs),
		RunE: func(cmd *cobra.Command, _ []string) error {
			return c.app.Setup(cmd.Context(), c.opts)
		},
	}
}
