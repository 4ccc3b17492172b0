package commands

import "github.com/spf13/cobra"

func (c *CLI) newEnvCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "env <version> [arch]",
		Short: "Start a shell configured for one runtime",
		Long: "Start an interactive shell with PATH, NODE_PATH and the library paths set up\n" +
			"for one installed runtime. The architecture defaults to the first configured one.",
		Args: usageArgs(cobra.RangeArgs(1, 2)),
		RunE: func(cmd *cobra.Command, args []string) error {
			var arch string
			if len(args) == 2 {
				arch = args[1]
			}
			return c.app.Env(cmd.Context(), c.opts, args[0], arch)
		},
	}
}
