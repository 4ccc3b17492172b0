package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/multinode/internal/adapters/detector"
	"go.trai.ch/multinode/internal/core/domain"
)

func (c *CLI) newTestCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "test",
		Short: "Run the test suite against every runtime",
		Long: "Run the configured test runner against every runtime. The exit status is the\n" +
			"number of runtimes whose tests failed, capped at 255.",
		Args: usageArgs(cobra.NoArgs),
		RunE: func(cmd *cobra.Command, _ []string) error {
			report, err := c.app.Test(cmd.Context(), c.opts)
			if err != nil {
				return err
			}
			if report.Failures > 0 {
				return domain.NewExitError(min(report.Failures, domain.MaxExitCode), nil)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&c.opts.PTY, "pty", detector.PTYAuto, ptyFlagUsage())
	return cmd
}
