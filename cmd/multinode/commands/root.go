// Package commands implements the CLI commands for multinode.
package commands

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.trai.ch/multinode/internal/adapters/detector"
	"go.trai.ch/multinode/internal/app"
	"go.trai.ch/multinode/internal/build"
	"go.trai.ch/multinode/internal/core/domain"
)

// UsageExitCode is the process status for invalid command lines.
const UsageExitCode = 2

// CLI represents the command line interface for multinode.
type CLI struct {
	app     Application
	rootCmd *cobra.Command
	opts    app.Options
}

// Application represents the application logic interface.
type Application interface {
	Setup(ctx context.Context, opts app.Options) error
	Versions(ctx context.Context, opts app.Options) error
	Env(ctx context.Context, opts app.Options, version, arch string) error
	Test(ctx context.Context, opts app.Options) (*domain.RunReport, error)
	Build(ctx context.Context, opts app.Options) error
	Clobber(ctx context.Context, opts app.Options) error
}

// New creates a new CLI instance with the given app.
func New(a Application) *CLI {
	c := &CLI{app: a}

	rootCmd := &cobra.Command{
		Use:           "multinode",
		Short:         "Build and test native addons against many Node.js versions and architectures",
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       build.Version,
		Args:          cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return usageError(cmd, errors.New("missing command"))
			}
			return usageError(cmd, fmt.Errorf("unknown command %q", args[0]))
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&c.opts.Root, "root", "", "Root directory (default: directory of the multinode executable)")
	flags.StringVarP(&c.opts.ConfigPath, "config", "c", "", "Config file (default: <root>/"+domain.ConfigFileName+")")
	flags.BoolVarP(&c.opts.Verbose, "verbose", "v", false, "Enable debug logging and per-pair timing")
	flags.BoolVar(&c.opts.JSON, "json", false, "Write logs as JSON")

	rootCmd.SetVersionTemplate(fmt.Sprintf(
		"{{.Name}} version {{.Version}} (commit: %s, date: %s)\n",
		build.Commit,
		build.Date,
	))
	// -v belongs to --verbose; cobra only adds its own version flag when none is defined.
	rootCmd.Flags().Bool("version", false, "Print the application version")

	rootCmd.InitDefaultHelpFlag()
	rootCmd.Flags().Lookup("help").Usage = "Show help for command"

	rootCmd.SetFlagErrorFunc(usageError)

	c.rootCmd = rootCmd

	rootCmd.AddCommand(c.newSetupCmd())
	rootCmd.AddCommand(c.newVersionsCmd())
	rootCmd.AddCommand(c.newEnvCmd())
	rootCmd.AddCommand(c.newTestCmd())
	rootCmd.AddCommand(c.newBuildCmd())
	rootCmd.AddCommand(c.newClobberCmd())
	rootCmd.AddCommand(c.newVersionCmd())

	return c
}

// Execute runs the root command with the given context.
func (c *CLI) Execute(ctx context.Context) error {
	c.rootCmd.SetContext(ctx)
	return c.rootCmd.Execute()
}

// SetArgs sets the arguments for the root command. Used for testing.
func (c *CLI) SetArgs(args []string) {
	c.rootCmd.SetArgs(args)
}

// SetOutput sets the output and error streams for the root command. Used for testing.
func (c *CLI) SetOutput(out, err io.Writer) {
	c.rootCmd.SetOut(out)
	c.rootCmd.SetErr(err)
}

// usageError prints err and the usage of cmd to stderr and asks for exit status 2.
func usageError(cmd *cobra.Command, err error) error {
	w := cmd.ErrOrStderr()
	_, _ = fmt.Fprintln(w, "Error: "+err.Error())
	_, _ = fmt.Fprint(w, cmd.UsageString())
	return domain.NewExitError(UsageExitCode, nil)
}

// usageArgs turns argument validation failures into usage errors.
func usageArgs(validate cobra.PositionalArgs) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if err := validate(cmd, args); err != nil {
			return usageError(cmd, err)
		}
		return nil
	}
}

func ptyFlagUsage() string {
	return "Attach the runner to a pseudo-terminal: " +
		detector.PTYAuto + ", " + detector.PTYAlways + " or " + detector.PTYNever
}
