package terminal

import (
	"context"
	"io"
	"os"

	"github.com/de-tools/data-lens/pkg/runtime/terminal/commands"
	"github.com/de-tools/data-lens/pkg/runtime/terminal/export"
	"github.com/de-tools/data-lens/pkg/services/config"
	"github.com/spf13/cobra"
)

// CLI represents the command-line interface
type CLI struct {
	reporter *export.Reporter
	rootCmd  *cobra.Command

	cfgPath string
	profile string
}

// Options contain configuration for the CLI
type Options struct {
	Output io.Writer
}

// NewCLI creates a new CLI instance
func NewCLI(opts Options) *CLI {
	if opts.Output == nil {
		opts.Output = os.Stdout
	}

	cli := &CLI{
		reporter: export.NewReporter(opts.Output),
	}

	cli.rootCmd = cli.newRootCmd(opts.Output)
	return cli
}

func (cli *CLI) Execute() error {
	return cli.rootCmd.Execute()
}

func (cli *CLI) newRootCmd(output io.Writer) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "data-lens",
		Short: "Data quality report client",
	}

	cmd.PersistentFlags().StringVar(&cli.cfgPath, "config", config.DefaultConfigPath(),
		"Path to the profiles file")
	cmd.PersistentFlags().StringVar(&cli.profile, "profile", "default",
		"Profile to use")

	env := commands.Env{
		Profile: cli.loadProfile,
		Output:  output,
	}

	cmd.AddCommand(commands.NewLoginCmd(env))
	cmd.AddCommand(commands.NewRegisterCmd(env))
	cmd.AddCommand(commands.NewLogoutCmd(env))
	cmd.AddCommand(commands.NewWhoamiCmd(env))
	cmd.AddCommand(commands.NewAnalyzeCmd(env, cli.reporter))

	return cmd
}

func (cli *CLI) loadProfile() (*config.Profile, error) {
	registry, err := config.NewRegistry(cli.cfgPath)
	if err != nil {
		return nil, err
	}
	return registry.GetProfile(context.Background(), cli.profile)
}
