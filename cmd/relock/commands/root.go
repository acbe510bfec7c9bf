// Package commands implements the CLI commands for the relock tool.
package commands

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.trai.ch/relock/internal/app"
	"go.trai.ch/relock/internal/build"
)

// CLI represents the command line interface for relock.
type CLI struct {
	app     Application
	rootCmd *cobra.Command
}

// Application represents the application logic interface.
type Application interface {
	Verify(ctx context.Context, opts app.RunOptions) error
	Upgrade(ctx context.Context, opts app.RunOptions) error
}

// New creates a new CLI instance with the given app.
func New(a Application) *CLI {
	rootCmd := &cobra.Command{
		Use:           "relock",
		Short:         "Keep pinned requirement files in sync across platforms",
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       build.Version,
	}

	rootCmd.SetVersionTemplate(fmt.Sprintf(
		"{{.Name}} version {{.Version}} (commit: %s, date: %s)\n",
		build.Commit,
		build.Date,
	))
	rootCmd.InitDefaultVersionFlag()
	rootCmd.Flags().Lookup("version").Usage = "Print the application version"

	rootCmd.InitDefaultHelpFlag()
	rootCmd.Flags().Lookup("help").Usage = "Show help for command"

	// Add persistent flags
	rootCmd.PersistentFlags().StringP("config", "c", "relock.yaml", "Path to configuration file")

	c := &CLI{
		app:     a,
		rootCmd: rootCmd,
	}

	rootCmd.AddCommand(c.newVerifyCmd())
	rootCmd.AddCommand(c.newUpgradeCmd())
	rootCmd.AddCommand(c.newVersionCmd())

	return c
}

// Execute runs the root command with the given context.
func (c *CLI) Execute(ctx context.Context) error {
	c.rootCmd.SetContext(ctx)
	return c.rootCmd.Execute()
}

// GetConfigPath returns the value of the config flag.
func (c *CLI) GetConfigPath() string {
	config, _ := c.rootCmd.PersistentFlags().GetString("config")
	return config
}

// SetConfigHook sets up a PersistentPreRun function that retrieves the config
// flag and calls the provided callback with the config path.
func (c *CLI) SetConfigHook(fn func(string)) {
	c.rootCmd.PersistentPreRunE = func(cmd *cobra.Command, _ []string) error {
		configPath, err := cmd.Flags().GetString("config")
		if err != nil {
			return err
		}
		fn(configPath)
		return nil
	}
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
