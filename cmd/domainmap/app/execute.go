package app

import (
	"context"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/experienceflow/domainmap/internal/cmd/globals"
	"github.com/experienceflow/domainmap/internal/cmd/output"
	"github.com/experienceflow/domainmap/pkg/errors"
)

// Execute runs the domainmap CLI application with the given arguments.
// This is the main entry point called from main.go.
func (a *App) Execute(ctx context.Context, args []string) error {
	// Create root command with app context
	rootCmd := a.createRootCommand()

	// Set arguments
	rootCmd.SetArgs(args)

	// Execute with context
	return rootCmd.ExecuteContext(ctx)
}

// createRootCommand creates the root cobra command with all subcommands.
func (a *App) createRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:     "domainmap",
		Short:   "Customer domain model CLI",
		Version: a.version,
		Long: `Domainmap assembles a customer's domain model from the two-tier
onboarding API: it authenticates partner and customer tokens, queries
industry KPIs, functions, roles, contexts, and dictionary tables, and
reconciles them into a single normalized model.

It can also look up KPI profiles in the relational metric store when a
store DSN is configured.`,
		PersistentPreRunE: a.setupCommand,
		SilenceUsage:      true,
		SilenceErrors:     true,
	}

	// Add command groups
	rootCmd.AddGroup(&cobra.Group{
		ID:    "core",
		Title: "Core Commands:",
	})

	rootCmd.AddGroup(&cobra.Group{
		ID:    "store",
		Title: "Metric Store Commands:",
	})

	// Common output and verbosity flags
	a.flags = globals.AddFlags(rootCmd)

	// Global configuration flags bound directly into the config
	rootCmd.PersistentFlags().StringVar(&a.config.ConfigFile, "config", "", "config file (default is $HOME/.domainmap.yaml)")
	rootCmd.PersistentFlags().StringVar(&a.config.LogLevel, "log-level", a.config.LogLevel, "log level: trace, debug, info, warn, error (overrides -v/-q)")
	rootCmd.PersistentFlags().StringVar(&a.config.BaseURL, "base-url", a.config.BaseURL, "onboarding API base URL")
	rootCmd.PersistentFlags().Int64Var(&a.config.IndustryID, "industry", a.config.IndustryID, "industry id scoping KPI and context queries")
	rootCmd.PersistentFlags().StringVar(&a.config.CustomerEmail, "customer-email", a.config.CustomerEmail, "customer email for token minting")
	rootCmd.PersistentFlags().DurationVar(&a.config.Timeout, "timeout", a.config.Timeout, "HTTP request timeout")
	rootCmd.PersistentFlags().BoolVar(&a.config.InsecureTLS, "insecure", a.config.InsecureTLS, "skip TLS certificate verification")
	rootCmd.PersistentFlags().StringVar(&a.config.StoreDSN, "store-dsn", a.config.StoreDSN, "Postgres DSN of the metric store (profile command)")

	// Customize version output to match version subcommand
	rootCmd.SetVersionTemplate("domainmap {{.Version}}\n")

	// Register all commands
	a.registerCommands(rootCmd)

	return rootCmd
}

// setupCommand is called before any command runs.
func (a *App) setupCommand(cmd *cobra.Command, _ []string) error {
	// An explicit --config requires re-reading settings from that file
	if cmd.Flags().Changed("config") {
		viper.SetConfigFile(a.config.ConfigFile)
		if err := viper.ReadInConfig(); err != nil {
			return &errors.ConfigError{
				Component: "config",
				Message:   "read config file " + a.config.ConfigFile,
				Err:       err,
			}
		}
		if err := a.config.Resolve(cmd.Flags().Changed); err != nil {
			return err
		}
	}

	// Fold the parsed common flags into the config
	a.config.UpdateFromFlags(a.flags.Verbose, a.flags.Quiet, a.flags.NoColor, a.flags.Output)

	// Resolve the output format, falling back to terminal detection
	a.config.Output = string(output.DetectFormat(a.config.Output))

	// Reinitialize logger with updated config
	logger := NewLogger(a.config)
	a.logger = &logger

	return nil
}

// registerCommands registers all subcommands with the root command.
// This is where we wire up all the command handlers.
func (a *App) registerCommands(rootCmd *cobra.Command) {
	// Core commands
	rootCmd.AddCommand(a.NewAssembleCommand())
	rootCmd.AddCommand(a.NewListCommand())

	// Metric store commands
	rootCmd.AddCommand(a.NewProfileCommand())

	// Utility commands
	rootCmd.AddCommand(a.NewVersionCommand())
}

// ExitOnError is a helper that prints an error and exits with status 1.
// This is meant to be used in main.go for top-level error handling.
func ExitOnError(err error) {
	if err != nil {
		_, _ = os.Stderr.WriteString(err.Error() + "\n")
		os.Exit(1)
	}
}
