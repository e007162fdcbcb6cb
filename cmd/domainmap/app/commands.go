package app

import (
	"github.com/spf13/cobra"

	"github.com/experienceflow/domainmap/cmd/domainmap/cmd/assemble"
	"github.com/experienceflow/domainmap/cmd/domainmap/cmd/list"
	"github.com/experienceflow/domainmap/cmd/domainmap/cmd/profile"
)

// NewAssembleCommand creates the assemble command with app dependencies.
func (a *App) NewAssembleCommand() *cobra.Command {
	return assemble.NewCommand(a)
}

// NewListCommand creates the list command with app dependencies.
func (a *App) NewListCommand() *cobra.Command {
	return list.NewCommand(a)
}

// NewProfileCommand creates the profile command with app dependencies.
func (a *App) NewProfileCommand() *cobra.Command {
	return profile.NewCommand(a)
}

// NewVersionCommand creates the version command.
func (a *App) NewVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Run: func(cmd *cobra.Command, _ []string) {
			cmd.Printf("domainmap %s\n", a.version)
			if a.config.Verbose {
				cmd.Printf("  commit:   %s\n", a.commit)
				cmd.Printf("  built:    %s\n", a.date)
				cmd.Printf("  built by: %s\n", a.builtBy)
			}
		},
	}
}
