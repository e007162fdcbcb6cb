// Package list provides commands for listing onboarding API resources.
package list

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/experienceflow/domainmap/cmd/application"
)

// NewCommand creates the list command with app dependencies.
func NewCommand(app application.Application) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "list [resource]",
		GroupID: "core",
		Short:   "List resources from the onboarding API",
		Long: `List fetches and displays individual onboarding API resources.

Available subcommands:
  industries    - Industries known to the platform
  categories    - Industry categories
  kpis          - Normalized KPIs for the configured industry
  functions     - Function details joined with KPI references
  contexts      - Context dimensions for the configured industry
  context-types - Raw context type records
  roles         - Organizational roles of the configured industry
  tables        - Dictionary tables for function codes`,
		Example: `  domainmap list industries                # List all industries
  domainmap list kpis --details            # List KPIs with descriptions
  domainmap list contexts --industry 2001  # Contexts of another industry
  domainmap list tables FIN-001            # Dictionary tables for one code`,
		RunE: func(cmd *cobra.Command, args []string) error {
			// Default to help if no subcommand
			if len(args) == 0 {
				return cmd.Help()
			}
			return fmt.Errorf("unknown resource: %s", args[0])
		},
	}

	// Add subcommands using the app context
	cmd.AddCommand(NewIndustriesCommand(app))
	cmd.AddCommand(NewCategoriesCommand(app))
	cmd.AddCommand(NewKPIsCommand(app))
	cmd.AddCommand(NewFunctionsCommand(app))
	cmd.AddCommand(NewContextsCommand(app))
	cmd.AddCommand(NewContextTypesCommand(app))
	cmd.AddCommand(NewRolesCommand(app))
	cmd.AddCommand(NewTablesCommand(app))

	return cmd
}
