// Package profile implements the profile command, which reads KPI
// definitions from the relational metric store rather than the
// onboarding API.
package profile

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/experienceflow/domainmap/cmd/application"
	"github.com/experienceflow/domainmap/internal/cmd/globals"
	"github.com/experienceflow/domainmap/internal/cmd/output"
	"github.com/experienceflow/domainmap/pkg/constants"
	"github.com/experienceflow/domainmap/pkg/errors"
)

// NewCommand creates the profile command with app dependencies.
func NewCommand(app application.Application) *cobra.Command {
	var names bool

	cmd := &cobra.Command{
		Use:     "profile [kpi-name]",
		Short:   "Show a KPI profile from the metric store",
		GroupID: "store",
		Long: `Show the structured profile of a KPI from the metric-definition store.

With no arguments, or with --names, the command lists the distinct KPI
names the store knows so you can find the exact spelling to query.
Requires METRICSTORE_DSN to be configured.`,
		Example: `  # Discover the names the store knows
  domainmap profile --names

  # Full profile for one KPI
  domainmap profile "Days Sales Outstanding"

  # Profile as JSON for scripting
  domainmap profile "Days Sales Outstanding" -o json`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithTimeout(cmd.Context(), constants.DefaultStoreTimeout)
			defer cancel()

			store, err := app.Store(ctx)
			if err != nil {
				return err
			}

			flags := &globals.Flags{Output: app.OutputFormat()}

			if names || len(args) == 0 {
				kpiNames, err := store.KPINames(ctx)
				if err != nil {
					return err
				}
				return output.FormatKPINames(kpiNames, flags)
			}

			profile, err := store.KPIProfile(ctx, args[0])
			if err != nil {
				return err
			}
			if profile == nil {
				return errors.NewNotFoundError("kpi profile", args[0])
			}
			return output.FormatProfile(profile, flags)
		},
	}

	cmd.Flags().BoolVar(&names, "names", false, "List distinct KPI names instead of a profile")

	return cmd
}
