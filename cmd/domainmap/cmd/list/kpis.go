package list

import (
	"github.com/spf13/cobra"

	"github.com/experienceflow/domainmap/cmd/application"
	"github.com/experienceflow/domainmap/internal/cmd/constants"
	"github.com/experienceflow/domainmap/internal/cmd/output"
	"github.com/experienceflow/domainmap/pkg/onboarding"
	"github.com/experienceflow/domainmap/pkg/reconcile"
)

// NewKPIsCommand creates the list kpis subcommand.
func NewKPIsCommand(app application.Application) *cobra.Command {
	var details bool

	cmd := &cobra.Command{
		Use:     "kpis",
		Short:   "List normalized KPIs for the configured industry",
		Aliases: []string{"kpi"},
		Args:    cobra.NoArgs,
		Example: `  domainmap list kpis                  # KPIs of the configured industry
  domainmap list kpis --details        # Include KPI descriptions
  domainmap list kpis --industry 2001  # KPIs of another industry`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			client, ctx, cancel, err := connect(cmd, app)
			if err != nil {
				return err
			}
			defer cancel()

			envelope, err := client.KPIs(ctx, app.IndustryID())
			if err != nil {
				return err
			}

			var records []onboarding.KPI
			if envelope != nil {
				records = envelope.Data
			}

			kpis, err := reconcile.KPIMap(records)
			if err != nil {
				return err
			}

			flags := formatFlags(app)
			showDetails := details || flags.Output == constants.FormatWide
			return output.FormatKPIs(kpis, showDetails, flags)
		},
	}

	cmd.Flags().BoolVar(&details, "details", false,
		"Show the source description for each KPI")

	return cmd
}
