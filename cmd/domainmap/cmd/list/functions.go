package list

import (
	"github.com/spf13/cobra"

	"github.com/experienceflow/domainmap/cmd/application"
	"github.com/experienceflow/domainmap/internal/cmd/constants"
	"github.com/experienceflow/domainmap/internal/cmd/globals"
	"github.com/experienceflow/domainmap/internal/cmd/output"
	"github.com/experienceflow/domainmap/pkg/onboarding"
	"github.com/experienceflow/domainmap/pkg/reconcile"
)

// NewFunctionsCommand creates the list functions subcommand.
// Function details are the reconciled view: industry function records
// grouped by name and selected by the KPI references of the configured
// industry.
func NewFunctionsCommand(app application.Application) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "functions",
		Short:   "List function details referenced by the industry KPIs",
		Aliases: []string{"function"},
		Args:    cobra.NoArgs,
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

			var kpis []onboarding.KPI
			if envelope != nil {
				kpis = envelope.Data
			}

			functions, err := client.Functions(ctx)
			if err != nil {
				return err
			}

			details := reconcile.FunctionInfo(kpis, functions)

			resourceFlags := globals.ParseResources(cmd)
			flags := formatFlags(app)
			showDetails := resourceFlags.Details || flags.Output == constants.FormatWide
			return output.FormatFunctions(limited(details, resourceFlags.Limit), showDetails, flags)
		},
	}

	globals.AddResourceFlags(cmd)

	return cmd
}
