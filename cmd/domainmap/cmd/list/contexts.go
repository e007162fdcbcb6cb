package list

import (
	"github.com/spf13/cobra"

	"github.com/experienceflow/domainmap/cmd/application"
	"github.com/experienceflow/domainmap/internal/cmd/globals"
	"github.com/experienceflow/domainmap/internal/cmd/output"
	"github.com/experienceflow/domainmap/pkg/reconcile"
)

// NewContextsCommand creates the list contexts subcommand. Only metric
// function records that carry a context survive the reconciliation
// filter, so the list matches what an assembled model would contain.
func NewContextsCommand(app application.Application) *cobra.Command {
	return &cobra.Command{
		Use:     "contexts",
		Short:   "List analytics contexts for the configured industry",
		Aliases: []string{"context"},
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			client, ctx, cancel, err := connect(cmd, app)
			if err != nil {
				return err
			}
			defer cancel()

			records, err := client.IndustryMetricFunctions(ctx, app.IndustryID())
			if err != nil {
				return err
			}

			contexts := reconcile.ContextMap(reconcile.FilterContexts(records))
			return output.FormatContexts(contexts, formatFlags(app))
		},
	}
}

// NewContextTypesCommand creates the list context-types subcommand,
// showing the partner-level context type catalog.
func NewContextTypesCommand(app application.Application) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "context-types",
		Short:   "List the context types known to the onboarding API",
		Aliases: []string{"context-type"},
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			client, ctx, cancel, err := connect(cmd, app)
			if err != nil {
				return err
			}
			defer cancel()

			contextTypes, err := client.Contexts(ctx)
			if err != nil {
				return err
			}

			resourceFlags := globals.ParseResources(cmd)
			return output.FormatContextTypes(limited(contextTypes, resourceFlags.Limit), formatFlags(app))
		},
	}

	globals.AddResourceFlags(cmd)

	return cmd
}
