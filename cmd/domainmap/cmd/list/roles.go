package list

import (
	"github.com/spf13/cobra"

	"github.com/experienceflow/domainmap/cmd/application"
	"github.com/experienceflow/domainmap/internal/cmd/globals"
	"github.com/experienceflow/domainmap/internal/cmd/output"
	"github.com/experienceflow/domainmap/pkg/reconcile"
)

// NewRolesCommand creates the list roles subcommand.
func NewRolesCommand(app application.Application) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "roles",
		Short:   "List organizational roles of the configured industry",
		Aliases: []string{"role"},
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			client, ctx, cancel, err := connect(cmd, app)
			if err != nil {
				return err
			}
			defer cancel()

			detail, err := client.IndustryDetails(ctx, app.IndustryID())
			if err != nil {
				return err
			}

			roles := reconcile.Roles(detail)

			resourceFlags := globals.ParseResources(cmd)
			return output.FormatRoles(limited(roles, resourceFlags.Limit), formatFlags(app))
		},
	}

	globals.AddResourceFlags(cmd)

	return cmd
}
