package list

import (
	"github.com/spf13/cobra"

	"github.com/experienceflow/domainmap/cmd/application"
	"github.com/experienceflow/domainmap/internal/cmd/globals"
	"github.com/experienceflow/domainmap/internal/cmd/output"
)

// NewIndustriesCommand creates the list industries subcommand.
func NewIndustriesCommand(app application.Application) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "industries",
		Short:   "List industries known to the platform",
		Aliases: []string{"industry"},
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			client, ctx, cancel, err := connect(cmd, app)
			if err != nil {
				return err
			}
			defer cancel()

			industries, err := client.Industries(ctx)
			if err != nil {
				return err
			}

			resourceFlags := globals.ParseResources(cmd)
			return output.FormatIndustries(limited(industries, resourceFlags.Limit), formatFlags(app))
		},
	}

	globals.AddResourceFlags(cmd)

	return cmd
}

// NewCategoriesCommand creates the list categories subcommand.
func NewCategoriesCommand(app application.Application) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "categories",
		Short:   "List industry categories",
		Aliases: []string{"category"},
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			client, ctx, cancel, err := connect(cmd, app)
			if err != nil {
				return err
			}
			defer cancel()

			categories, err := client.IndustryCategories(ctx)
			if err != nil {
				return err
			}

			resourceFlags := globals.ParseResources(cmd)
			return output.FormatIndustries(limited(categories, resourceFlags.Limit), formatFlags(app))
		},
	}

	globals.AddResourceFlags(cmd)

	return cmd
}
