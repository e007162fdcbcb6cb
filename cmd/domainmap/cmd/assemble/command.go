// Package assemble provides the command that builds the full domain model.
package assemble

import (
	"context"
	"encoding/json"
	"os"

	"github.com/spf13/cobra"

	"github.com/experienceflow/domainmap/cmd/application"
	"github.com/experienceflow/domainmap/internal/cmd/globals"
	"github.com/experienceflow/domainmap/internal/cmd/output"
	"github.com/experienceflow/domainmap/pkg/constants"
	"github.com/experienceflow/domainmap/pkg/domain"
	"github.com/experienceflow/domainmap/pkg/errors"
)

// NewCommand creates the assemble command with app dependencies.
func NewCommand(app application.Application) *cobra.Command {
	var savePath string

	cmd := &cobra.Command{
		Use:     "assemble",
		GroupID: "core",
		Short:   "Assemble the domain model from the onboarding API",
		Long: `Assemble runs the full reconciliation pipeline: it authenticates the
partner and customer tokens, queries KPIs, functions, roles, contexts,
and the dictionary for every distinct function code, and reconciles the
feeds into a single normalized domain model.`,
		Example: `  domainmap assemble                     # Render a model summary
  domainmap assemble -o json             # Emit the full model as JSON
  domainmap assemble --save model.json   # Write the model to a file`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			client, err := app.Client()
			if err != nil {
				return err
			}

			ctx, cancel := context.WithTimeout(cmd.Context(), constants.AssembleTimeout)
			defer cancel()

			model, err := client.Assemble(ctx)
			if err != nil {
				return err
			}

			if savePath != "" {
				if err := writeModel(savePath, model); err != nil {
					return err
				}
				app.Logger().Info().Str("path", savePath).Msg("model written")
			}

			return output.FormatModel(model, &globals.Flags{Output: app.OutputFormat()})
		},
	}

	cmd.Flags().StringVar(&savePath, "save", "", "Write the assembled model to a JSON file")

	return cmd
}

// writeModel marshals the model to indented JSON and writes it to path.
func writeModel(path string, model *domain.Model) error {
	data, err := json.MarshalIndent(model, "", "  ")
	if err != nil {
		return errors.WrapParse("json", "domain model", err)
	}
	if err := os.WriteFile(path, data, constants.FilePermissions); err != nil {
		return errors.WrapIO("write", path, err)
	}
	return nil
}
