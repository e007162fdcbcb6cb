package list

import (
	"github.com/spf13/cobra"

	"github.com/experienceflow/domainmap/cmd/application"
	"github.com/experienceflow/domainmap/internal/cmd/output"
	"github.com/experienceflow/domainmap/pkg/domain"
	"github.com/experienceflow/domainmap/pkg/reconcile"
)

// NewTablesCommand creates the list tables subcommand. Each argument is
// a function code whose dictionary is fetched and rendered as normalized
// tables.
func NewTablesCommand(app application.Application) *cobra.Command {
	return &cobra.Command{
		Use:   "tables <function-code> [function-code...]",
		Short: "List dictionary tables for one or more function codes",
		Example: `  # Tables behind a single function code
  domainmap list tables FIN_AR

  # Compare the dictionaries of several codes at once
  domainmap list tables FIN_AR FIN_AP OPS_INV`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, ctx, cancel, err := connect(cmd, app)
			if err != nil {
				return err
			}
			defer cancel()

			if len(args) == 1 {
				entries, err := client.Dictionary(ctx, args[0])
				if err != nil {
					return err
				}
				return output.FormatTables(reconcile.Tables(entries), formatFlags(app))
			}

			dictionaries := make(map[string][]domain.Table, len(args))
			for _, code := range args {
				entries, err := client.Dictionary(ctx, code)
				if err != nil {
					return err
				}
				dictionaries[code] = reconcile.Tables(entries)
			}
			return output.FormatDictionaries(dictionaries, formatFlags(app))
		},
	}
}
