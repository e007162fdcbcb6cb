package list

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/experienceflow/domainmap"
	"github.com/experienceflow/domainmap/cmd/application"
	"github.com/experienceflow/domainmap/internal/cmd/globals"
	"github.com/experienceflow/domainmap/pkg/constants"
)

// connect returns an authenticated client together with a command-scoped
// context. The caller must invoke cancel when done.
func connect(cmd *cobra.Command, app application.Application) (domainmap.Client, context.Context, context.CancelFunc, error) {
	client, err := app.Client()
	if err != nil {
		return nil, nil, nil, err
	}

	ctx, cancel := context.WithTimeout(cmd.Context(), constants.CommandTimeout)

	if err := client.Authenticate(ctx); err != nil {
		cancel()
		return nil, nil, nil, err
	}

	return client, ctx, cancel, nil
}

// formatFlags builds the output flags for a list command.
func formatFlags(app application.Application) *globals.Flags {
	return &globals.Flags{Output: app.OutputFormat()}
}

// limited truncates a slice to the --limit flag value when one is set.
func limited[T any](items []T, limit int) []T {
	if limit > 0 && len(items) > limit {
		return items[:limit]
	}
	return items
}
