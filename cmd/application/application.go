// Package application provides the application interface for domainmap commands.
//
// The Application interface defines the contract between the application layer and
// command implementations, enabling dependency injection and testability.
//
// Design Principles:
//   - Accept interfaces, return structs (Go proverb)
//   - Define interfaces where they're used, not where they're implemented
//   - Keep interfaces small and focused
//
// Usage in Commands:
//
//	import (
//	    "context"
//	    "github.com/experienceflow/domainmap/cmd/application"
//	)
//
//	func NewCommand(app application.Application) *cobra.Command {
//	    return &cobra.Command{
//	        RunE: func(cmd *cobra.Command, args []string) error {
//	            client, err := app.Client()
//	            if err != nil {
//	                return err
//	            }
//	            // ... use client
//	            return nil
//	        },
//	    }
//	}
//
// Testing with Mocks:
//
//	mock := &application.Mock{
//	    StoreFunc: func(ctx context.Context) (metricstore.Store, error) {
//	        return testStore, nil
//	    },
//	}
//	cmd := NewCommand(mock)
//	// ... test command behavior
package application

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/experienceflow/domainmap"
	"github.com/experienceflow/domainmap/pkg/metricstore"
)

// Application provides the application interface that commands need.
// The App struct from cmd/domainmap/app automatically implements this interface,
// providing dependency injection for commands while maintaining testability.
//
// Commands should accept this interface rather than the concrete App type,
// allowing for easier testing with mock implementations.
//
// Thread Safety: All methods must be safe for concurrent access.
type Application interface {
	// Client returns the onboarding client with optional configuration.
	// When called without options, returns the default cached instance
	// (lazy-initialized, thread-safe). When called with options, creates a
	// new instance layered over the app configuration (no caching).
	//
	// Examples:
	//   c, err := app.Client()                  // default instance (cached)
	//   c, err := app.Client(opt1, opt2)        // custom instance (new)
	Client(opts ...domainmap.Option) (domainmap.Client, error)

	// Store returns the metric profile store, opening the connection lazily
	// if needed. Fails when no store DSN is configured.
	Store(ctx context.Context) (metricstore.Store, error)

	// Logger returns the configured logger instance.
	// Commands should use this for all logging operations.
	Logger() *zerolog.Logger

	// OutputFormat returns the resolved output format (json, yaml, table, wide).
	// Commands that support different output formats should use this.
	OutputFormat() string

	// IndustryID returns the industry scope for KPI and context queries.
	IndustryID() int64

	// Version returns the application version string.
	Version() string

	// Commit returns the git commit hash.
	Commit() string

	// Date returns the build date.
	Date() string

	// BuiltBy returns the build system identifier.
	BuiltBy() string
}
