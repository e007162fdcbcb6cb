// Package app provides the application context and dependency management
// for the domainmap CLI. It follows idiomatic Go patterns for CLI applications
// by centralizing configuration, dependency injection, and lifecycle management.
package app

import (
	"context"
	"sync"

	"github.com/rs/zerolog"

	"github.com/experienceflow/domainmap"
	"github.com/experienceflow/domainmap/internal/cmd/globals"
	"github.com/experienceflow/domainmap/pkg/errors"
	"github.com/experienceflow/domainmap/pkg/metricstore"
	"github.com/experienceflow/domainmap/pkg/metricstore/postgres"
)

// App represents the domainmap application with all its dependencies.
// It provides a centralized place for configuration, logging, the
// onboarding client, and the metric store, following the dependency
// injection pattern.
type App struct {
	// Version information
	version string
	commit  string
	date    string
	builtBy string

	// Configuration
	config *Config

	// Common command flags, bound at root command creation
	flags *globals.Flags

	// Logger
	logger *zerolog.Logger

	// Onboarding client and metric store (lazy-initialized singletons)
	mu     sync.RWMutex
	client domainmap.Client
	store  *postgres.Store
}

// New creates a new App instance with the given version information.
// The app is initialized with configuration loaded from the environment
// that can be customized using functional options.
func New(version, commit, date, builtBy string, opts ...Option) (*App, error) {
	app := &App{
		version: version,
		commit:  commit,
		date:    date,
		builtBy: builtBy,
	}

	// Load configuration
	config, err := LoadConfig()
	if err != nil {
		return nil, err
	}
	app.config = config

	// Initialize logger
	logger := NewLogger(config)
	app.logger = &logger

	// Apply any custom options
	for _, opt := range opts {
		if err := opt(app); err != nil {
			return nil, err
		}
	}

	return app, nil
}

// Version returns the version information.
func (a *App) Version() string {
	return a.version
}

// Commit returns the git commit hash.
func (a *App) Commit() string {
	return a.commit
}

// Date returns the build date.
func (a *App) Date() string {
	return a.date
}

// BuiltBy returns the build system identifier.
func (a *App) BuiltBy() string {
	return a.builtBy
}

// Config returns the application configuration.
func (a *App) Config() *Config {
	return a.config
}

// Logger returns the application logger.
func (a *App) Logger() *zerolog.Logger {
	return a.logger
}

// OutputFormat returns the resolved output format.
func (a *App) OutputFormat() string {
	return a.config.Output
}

// IndustryID returns the industry scope for KPI and context queries.
func (a *App) IndustryID() int64 {
	return a.config.IndustryID
}

// Client returns the onboarding client. Without options it returns the
// cached default instance, creating it lazily; this is thread-safe and
// ensures only one instance is created. With options it creates a new
// instance layered over the app configuration.
func (a *App) Client(opts ...domainmap.Option) (domainmap.Client, error) {
	if len(opts) > 0 {
		c, err := domainmap.New(append(a.buildClientOptions(), opts...)...)
		if err != nil {
			return nil, err
		}
		return c, nil
	}

	a.mu.RLock()
	if a.client != nil {
		c := a.client
		a.mu.RUnlock()
		return c, nil
	}
	a.mu.RUnlock()

	a.mu.Lock()
	defer a.mu.Unlock()

	// Double-check after acquiring write lock
	if a.client != nil {
		return a.client, nil
	}

	c, err := domainmap.New(a.buildClientOptions()...)
	if err != nil {
		return nil, err
	}

	a.client = c
	return c, nil
}

// Store returns the metric profile store, opening the connection pool
// lazily on first use. This is thread-safe and ensures only one pool is
// created; Shutdown releases it.
func (a *App) Store(ctx context.Context) (metricstore.Store, error) {
	a.mu.RLock()
	if a.store != nil {
		s := a.store
		a.mu.RUnlock()
		return s, nil
	}
	a.mu.RUnlock()

	if a.config.StoreDSN == "" {
		return nil, errors.ErrStoreNotConfigured
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	// Double-check after acquiring write lock
	if a.store != nil {
		return a.store, nil
	}

	s, err := postgres.New(ctx, a.config.StoreDSN)
	if err != nil {
		return nil, err
	}

	a.store = s
	return s, nil
}

// Shutdown performs graceful shutdown of the application.
// It releases the metric store connection pool if one was opened.
func (a *App) Shutdown(_ context.Context) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.store != nil {
		a.store.Close()
		a.store = nil
	}

	return nil
}

// buildClientOptions constructs onboarding client options from the app
// configuration.
func (a *App) buildClientOptions() []domainmap.Option {
	opts := []domainmap.Option{
		domainmap.WithBaseURL(a.config.BaseURL),
		domainmap.WithCredentials(a.config.AdminEmail, a.config.AdminPassword),
		domainmap.WithLogger(a.logger),
	}

	if a.config.CustomerEmail != "" {
		opts = append(opts, domainmap.WithCustomerEmail(a.config.CustomerEmail))
	}

	if a.config.IndustryID != 0 {
		opts = append(opts, domainmap.WithIndustry(a.config.IndustryID))
	}

	if a.config.Timeout > 0 {
		opts = append(opts, domainmap.WithTimeout(a.config.Timeout))
	}

	if a.config.InsecureTLS {
		opts = append(opts, domainmap.WithInsecureTLS())
	}

	return opts
}

// Option is a functional option for configuring the App.
type Option func(*App) error

// WithConfig sets a custom configuration.
func WithConfig(config *Config) Option {
	return func(a *App) error {
		a.config = config
		return nil
	}
}

// WithLogger sets a custom logger.
func WithLogger(logger *zerolog.Logger) Option {
	return func(a *App) error {
		a.logger = logger
		return nil
	}
}

// WithClient sets a custom onboarding client (useful for testing).
func WithClient(c domainmap.Client) Option {
	return func(a *App) error {
		a.client = c
		return nil
	}
}
