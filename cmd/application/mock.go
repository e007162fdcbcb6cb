package application

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/experienceflow/domainmap"
	"github.com/experienceflow/domainmap/pkg/constants"
	"github.com/experienceflow/domainmap/pkg/errors"
	"github.com/experienceflow/domainmap/pkg/metricstore"
)

// Mock provides a mock implementation of Application for testing.
// Each method can be customized by setting the corresponding function field.
// If a function field is nil, the method returns a default/zero value.
type Mock struct {
	ClientFunc       func(...domainmap.Option) (domainmap.Client, error)
	StoreFunc        func(context.Context) (metricstore.Store, error)
	LoggerFunc       func() *zerolog.Logger
	OutputFormatFunc func() string
	IndustryIDFunc   func() int64
	VersionFunc      func() string
	CommitFunc       func() string
	DateFunc         func() string
	BuiltByFunc      func() string
}

// Client returns a client using the mock function or nil.
func (m *Mock) Client(opts ...domainmap.Option) (domainmap.Client, error) {
	if m.ClientFunc != nil {
		return m.ClientFunc(opts...)
	}
	return nil, nil
}

// Store returns a store using the mock function or ErrStoreNotConfigured.
func (m *Mock) Store(ctx context.Context) (metricstore.Store, error) {
	if m.StoreFunc != nil {
		return m.StoreFunc(ctx)
	}
	return nil, errors.ErrStoreNotConfigured
}

// Logger returns a logger using the mock function or a no-op logger.
func (m *Mock) Logger() *zerolog.Logger {
	if m.LoggerFunc != nil {
		return m.LoggerFunc()
	}
	logger := zerolog.Nop()
	return &logger
}

// OutputFormat returns the format using the mock function or "json".
func (m *Mock) OutputFormat() string {
	if m.OutputFormatFunc != nil {
		return m.OutputFormatFunc()
	}
	return "json"
}

// IndustryID returns the industry using the mock function or the default.
func (m *Mock) IndustryID() int64 {
	if m.IndustryIDFunc != nil {
		return m.IndustryIDFunc()
	}
	return constants.DefaultIndustryID
}

// Version returns version using the mock function or "dev".
func (m *Mock) Version() string {
	if m.VersionFunc != nil {
		return m.VersionFunc()
	}
	return "dev"
}

// Commit returns commit using the mock function or "unknown".
func (m *Mock) Commit() string {
	if m.CommitFunc != nil {
		return m.CommitFunc()
	}
	return "unknown"
}

// Date returns date using the mock function or "unknown".
func (m *Mock) Date() string {
	if m.DateFunc != nil {
		return m.DateFunc()
	}
	return "unknown"
}

// BuiltBy returns builtBy using the mock function or "test".
func (m *Mock) BuiltBy() string {
	if m.BuiltByFunc != nil {
		return m.BuiltByFunc()
	}
	return "test"
}

// Ensure Mock implements Application at compile time.
var _ Application = (*Mock)(nil)
