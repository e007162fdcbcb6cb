package domainmap

import (
	"context"

	"github.com/experienceflow/domainmap/pkg/errors"
	"github.com/experienceflow/domainmap/pkg/metricstore"
)

// Compile-time interface check to ensure proper implementation.
var _ ProfileReader = (*client)(nil)

// ProfileReader reads KPI identity and profile data from the metric store.
// Both methods fail with errors.ErrStoreNotConfigured when the client was
// built without WithMetricStore.
type ProfileReader interface {
	// KPINames returns the distinct KPI names known to the store
	KPINames(ctx context.Context) ([]string, error)

	// KPIProfile returns the stored profile for a KPI name, or (nil, nil)
	// when the store has no row for it
	KPIProfile(ctx context.Context, kpiName string) (*metricstore.Profile, error)
}

// KPINames returns the distinct KPI names known to the metric store.
func (c *client) KPINames(ctx context.Context) ([]string, error) {
	if c.options.store == nil {
		return nil, errors.ErrStoreNotConfigured
	}
	return c.options.store.KPINames(c.prepare(ctx))
}

// KPIProfile returns the stored profile for a KPI name.
func (c *client) KPIProfile(ctx context.Context, kpiName string) (*metricstore.Profile, error) {
	if c.options.store == nil {
		return nil, errors.ErrStoreNotConfigured
	}
	return c.options.store.KPIProfile(c.prepare(ctx), kpiName)
}
