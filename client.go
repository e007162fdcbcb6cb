package domainmap

import (
	"context"

	"github.com/experienceflow/domainmap/internal/gateway"
	"github.com/experienceflow/domainmap/pkg/logging"
	"github.com/experienceflow/domainmap/pkg/onboarding"
)

// Compile-time interface check to ensure proper implementation.
var _ Client = (*client)(nil)

// client is the internal implementation of the Client interface.
type client struct {
	options *options
	gateway *gateway.Client
}

// prepare stamps the configured logger into the context so the lower
// layers log through it.
func (c *client) prepare(ctx context.Context) context.Context {
	if c.options.logger != nil {
		ctx = logging.WithLogger(ctx, c.options.logger)
	}
	return ctx
}

// Authenticator manages the two-tier partner/customer token flow.
type Authenticator interface {
	// Authenticate signs in with the partner credentials and caches the
	// partner token
	Authenticate(ctx context.Context) error

	// MintCustomerToken exchanges the partner token for a customer-scoped
	// token; it fails before any HTTP when no partner token is cached
	MintCustomerToken(ctx context.Context, customerEmail string) error
}

// Authenticate signs in with the partner credentials.
func (c *client) Authenticate(ctx context.Context) error {
	return c.gateway.Auth().Authenticate(c.prepare(ctx))
}

// MintCustomerToken mints a customer-scoped token for the given email.
func (c *client) MintCustomerToken(ctx context.Context, customerEmail string) error {
	return c.gateway.Auth().MintCustomerToken(c.prepare(ctx), customerEmail)
}

// Resources provides typed access to the onboarding API feeds. All calls
// require a prior Authenticate.
type Resources interface {
	Industries(ctx context.Context) ([]onboarding.Industry, error)
	IndustryCategories(ctx context.Context) ([]onboarding.Industry, error)
	IndustryDetails(ctx context.Context, industryID int64) (onboarding.IndustryDetail, error)
	KPIs(ctx context.Context, industryID int64) (*onboarding.KPIEnvelope, error)
	Functions(ctx context.Context) ([]onboarding.Function, error)
	Contexts(ctx context.Context) ([]onboarding.ContextType, error)
	IndustryMetricFunctions(ctx context.Context, industryID int64) ([]onboarding.MetricFunction, error)
	DictionaryList(ctx context.Context, functionCode string) ([]onboarding.DictionaryEntry, error)
	Dictionary(ctx context.Context, functionCode string) ([]onboarding.DictionaryEntry, error)
}

// Industries lists all industries.
func (c *client) Industries(ctx context.Context) ([]onboarding.Industry, error) {
	return c.gateway.Industries(c.prepare(ctx))
}

// IndustryCategories lists the industry categories.
func (c *client) IndustryCategories(ctx context.Context) ([]onboarding.Industry, error) {
	return c.gateway.IndustryCategories(c.prepare(ctx))
}

// IndustryDetails fetches one industry with its roles.
func (c *client) IndustryDetails(ctx context.Context, industryID int64) (onboarding.IndustryDetail, error) {
	return c.gateway.IndustryDetails(c.prepare(ctx), industryID)
}

// KPIs fetches the KPI listing for an industry. The envelope is nil when
// the service returned no payload at all.
func (c *client) KPIs(ctx context.Context, industryID int64) (*onboarding.KPIEnvelope, error) {
	return c.gateway.KPIs(c.prepare(ctx), industryID)
}

// Functions fetches the raw functions feed.
func (c *client) Functions(ctx context.Context) ([]onboarding.Function, error) {
	return c.gateway.Functions(c.prepare(ctx))
}

// Contexts fetches the context type listing.
func (c *client) Contexts(ctx context.Context) ([]onboarding.ContextType, error) {
	return c.gateway.Contexts(c.prepare(ctx))
}

// IndustryMetricFunctions fetches the metric-function feed for an industry.
func (c *client) IndustryMetricFunctions(ctx context.Context, industryID int64) ([]onboarding.MetricFunction, error) {
	return c.gateway.IndustryMetricFunctions(c.prepare(ctx), industryID)
}

// DictionaryList fetches the dictionary listing for a function code.
func (c *client) DictionaryList(ctx context.Context, functionCode string) ([]onboarding.DictionaryEntry, error) {
	return c.gateway.DictionaryList(c.prepare(ctx), functionCode)
}

// Dictionary fetches the dictionary entries for a function code.
func (c *client) Dictionary(ctx context.Context, functionCode string) ([]onboarding.DictionaryEntry, error) {
	return c.gateway.Dictionary(c.prepare(ctx), functionCode)
}
