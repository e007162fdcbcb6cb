package domainmap

import (
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"github.com/experienceflow/domainmap/pkg/constants"
	"github.com/experienceflow/domainmap/pkg/metricstore"
)

// options holds the configured state for a Client.
type options struct {
	baseURL       string
	email         string
	password      string
	customerEmail string
	industryID    int64
	timeout       time.Duration
	httpClient    *http.Client
	insecureTLS   bool
	logger        *zerolog.Logger
	store         metricstore.Store
}

// defaults returns the default client options.
func defaults() *options {
	return &options{
		industryID: constants.DefaultIndustryID,
		timeout:    constants.DefaultHTTPTimeout,
	}
}

// Option is a function that configures a Client instance.
type Option func(*options) error

// WithBaseURL sets the onboarding API base URL. Required. The URL is used
// verbatim; request paths are appended to it without normalization.
func WithBaseURL(url string) Option {
	return func(o *options) error {
		o.baseURL = url
		return nil
	}
}

// WithCredentials sets the partner (admin) sign-in credentials.
func WithCredentials(email, password string) Option {
	return func(o *options) error {
		o.email = email
		o.password = password
		return nil
	}
}

// WithCustomerEmail sets the customer the assembled model is scoped to.
func WithCustomerEmail(email string) Option {
	return func(o *options) error {
		o.customerEmail = email
		return nil
	}
}

// WithIndustry sets the industry the model is assembled for.
func WithIndustry(id int64) Option {
	return func(o *options) error {
		o.industryID = id
		return nil
	}
}

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(h *http.Client) Option {
	return func(o *options) error {
		o.httpClient = h
		return nil
	}
}

// WithTimeout sets the default per-request timeout.
func WithTimeout(d time.Duration) Option {
	return func(o *options) error {
		o.timeout = d
		return nil
	}
}

// WithInsecureTLS disables server certificate verification for onboarding
// environments fronted by self-signed certificates.
func WithInsecureTLS() Option {
	return func(o *options) error {
		o.insecureTLS = true
		return nil
	}
}

// WithLogger sets the logger used across the client.
func WithLogger(logger *zerolog.Logger) Option {
	return func(o *options) error {
		o.logger = logger
		return nil
	}
}

// WithMetricStore attaches the relational metric store used for KPI
// profile lookups.
func WithMetricStore(store metricstore.Store) Option {
	return func(o *options) error {
		o.store = store
		return nil
	}
}
