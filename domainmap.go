//go:generate gomarkdoc -e -f github -o README.md . --repository.url https://github.com/experienceflow/domainmap --repository.default-branch master --repository.path /

// Package domainmap assembles a customer domain model from the onboarding
// API. It authenticates the two-tier partner/customer token flow, fetches
// the industry resources (KPIs, functions, roles, contexts, data
// dictionaries), and reconciles them into one normalized model.
//
// Example usage:
//
//	client, err := domainmap.New(
//	    domainmap.WithBaseURL("https://onboarding.example.com"),
//	    domainmap.WithCredentials("admin@example.com", "secret"),
//	    domainmap.WithCustomerEmail("customer@example.com"),
//	    domainmap.WithIndustry(1915),
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	model, err := client.Assemble(ctx)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Printf("assembled %d KPIs across %d tables\n", len(model.KPIs), model.TableCount())
package domainmap

import (
	"github.com/experienceflow/domainmap/internal/gateway"
	"github.com/experienceflow/domainmap/internal/transport"
	"github.com/experienceflow/domainmap/pkg/errors"
)

// Client is the high-level entry point for the onboarding integration.
type Client interface {

	// Authenticator manages the partner/customer token flow
	Authenticator

	// Resources provides typed access to the onboarding API feeds
	Resources

	// Assembler runs the full model assembly pipeline
	Assembler

	// ProfileReader reads KPI profiles from the metric store
	ProfileReader
}

// New creates a new Client instance with the given options.
func New(opts ...Option) (Client, error) {
	o := defaults()
	for _, opt := range opts {
		if err := opt(o); err != nil {
			return nil, err
		}
	}
	if o.baseURL == "" {
		return nil, &errors.ConfigError{
			Component: "client",
			Message:   "base URL is required",
		}
	}

	topts := []transport.Option{transport.WithTimeout(o.timeout)}
	if o.httpClient != nil {
		topts = append(topts, transport.WithHTTPClient(o.httpClient))
	}
	if o.insecureTLS {
		topts = append(topts, transport.WithInsecureTLS())
	}
	if o.logger != nil {
		topts = append(topts, transport.WithLogger(*o.logger))
	}
	session := transport.New(o.baseURL, topts...)

	auth := gateway.NewAuth(session, gateway.Credentials{
		Email:    o.email,
		Password: o.password,
	})

	return &client{
		options: o,
		gateway: gateway.NewClient(session, auth),
	}, nil
}
