package gateway

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/experienceflow/domainmap/internal/transport"
	"github.com/experienceflow/domainmap/pkg/constants"
	"github.com/experienceflow/domainmap/pkg/onboarding"
)

// Client is the typed resource gateway to the onboarding API. Every
// operation authenticates with the partner token; customer tokens are
// minted for downstream systems but never substituted here. Operations
// propagate session errors unchanged and never retry.
type Client struct {
	transport *transport.Client
	auth      *Auth
}

// NewClient creates a gateway backed by the given session and auth
// manager.
func NewClient(t *transport.Client, auth *Auth) *Client {
	return &Client{
		transport: t,
		auth:      auth,
	}
}

// Auth returns the auth manager the gateway authenticates with.
func (c *Client) Auth() *Auth {
	return c.auth
}

// get performs a partner-authenticated GET.
func (c *Client) get(ctx context.Context, path string, query url.Values) (transport.Payload, error) {
	return c.transport.Do(ctx, transport.Request{
		Method: http.MethodGet,
		Path:   path,
		Token:  c.auth.PartnerToken(),
		Query:  query,
	})
}

// Industries retrieves all available industries (model templates).
func (c *Client) Industries(ctx context.Context) ([]onboarding.Industry, error) {
	payload, err := c.get(ctx, "/api/industry", nil)
	if err != nil {
		return nil, err
	}
	var industries []onboarding.Industry
	if err := payload.Key("data").Decode(&industries); err != nil {
		return nil, err
	}
	return industries, nil
}

// IndustryCategories retrieves all available industry categories.
func (c *Client) IndustryCategories(ctx context.Context) ([]onboarding.Industry, error) {
	payload, err := c.get(ctx, "/api/industry/category", nil)
	if err != nil {
		return nil, err
	}
	var categories []onboarding.Industry
	if err := payload.Key("data").Decode(&categories); err != nil {
		return nil, err
	}
	return categories, nil
}

// IndustryDetails retrieves the detailed configuration for one industry,
// including its roles.
func (c *Client) IndustryDetails(ctx context.Context, industryID int64) (onboarding.IndustryDetail, error) {
	var detail onboarding.IndustryDetail
	payload, err := c.get(ctx, fmt.Sprintf("/api/industry/%d", industryID), nil)
	if err != nil {
		return detail, err
	}
	if err := payload.Key("data").Decode(&detail); err != nil {
		return detail, err
	}
	return detail, nil
}

// KPIs retrieves the full KPI set for an industry. The envelope is
// returned intact; a nil envelope means the exchange produced no payload
// at all, which callers treat differently from an empty KPI list.
func (c *Client) KPIs(ctx context.Context, industryID int64) (*onboarding.KPIEnvelope, error) {
	query := url.Values{}
	query.Set("type", constants.KPIListType)

	payload, err := c.get(ctx, fmt.Sprintf("/api/industry-all-kpi/%d", industryID), query)
	if err != nil {
		return nil, err
	}
	if payload.IsEmpty() {
		return nil, nil
	}

	var envelope onboarding.KPIEnvelope
	if err := payload.Decode(&envelope); err != nil {
		return nil, err
	}
	return &envelope, nil
}

// Functions retrieves all function blobs.
func (c *Client) Functions(ctx context.Context) ([]onboarding.Function, error) {
	payload, err := c.get(ctx, "/api/function", nil)
	if err != nil {
		return nil, err
	}
	var functions []onboarding.Function
	if err := payload.Key("data").Decode(&functions); err != nil {
		return nil, err
	}
	return functions, nil
}

// Contexts retrieves all context types.
func (c *Client) Contexts(ctx context.Context) ([]onboarding.ContextType, error) {
	payload, err := c.get(ctx, "/api/contextTypes", nil)
	if err != nil {
		return nil, err
	}
	var contexts []onboarding.ContextType
	if err := payload.Key("data").Decode(&contexts); err != nil {
		return nil, err
	}
	return contexts, nil
}

// IndustryMetricFunctions retrieves the metric function records for an
// industry as a bare array.
func (c *Client) IndustryMetricFunctions(ctx context.Context, industryID int64) ([]onboarding.MetricFunction, error) {
	payload, err := c.get(ctx, fmt.Sprintf("/api/industry-metric/function/%d", industryID), nil)
	if err != nil {
		return nil, err
	}
	var records []onboarding.MetricFunction
	if err := payload.Decode(&records); err != nil {
		return nil, err
	}
	return records, nil
}

// DictionaryList retrieves the dictionary entries for a function code via
// the list endpoint.
func (c *Client) DictionaryList(ctx context.Context, functionCode string) ([]onboarding.DictionaryEntry, error) {
	payload, err := c.get(ctx, "/api/domains/dictionaryList/"+functionCode, nil)
	if err != nil {
		return nil, err
	}
	var entries []onboarding.DictionaryEntry
	if err := payload.Key("data").Decode(&entries); err != nil {
		return nil, err
	}
	return entries, nil
}

// Dictionary retrieves the dictionary entries for a function code as a
// bare array.
func (c *Client) Dictionary(ctx context.Context, functionCode string) ([]onboarding.DictionaryEntry, error) {
	payload, err := c.transport.Do(ctx, transport.Request{
		Method: http.MethodPost,
		Path:   "/api/domains/getDictionary",
		Token:  c.auth.PartnerToken(),
		Body:   dictionaryRequest{FunctionCode: functionCode},
	})
	if err != nil {
		return nil, err
	}
	var entries []onboarding.DictionaryEntry
	if err := payload.Decode(&entries); err != nil {
		return nil, err
	}
	return entries, nil
}
