// Package transport implements the HTTP session layer for the onboarding
// API. It owns URL assembly, header conventions, and the response tolerance
// policy: a successful exchange with an empty, whitespace, or non-JSON body
// yields an empty Payload rather than an error.
package transport

import (
	"bytes"
	"context"
	"crypto/tls"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"github.com/experienceflow/domainmap/pkg/constants"
	"github.com/experienceflow/domainmap/pkg/errors"
)

// Client is an HTTP session bound to a single onboarding API base URL.
// Request deadlines come from the context; the embedded http.Client carries
// no timeout of its own so per-call overrides work in both directions.
type Client struct {
	http    *http.Client
	baseURL string
	timeout time.Duration
	logger  zerolog.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) {
		if h != nil {
			c.http = h
		}
	}
}

// WithTimeout sets the default per-request deadline.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		if d > 0 {
			c.timeout = d
		}
	}
}

// WithInsecureTLS disables server certificate verification. Intended for
// onboarding environments fronted by self-signed certificates.
func WithInsecureTLS() Option {
	return func(c *Client) {
		base, ok := c.http.Transport.(*http.Transport)
		if !ok {
			if dt, isTransport := http.DefaultTransport.(*http.Transport); isTransport {
				base = dt
			} else {
				base = &http.Transport{}
			}
		}
		cloned := base.Clone()
		if cloned.TLSClientConfig == nil {
			cloned.TLSClientConfig = &tls.Config{MinVersion: tls.VersionTLS12}
		}
		cloned.TLSClientConfig.InsecureSkipVerify = true
		c.http.Transport = cloned
	}
}

// WithLogger sets the logger used for request tracing.
func WithLogger(logger zerolog.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// New creates a client for the given base URL. The base URL is never
// mutated; request paths are appended to it verbatim.
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		http:    &http.Client{},
		baseURL: baseURL,
		timeout: constants.DefaultHTTPTimeout,
		logger:  zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// BaseURL returns the base URL the client was created with.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Do performs one API exchange and classifies the response.
//
// Non-2xx statuses become *errors.APIError. A 2xx response whose body is
// empty, whitespace, or not valid JSON becomes an empty Payload; anything
// else is returned as a decoded Payload for the caller to unmarshal.
func (c *Client) Do(ctx context.Context, req Request) (Payload, error) {
	timeout := c.timeout
	if req.Timeout > 0 {
		timeout = req.Timeout
	}
	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	url := c.baseURL + req.Path
	if len(req.Query) > 0 {
		url += "?" + req.Query.Encode()
	}

	var body io.Reader
	if req.Body != nil {
		encoded, err := json.Marshal(req.Body)
		if err != nil {
			return Payload{}, errors.WrapParse("json", "request body", err)
		}
		body = bytes.NewReader(encoded)
	}

	httpReq, err := http.NewRequestWithContext(ctx, req.Method, url, body)
	if err != nil {
		return Payload{}, errors.WrapIO("create", url, err)
	}
	req.headers(httpReq)

	c.logger.Debug().
		Str("method", req.Method).
		Str("url", url).
		Bool("authenticated", req.Token != "").
		Msg("API request")

	resp, err := c.http.Do(httpReq)
	if err != nil {
		switch {
		case errors.Is(err, context.DeadlineExceeded):
			return Payload{}, fmt.Errorf("%s %s: %w", req.Method, url, errors.ErrTimeout)
		case errors.Is(err, context.Canceled):
			return Payload{}, fmt.Errorf("%s %s: %w", req.Method, url, errors.ErrCanceled)
		default:
			return Payload{}, errors.WrapIO("request", url, err)
		}
	}
	defer func() {
		if cerr := resp.Body.Close(); cerr != nil {
			c.logger.Warn().Err(cerr).Msg("failed to close response body")
		}
	}()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return Payload{}, errors.WrapIO("read", url, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return Payload{}, &errors.APIError{
			StatusCode: resp.StatusCode,
			URL:        url,
			Body:       string(bytes.TrimSpace(raw)),
		}
	}

	c.logger.Debug().
		Int("status", resp.StatusCode).
		Int("bytes", len(raw)).
		Msg("API response")

	trimmed := bytes.TrimSpace(raw)
	if resp.StatusCode == http.StatusNoContent || len(trimmed) == 0 || !json.Valid(trimmed) {
		return Payload{source: req.Path, empty: true}, nil
	}

	return Payload{source: req.Path, raw: trimmed}, nil
}
