package transport

import (
	"net/http"
	"net/url"
	"time"
)

// authScheme is the Authorization scheme the onboarding API expects.
// The API uses "Token", not "Bearer".
const authScheme = "Token"

// Request describes a single onboarding API call.
type Request struct {
	// Method is the HTTP method, e.g. http.MethodGet.
	Method string

	// Path is appended to the client base URL verbatim.
	Path string

	// Token, when non-empty, is sent as "Authorization: Token <value>".
	Token string

	// Query holds optional query parameters.
	Query url.Values

	// Body, when non-nil, is JSON-encoded as the request body.
	Body any

	// Timeout overrides the client default deadline when positive.
	Timeout time.Duration
}

// headers stamps the standard header set onto the outgoing request.
// Content-Type is set only when a body is present, and Authorization only
// when a token was supplied.
func (r Request) headers(req *http.Request) {
	req.Header.Set("Accept", "application/json")
	if r.Body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if r.Token != "" {
		req.Header.Set("Authorization", authScheme+" "+r.Token)
	}
}
