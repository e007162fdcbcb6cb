package gateway

import (
	"context"
	"net/http"
	"sync"

	"github.com/experienceflow/domainmap/internal/transport"
	"github.com/experienceflow/domainmap/pkg/errors"
	"github.com/experienceflow/domainmap/pkg/logging"
)

// Auth manages the two authentication tracks of the onboarding API: a
// partner token minted from admin credentials, and customer tokens minted
// with the partner token. Tokens are cached without expiry tracking; a
// downstream 401 or 403 surfaces as an APIError and re-authentication is
// the caller's decision.
type Auth struct {
	transport *transport.Client
	creds     Credentials

	mu            sync.RWMutex
	partnerToken  string
	customerToken string
}

// NewAuth creates an auth manager for the given session and credentials.
func NewAuth(t *transport.Client, creds Credentials) *Auth {
	return &Auth{
		transport: t,
		creds:     creds,
	}
}

// Authenticate signs in with the partner credentials and caches the
// partner token. A successful exchange that carries no token is an
// authentication contract violation, not an HTTP error.
func (a *Auth) Authenticate(ctx context.Context) error {
	if a.creds.Email == "" || a.creds.Password == "" {
		return &errors.AuthenticationError{
			Stage:   "partner",
			Message: "admin credentials not configured",
			Err:     errors.ErrCredentialsRequired,
		}
	}

	payload, err := a.transport.Do(ctx, transport.Request{
		Method: http.MethodPost,
		Path:   "/api/user/signin",
		Body:   a.creds,
	})
	if err != nil {
		return err
	}

	var resp tokenResponse
	if err := payload.Decode(&resp); err != nil {
		return err
	}
	if resp.Token == "" {
		return &errors.AuthenticationError{
			Stage:   "partner",
			Message: "sign-in succeeded but no token in response",
		}
	}

	a.mu.Lock()
	a.partnerToken = resp.Token
	a.mu.Unlock()

	logging.Ctx(ctx).Info().Msg("partner authentication successful, token cached")
	return nil
}

// MintCustomerToken generates and caches a token scoped to one customer.
// The partner token is a precondition; without it no HTTP call is made.
func (a *Auth) MintCustomerToken(ctx context.Context, customerEmail string) error {
	partner := a.PartnerToken()
	if partner == "" {
		return &errors.AuthenticationError{
			Stage:   "customer",
			Message: "cannot mint customer token before partner sign-in",
			Err:     errors.ErrTokenRequired,
		}
	}

	payload, err := a.transport.Do(ctx, transport.Request{
		Method: http.MethodPost,
		Path:   "/api/onboarding/partner/generate-client-token",
		Token:  partner,
		Body:   clientTokenRequest{Email: customerEmail},
	})
	if err != nil {
		return err
	}

	var resp tokenResponse
	if err := payload.Decode(&resp); err != nil {
		return err
	}
	if resp.Token == "" {
		return &errors.AuthenticationError{
			Stage:   "customer",
			Message: "no customer token found in response",
		}
	}

	a.mu.Lock()
	a.customerToken = resp.Token
	a.mu.Unlock()

	logging.Ctx(ctx).Info().Str("customer", customerEmail).Msg("customer token generated")
	return nil
}

// PartnerToken returns the cached partner token, or "" before sign-in.
func (a *Auth) PartnerToken() string {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.partnerToken
}

// CustomerToken returns the cached customer token, or "" before minting.
func (a *Auth) CustomerToken() string {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.customerToken
}
