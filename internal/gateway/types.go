// Package gateway implements the authenticated resource gateway to the
// onboarding API: partner and customer token management plus typed
// accessors for the industry, KPI, function, context, and dictionary
// resources.
package gateway

// Credentials are the admin (partner) user's sign-in credentials.
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// tokenResponse is the body of sign-in and client-token responses.
type tokenResponse struct {
	Token string `json:"token"`
}

// clientTokenRequest asks for a customer-scoped token.
type clientTokenRequest struct {
	Email string `json:"email"`
}

// dictionaryRequest selects the dictionary set for one function code.
type dictionaryRequest struct {
	FunctionCode string `json:"functionCode"`
}
