package errors_test

import (
	"fmt"
	"net/http"

	"github.com/experienceflow/domainmap/pkg/errors"
)

// Example demonstrates basic error creation and checking.
func Example() {
	// Create a not found error
	err := &errors.NotFoundError{
		Resource: "industry",
		ID:       "1915",
	}

	// Check error type
	if errors.IsNotFound(err) {
		fmt.Println("Resource not found")
	}

	// Output: Resource not found
}

// Example_aPIError demonstrates API status error handling.
func Example_aPIError() {
	// Simulate a non-2xx response
	err := &errors.APIError{
		StatusCode: 429,
		URL:        "https://onboarding.example.com/api/industry",
		Body:       "Rate limit exceeded",
	}

	switch err.StatusCode {
	case 429:
		fmt.Println("Rate limited - retry later")
	case 401:
		fmt.Println("Authentication failed")
	case 500:
		fmt.Println("Server error")
	}

	// Output: Rate limited - retry later
}

// Example_authenticationError shows authentication contract violations.
func Example_authenticationError() {
	// A 2xx sign-in response that carried no token
	err := &errors.AuthenticationError{
		Stage:   "partner",
		Message: "response contained no token",
	}

	fmt.Printf("Auth failed at %s stage: %s\n", err.Stage, err.Message)

	// Output: Auth failed at partner stage: response contained no token
}

// Example_validationError shows input validation errors.
func Example_validationError() {
	// A KPI Goal attribute that cannot be parsed as a number
	goal := "forty-two"
	err := &errors.ValidationError{
		Field:   "Goal",
		Value:   goal,
		Message: "cannot parse as float",
	}
	fmt.Println(err.Error())

	// Output: validation failed for field Goal: cannot parse as float
}

// Example_errorWrapping demonstrates error wrapping patterns.
func Example_errorWrapping() {
	// Original error
	originalErr := fmt.Errorf("connection refused")

	// Wrap with IO error
	ioErr := errors.WrapIO("connect", "onboarding.example.com", originalErr)

	// Wrap with API error
	_ = &errors.APIError{
		URL:  "https://onboarding.example.com/api/function",
		Body: "failed to connect",
		Err:  ioErr,
	}

	fmt.Println("API error occurred")

	// Output: API error occurred
}

// Example_hTTPStatusMapping maps HTTP codes to error types.
func Example_hTTPStatusMapping() {
	mapHTTPError := func(status int, url string) error {
		switch status {
		case http.StatusUnauthorized, http.StatusForbidden:
			return &errors.APIError{StatusCode: status, URL: url, Body: "unauthorized"}
		default:
			return &errors.APIError{StatusCode: status, URL: url, Body: http.StatusText(status)}
		}
	}

	err := mapHTTPError(401, "https://onboarding.example.com/api/user/signin")
	if errors.IsUnauthorized(err) {
		fmt.Println("Authentication required")
	}

	// Output: Authentication required
}
