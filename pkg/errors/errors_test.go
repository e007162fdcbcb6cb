package errors_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pkgerrors "github.com/experienceflow/domainmap/pkg/errors"
)

func TestNew(t *testing.T) {
	err := pkgerrors.New("test error")
	assert.NotNil(t, err)
	assert.Equal(t, "test error", err.Error())
}

func TestNotFoundError(t *testing.T) {
	t.Run("basic error", func(t *testing.T) {
		err := &pkgerrors.NotFoundError{
			Resource: "industry",
			ID:       "1915",
		}
		assert.Equal(t, "industry with ID 1915 not found", err.Error())
		assert.True(t, errors.Is(err, pkgerrors.ErrNotFound))
	})

	t.Run("constructor", func(t *testing.T) {
		err := pkgerrors.NewNotFoundError("kpi", "stories-closed")
		assert.Equal(t, "kpi with ID stories-closed not found", err.Error())
		assert.True(t, pkgerrors.IsNotFound(err))
	})

	t.Run("wrapped error", func(t *testing.T) {
		base := pkgerrors.NewNotFoundError("context", "42")
		wrapped := errors.Join(errors.New("failed"), base)
		assert.True(t, pkgerrors.IsNotFound(wrapped))
	})
}

func TestValidationError(t *testing.T) {
	t.Run("with field", func(t *testing.T) {
		err := &pkgerrors.ValidationError{
			Field:   "Goal",
			Message: "not a number",
		}
		assert.Equal(t, "validation failed for field Goal: not a number", err.Error())
		assert.True(t, errors.Is(err, pkgerrors.ErrInvalidInput))
	})

	t.Run("without field", func(t *testing.T) {
		err := &pkgerrors.ValidationError{
			Message: "invalid configuration",
		}
		assert.Equal(t, "validation failed: invalid configuration", err.Error())
		assert.True(t, pkgerrors.IsValidationError(err))
	})

	t.Run("constructor", func(t *testing.T) {
		err := pkgerrors.NewValidationError("Goal", "n/a", "cannot parse as float")
		assert.Contains(t, err.Error(), "Goal")
		assert.Contains(t, err.Error(), "cannot parse as float")
	})
}

func TestAPIError(t *testing.T) {
	t.Run("with body", func(t *testing.T) {
		err := &pkgerrors.APIError{
			StatusCode: 429,
			URL:        "https://onboarding.example.com/api/function",
			Body:       "rate limit exceeded",
		}
		assert.Contains(t, err.Error(), "429")
		assert.Contains(t, err.Error(), "/api/function")
		assert.Contains(t, err.Error(), "rate limit exceeded")
	})

	t.Run("without body", func(t *testing.T) {
		err := pkgerrors.NewAPIError(502, "https://onboarding.example.com/api/industry", "")
		assert.Contains(t, err.Error(), "502")
		assert.NotContains(t, err.Error(), ": \n")
	})

	t.Run("with wrapped error", func(t *testing.T) {
		baseErr := errors.New("connection reset")
		err := &pkgerrors.APIError{
			URL:  "https://onboarding.example.com/api/contextTypes",
			Body: "request failed",
			Err:  baseErr,
		}
		assert.Equal(t, baseErr, err.Unwrap())
	})

	t.Run("status sentinel mapping", func(t *testing.T) {
		assert.True(t, errors.Is(pkgerrors.NewAPIError(401, "u", ""), pkgerrors.ErrUnauthorized))
		assert.True(t, errors.Is(pkgerrors.NewAPIError(403, "u", ""), pkgerrors.ErrUnauthorized))
		assert.True(t, errors.Is(pkgerrors.NewAPIError(404, "u", ""), pkgerrors.ErrNotFound))
		assert.True(t, errors.Is(pkgerrors.NewAPIError(429, "u", ""), pkgerrors.ErrRateLimited))
		assert.True(t, errors.Is(pkgerrors.NewAPIError(503, "u", ""), pkgerrors.ErrServiceUnavailable))
		assert.False(t, errors.Is(pkgerrors.NewAPIError(400, "u", ""), pkgerrors.ErrUnauthorized))
	})

	t.Run("IsAPIError helper", func(t *testing.T) {
		base := pkgerrors.NewAPIError(404, "u", "missing")
		apiErr, ok := pkgerrors.IsAPIError(base)
		require.True(t, ok)
		assert.Equal(t, 404, apiErr.StatusCode)

		_, ok = pkgerrors.IsAPIError(errors.New("plain"))
		assert.False(t, ok)
	})
}

func TestAuthenticationError(t *testing.T) {
	t.Run("partner stage", func(t *testing.T) {
		err := &pkgerrors.AuthenticationError{
			Stage:   "partner",
			Message: "response contained no token",
		}
		assert.Contains(t, err.Error(), "partner")
		assert.Contains(t, err.Error(), "no token")
	})

	t.Run("precondition wraps sentinel", func(t *testing.T) {
		err := pkgerrors.NewAuthenticationError("customer", "authenticate first", pkgerrors.ErrTokenRequired)
		assert.True(t, errors.Is(err, pkgerrors.ErrTokenRequired))
		assert.True(t, pkgerrors.IsAuthentication(err))
	})

	t.Run("without stage", func(t *testing.T) {
		err := &pkgerrors.AuthenticationError{Message: "bad exchange"}
		assert.Equal(t, "authentication error: bad exchange", err.Error())
	})
}

func TestConfigError(t *testing.T) {
	t.Run("basic error", func(t *testing.T) {
		err := &pkgerrors.ConfigError{
			Component: "onboarding",
			Message:   "base URL cannot be empty",
		}
		assert.Contains(t, err.Error(), "onboarding")
		assert.Contains(t, err.Error(), "base URL")
	})

	t.Run("constructor", func(t *testing.T) {
		err := pkgerrors.NewConfigError("metricstore", "dsn cannot be empty", nil)
		assert.Contains(t, err.Error(), "metricstore")
		assert.Contains(t, err.Error(), "cannot be empty")
	})
}

func TestIOError(t *testing.T) {
	t.Run("basic error", func(t *testing.T) {
		err := &pkgerrors.IOError{
			Operation: "write",
			Path:      "/tmp/model.json",
			Message:   "permission denied",
			Err:       errors.New("permission denied"),
		}
		assert.Contains(t, err.Error(), "write")
		assert.Contains(t, err.Error(), "/tmp/model.json")
		assert.Contains(t, err.Error(), "permission denied")
	})

	t.Run("unwrap", func(t *testing.T) {
		baseErr := errors.New("disk full")
		err := pkgerrors.NewIOError("write", "/data/model.json", baseErr)
		assert.Equal(t, baseErr, err.Unwrap())
	})

	t.Run("wrap helper", func(t *testing.T) {
		baseErr := errors.New("network error")
		err := pkgerrors.WrapIO("read", "response body", baseErr)
		ioErr, ok := err.(*pkgerrors.IOError)
		require.True(t, ok)
		assert.Equal(t, "read", ioErr.Operation)
		assert.Equal(t, "response body", ioErr.Path)
	})
}

func TestParseError(t *testing.T) {
	t.Run("with source", func(t *testing.T) {
		err := &pkgerrors.ParseError{
			Format:  "json",
			Source:  "kpi data field",
			Message: "unexpected token",
		}
		assert.Contains(t, err.Error(), "json")
		assert.Contains(t, err.Error(), "kpi data field")
		assert.Contains(t, err.Error(), "unexpected token")
	})

	t.Run("format only", func(t *testing.T) {
		err := &pkgerrors.ParseError{
			Format:  "yaml",
			Message: "syntax error",
		}
		assert.Contains(t, err.Error(), "yaml parse error")
		assert.Contains(t, err.Error(), "syntax error")
	})

	t.Run("constructor and wrap", func(t *testing.T) {
		baseErr := errors.New("EOF")
		err := pkgerrors.NewParseError("json", "envelope", "unexpected end", baseErr)
		assert.Contains(t, err.Error(), "envelope")
		assert.Equal(t, baseErr, err.Unwrap())

		wrapped := pkgerrors.WrapParse("json", "response body", baseErr)
		parseErr, ok := wrapped.(*pkgerrors.ParseError)
		require.True(t, ok)
		assert.Equal(t, "json", parseErr.Format)
		assert.Equal(t, "response body", parseErr.Source)
	})
}

func TestStoreError(t *testing.T) {
	t.Run("basic error", func(t *testing.T) {
		err := pkgerrors.NewStoreError("query", errors.New("connection refused"))
		assert.Contains(t, err.Error(), "query")
		assert.Contains(t, err.Error(), "connection refused")
	})

	t.Run("wrap helper", func(t *testing.T) {
		baseErr := errors.New("pool closed")
		err := pkgerrors.WrapStore("connect", baseErr)
		storeErr, ok := err.(*pkgerrors.StoreError)
		require.True(t, ok)
		assert.Equal(t, "connect", storeErr.Operation)
		assert.Equal(t, baseErr, storeErr.Unwrap())

		assert.Nil(t, pkgerrors.WrapStore("query", nil))
	})
}

func TestHelperFunctions(t *testing.T) {
	t.Run("IsNotFound", func(t *testing.T) {
		err1 := pkgerrors.NewNotFoundError("kpi", "7")
		err2 := errors.New("not found")
		err3 := pkgerrors.ErrNotFound

		assert.True(t, pkgerrors.IsNotFound(err1))
		assert.False(t, pkgerrors.IsNotFound(err2))
		assert.True(t, pkgerrors.IsNotFound(err3))
	})

	t.Run("IsUnauthorized", func(t *testing.T) {
		assert.True(t, pkgerrors.IsUnauthorized(pkgerrors.NewAPIError(401, "u", "")))
		assert.False(t, pkgerrors.IsUnauthorized(pkgerrors.NewAPIError(500, "u", "")))
	})

	t.Run("IsRateLimited", func(t *testing.T) {
		assert.True(t, pkgerrors.IsRateLimited(pkgerrors.ErrRateLimited))
	})

	t.Run("IsTimeout", func(t *testing.T) {
		assert.True(t, pkgerrors.IsTimeout(pkgerrors.ErrTimeout))
	})

	t.Run("IsCanceled", func(t *testing.T) {
		assert.True(t, pkgerrors.IsCanceled(pkgerrors.ErrCanceled))
	})
}

func TestWrapHelpers(t *testing.T) {
	t.Run("WrapValidation", func(t *testing.T) {
		err := pkgerrors.WrapValidation("Goal", errors.New("not numeric"))
		assert.NotNil(t, err)
		assert.Contains(t, err.Error(), "Goal")
		assert.Contains(t, err.Error(), "not numeric")

		assert.Nil(t, pkgerrors.WrapValidation("field", nil))
	})

	t.Run("WrapAPI", func(t *testing.T) {
		err := pkgerrors.WrapAPI(429, "https://onboarding.example.com/api/industry", errors.New("rate limit"))
		assert.NotNil(t, err)
		assert.Contains(t, err.Error(), "429")

		assert.Nil(t, pkgerrors.WrapAPI(200, "url", nil))
	})

	t.Run("WrapIO", func(t *testing.T) {
		assert.Nil(t, pkgerrors.WrapIO("read", "file", nil))
	})

	t.Run("WrapParse", func(t *testing.T) {
		assert.Nil(t, pkgerrors.WrapParse("json", "body", nil))
	})
}

func TestErrorChaining(t *testing.T) {
	t.Run("multiple wrapping", func(t *testing.T) {
		baseErr := errors.New("connection refused")
		ioErr := pkgerrors.WrapIO("connect", "onboarding.example.com", baseErr)
		apiErr := &pkgerrors.APIError{
			URL:  "https://onboarding.example.com/api/function",
			Body: "failed to connect",
			Err:  ioErr,
		}

		assert.Equal(t, ioErr, apiErr.Unwrap())

		var targetIOErr *pkgerrors.IOError
		assert.True(t, errors.As(apiErr, &targetIOErr))
		assert.Equal(t, "connect", targetIOErr.Operation)
	})
}

func TestSentinelErrors(t *testing.T) {
	sentinels := []struct {
		name string
		err  error
	}{
		{"ErrNotFound", pkgerrors.ErrNotFound},
		{"ErrInvalidInput", pkgerrors.ErrInvalidInput},
		{"ErrCredentialsRequired", pkgerrors.ErrCredentialsRequired},
		{"ErrTokenRequired", pkgerrors.ErrTokenRequired},
		{"ErrUnauthorized", pkgerrors.ErrUnauthorized},
		{"ErrRateLimited", pkgerrors.ErrRateLimited},
		{"ErrServiceUnavailable", pkgerrors.ErrServiceUnavailable},
		{"ErrTimeout", pkgerrors.ErrTimeout},
		{"ErrCanceled", pkgerrors.ErrCanceled},
		{"ErrStoreNotConfigured", pkgerrors.ErrStoreNotConfigured},
	}

	for _, tc := range sentinels {
		t.Run(tc.name, func(t *testing.T) {
			assert.NotNil(t, tc.err)
			assert.NotEmpty(t, tc.err.Error())
		})
	}
}
