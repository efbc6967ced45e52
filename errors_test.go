package mintsoft

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractErrorMessage(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		body     string
		expected string
	}{
		{"empty body", "", "(empty error body)"},
		{"json string body used verbatim", `"order not found"`, "order not found"},
		{"error field preferred", `{"error": "validation failed", "message": "ignored"}`, "validation failed"},
		{"message field fallback", `{"message": "something went wrong"}`, "something went wrong"},
		{"object without known fields falls back to raw", `{"detail": "nope"}`, `{"detail": "nope"}`},
		{"plain text falls back to raw", "Bad Request", "Bad Request"},
		{"json array falls back to raw", `[1, 2]`, `[1, 2]`},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.expected, extractErrorMessage([]byte(tt.body)))
		})
	}
}

func TestNewValidationError(t *testing.T) {
	t.Parallel()

	err := newValidationError("Order number required")

	assert.Equal(t, "Order number required", err.Error())
	assert.Zero(t, err.StatusCode, "caller-input validation never reaches the network")
	assert.Nil(t, err.Response)

	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
}

func TestErrorKindsAreDistinct(t *testing.T) {
	t.Parallel()

	var target *AuthenticationError
	assert.False(t, errors.As(newValidationError("nope"), &target),
		"a ValidationError must not match AuthenticationError")
}

func TestSubkindsUnwrapToAPIError(t *testing.T) {
	t.Parallel()

	var apiErr *APIError
	require.ErrorAs(t, newValidationError("nope"), &apiErr)
	assert.Equal(t, "nope", apiErr.Message)
}
