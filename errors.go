package mintsoft

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/go-resty/resty/v2"
)

// APIError is the catch-all error for failed API calls. The more specific
// kinds below embed it, so every error returned by this library exposes the
// HTTP status code and the raw response (both zero-valued for failures
// raised before a request is issued, such as caller-input validation or
// transport errors).
type APIError struct {
	Message    string
	StatusCode int
	Response   *resty.Response
}

func (e *APIError) Error() string {
	return e.Message
}

// AuthenticationError indicates the server rejected the request's
// credentials or token (HTTP 401 or 403).
type AuthenticationError struct {
	APIError
}

// Unwrap exposes the embedded [APIError] so errors.As can match any kind
// against the base.
func (e *AuthenticationError) Unwrap() error { return &e.APIError }

// ValidationError indicates invalid caller input (raised before any network
// call) or an HTTP 400 from the server.
type ValidationError struct {
	APIError
}

func (e *ValidationError) Unwrap() error { return &e.APIError }

// NotFoundError indicates an HTTP 404. Operations with a collection or
// single-resource contract translate 404 into an empty result instead;
// see the per-operation documentation.
type NotFoundError struct {
	APIError
}

func (e *NotFoundError) Unwrap() error { return &e.APIError }

func newValidationError(message string) *ValidationError {
	return &ValidationError{APIError{Message: message}}
}

// classifyResponse maps a non-2xx response to its error kind. The grouping
// is a fixed contract: 400 validation, 401/403 authentication, 404 not
// found, anything else APIError.
func classifyResponse(resp *resty.Response) error {
	base := APIError{
		Message:    fmt.Sprintf("request failed: %d - %s", resp.StatusCode(), extractErrorMessage(resp.Body())),
		StatusCode: resp.StatusCode(),
		Response:   resp,
	}

	switch resp.StatusCode() {
	case http.StatusBadRequest:
		return &ValidationError{base}
	case http.StatusUnauthorized, http.StatusForbidden:
		return &AuthenticationError{base}
	case http.StatusNotFound:
		return &NotFoundError{base}
	default:
		return &base
	}
}

// extractErrorMessage pulls a human-readable message out of an error body.
// A JSON string body is used verbatim; an object body's "error" or
// "message" field is preferred; anything else falls back to the raw body.
func extractErrorMessage(body []byte) string {
	if len(body) == 0 {
		return "(empty error body)"
	}

	var decoded any
	if err := json.Unmarshal(body, &decoded); err != nil {
		return string(body)
	}

	switch v := decoded.(type) {
	case string:
		return v
	case map[string]any:
		if msg, ok := v["error"].(string); ok && msg != "" {
			return msg
		}
		if msg, ok := v["message"].(string); ok && msg != "" {
			return msg
		}
	}

	return string(body)
}
