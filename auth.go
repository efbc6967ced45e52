package mintsoft

import (
	"context"
	"fmt"
	"net/http"
	"strings"
)

const authPath = "/api/auth"

// AuthResource performs the credential exchange. It never stores the
// credentials or the resulting token.
type AuthResource struct {
	base *resourceBase
}

// Authenticate exchanges a username and password for an opaque API token.
//
// Both arguments must be non-empty; violations fail with a
// [ValidationError] before any network call, username checked first. A 401
// fails with [AuthenticationError], a 400 with [ValidationError], and any
// other non-2xx with [APIError].
func (a *AuthResource) Authenticate(ctx context.Context, username, password string) (string, error) {
	if username == "" {
		return "", newValidationError("Username required")
	}

	if password == "" {
		return "", newValidationError("Password required")
	}

	resp, err := a.base.post(ctx, authPath, map[string]string{
		"username": username,
		"password": password,
	})
	if err != nil {
		return "", err
	}

	if resp.IsSuccess() {
		return trimTokenQuotes(resp.String()), nil
	}

	switch resp.StatusCode() {
	case http.StatusUnauthorized:
		return "", &AuthenticationError{APIError{
			Message:    "Invalid credentials",
			StatusCode: resp.StatusCode(),
			Response:   resp,
		}}
	case http.StatusBadRequest:
		return "", &ValidationError{APIError{
			Message:    "Invalid request: " + extractErrorMessage(resp.Body()),
			StatusCode: resp.StatusCode(),
			Response:   resp,
		}}
	default:
		return "", &APIError{
			Message:    fmt.Sprintf("Authentication failed: %d - %s", resp.StatusCode(), extractErrorMessage(resp.Body())),
			StatusCode: resp.StatusCode(),
			Response:   resp,
		}
	}
}

// trimTokenQuotes strips one layer of surrounding quote characters from a
// double-encoded string body. A bare token passes through unchanged.
func trimTokenQuotes(body string) string {
	token := strings.TrimSpace(body)
	if len(token) >= 2 && token[0] == '"' && token[len(token)-1] == '"' {
		token = token[1 : len(token)-1]
	}

	return token
}
