// Package mintsoft provides an HTTP client for the Mintsoft warehouse
// management API.
//
// The client wraps [github.com/go-resty/resty/v2] with bearer-token
// authentication, JSON encoding, and pluggable logging. It exposes the
// order-search and returns endpoints plus the credential exchange used to
// obtain an API token.
//
// # Basic Usage
//
//	auth := mintsoft.NewAuthClient("https://api.mintsoft.co.uk")
//	token, err := auth.Authenticate(ctx, "user", "pass")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	c := mintsoft.New("https://api.mintsoft.co.uk",
//	    mintsoft.WithAuthToken(token),
//	)
//
//	orders, err := c.Orders().Search(ctx, "ORD-123")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// # Configuration
//
// All configuration is supplied as [Option] functions passed to [New] or
// [NewAuthClient]. Invalid values are silently ignored and the default is
// retained. The client holds no process-wide state; independent instances
// are fully isolated.
//
// # Authentication
//
// [AuthClient.Authenticate] exchanges a username and password for an opaque
// API token. The token is never stored by this library: pass it to [New]
// via [WithAuthToken] and it is sent as an "Authorization: Bearer" header
// on every request issued through that client. The auth client itself never
// sends an Authorization header.
//
// # Responses
//
// Endpoint payloads are dynamic JSON. Each result is wrapped in a
// [ResponseObject] whose keys are normalized to lower_snake_case for
// uniform access, while [ResponseObject.Original] always returns the exact
// server payload with its original casing.
//
// # Errors
//
// Failures are one of four kinds: [ValidationError] (bad caller input,
// raised before any network call, or an HTTP 400), [AuthenticationError]
// (401/403), [NotFoundError] (404, where the operation contract surfaces
// it), and [APIError] (everything else). All kinds carry the HTTP status
// code and the raw response for inspection. No retries are performed at
// any layer.
//
// # Logging
//
// Implement [RequestLogger] and supply it via [WithRequestLogger] to
// integrate with your logging library. The default [NoopLogger] discards
// all log output. Ensure your implementation redacts credentials and tokens
// from request and response bodies before persisting logs.
package mintsoft
