package mintsoft

import (
	"context"
	"sync"
)

// Client is the entry point for token-authenticated API calls. Resources
// are constructed lazily and memoized; they all share one gateway, so one
// client means one configured connection.
type Client struct {
	gw *gateway

	ordersOnce  sync.Once
	orders      *OrdersResource
	returnsOnce sync.Once
	returns     *ReturnsResource
}

// New creates a client bound to baseURL. Supply the API token with
// [WithAuthToken]; without one, requests are sent unauthenticated and the
// server will reject them with a 401.
func New(baseURL string, opts ...Option) *Client {
	options := newClientOptions()
	for _, o := range opts {
		o(options)
	}

	return &Client{gw: newGateway(baseURL, options)}
}

// Orders returns the order endpoints. Repeated calls return the same
// instance.
func (c *Client) Orders() *OrdersResource {
	c.ordersOnce.Do(func() {
		c.orders = &OrdersResource{base: &resourceBase{gw: c.gw}}
	})

	return c.orders
}

// Returns returns the return endpoints. Repeated calls return the same
// instance.
func (c *Client) Returns() *ReturnsResource {
	c.returnsOnce.Do(func() {
		c.returns = &ReturnsResource{base: &resourceBase{gw: c.gw}}
	})

	return c.returns
}

// AuthClient performs the credential exchange. Unlike [Client] it never
// sends an Authorization header, even when [WithAuthToken] is supplied.
type AuthClient struct {
	gw *gateway

	authOnce sync.Once
	auth     *AuthResource
}

// NewAuthClient creates a client for the authentication endpoint.
func NewAuthClient(baseURL string, opts ...Option) *AuthClient {
	options := newClientOptions()
	for _, o := range opts {
		o(options)
	}

	// The auth endpoint is the one place a bearer header must not appear.
	options.authToken = ""

	return &AuthClient{gw: newGateway(baseURL, options)}
}

// Auth returns the auth resource. Repeated calls return the same instance.
func (c *AuthClient) Auth() *AuthResource {
	c.authOnce.Do(func() {
		c.auth = &AuthResource{base: &resourceBase{gw: c.gw}}
	})

	return c.auth
}

// Authenticate exchanges a username and password for an API token. See
// [AuthResource.Authenticate].
func (c *AuthClient) Authenticate(ctx context.Context, username, password string) (string, error) {
	return c.Auth().Authenticate(ctx, username, password)
}
