package mintsoft

import (
	"net/http"
	"strings"
	"time"
)

type Option func(*Options)

type Options struct {
	authToken      string
	requestHeaders map[string]string
	httpTimeout    time.Duration
	transport      http.RoundTripper
	requestLogger  RequestLogger
}

func newClientOptions() *Options {
	return &Options{
		requestLogger: &NoopLogger{},
		requestHeaders: map[string]string{
			"Content-Type": "application/json",
			"Accept":       "application/json",
		},
	}
}

// WithAuthToken sets the API token sent as an "Authorization: Bearer"
// header on every request. Obtain a token with [AuthClient.Authenticate].
func WithAuthToken(token string) Option {
	return func(o *Options) {
		o.authToken = token
	}
}

// WithRequestHeader adds a header to every request. Content-Type and
// Accept are fixed to application/json and cannot be overridden.
func WithRequestHeader(header, value string) Option {
	return func(o *Options) {
		header = strings.TrimSpace(header)

		if header == "" || strings.EqualFold(header, "Content-Type") || strings.EqualFold(header, "Accept") {
			return
		}

		o.requestHeaders[header] = value
	}
}

// WithHTTPTimeout sets an overall per-request timeout. Zero (the default)
// leaves timeouts to the underlying transport.
func WithHTTPTimeout(timeout time.Duration) Option {
	return func(o *Options) {
		if timeout > 0 {
			o.httpTimeout = timeout
		}
	}
}

// WithTransport replaces the underlying HTTP transport, e.g. to configure
// proxies or TLS settings.
func WithTransport(transport http.RoundTripper) Option {
	return func(o *Options) {
		if transport != nil {
			o.transport = transport
		}
	}
}

// WithRequestLogger sets the logger used for request, response, and error
// logging. The default [NoopLogger] discards all output.
func WithRequestLogger(logger RequestLogger) Option {
	return func(o *Options) {
		if logger != nil {
			o.requestLogger = logger
		}
	}
}
