package mintsoft

import (
	"sync"

	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"
)

const headerRequestID = "X-Request-ID"

// gateway holds one base URL plus construction-time options and lazily
// builds the resty client bound to them. All resources of a [Client] share
// one gateway, so they share one connection.
type gateway struct {
	baseURL string
	options *Options

	once   sync.Once
	client *resty.Client
}

func newGateway(baseURL string, options *Options) *gateway {
	return &gateway{baseURL: baseURL, options: options}
}

// connection returns the configured resty client, building it on first
// use. The same gateway always returns the same instance.
func (g *gateway) connection() *resty.Client {
	g.once.Do(func() {
		c := resty.New().
			SetBaseURL(g.baseURL).
			SetHeaders(g.options.requestHeaders)

		if g.options.authToken != "" {
			c.SetAuthScheme("Bearer")
			c.SetAuthToken(g.options.authToken)
		}

		if g.options.httpTimeout > 0 {
			c.SetTimeout(g.options.httpTimeout)
		}

		if g.options.transport != nil {
			c.SetTransport(g.options.transport)
		}

		logger := g.options.requestLogger

		c.OnBeforeRequest(func(_ *resty.Client, req *resty.Request) error {
			if req.Header.Get(headerRequestID) == "" {
				req.SetHeader(headerRequestID, uuid.NewString())
			}

			logger.Debugf("mintsoft: %s %s request_id=%s",
				req.Method, req.URL, req.Header.Get(headerRequestID))

			return nil
		})

		c.OnAfterResponse(func(_ *resty.Client, resp *resty.Response) error {
			if resp.IsError() {
				logger.Warnf("mintsoft: %s %s returned %d",
					resp.Request.Method, resp.Request.URL, resp.StatusCode())
			}

			return nil
		})

		g.client = c
	})

	return g.client
}
