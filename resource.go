package mintsoft

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"

	"github.com/go-resty/resty/v2"
)

// resourceBase carries the request and response-dispatch logic shared by
// all resources. It issues exactly one request per call and never retries.
type resourceBase struct {
	gw *gateway
}

func (r *resourceBase) get(ctx context.Context, path string, query map[string]string) (*resty.Response, error) {
	req := r.gw.connection().R().SetContext(ctx)
	if len(query) > 0 {
		req.SetQueryParams(query)
	}

	resp, err := req.Get(path)
	if err != nil {
		r.gw.options.requestLogger.Errorf("mintsoft: GET %s failed: %v", path, err)
		return nil, &APIError{Message: fmt.Sprintf("GET %s failed: %v", path, err)}
	}

	return resp, nil
}

func (r *resourceBase) post(ctx context.Context, path string, body any) (*resty.Response, error) {
	req := r.gw.connection().R().SetContext(ctx)
	if body != nil {
		req.SetBody(body)
	}

	resp, err := req.Post(path)
	if err != nil {
		r.gw.options.requestLogger.Errorf("mintsoft: POST %s failed: %v", path, err)
		return nil, &APIError{Message: fmt.Sprintf("POST %s failed: %v", path, err)}
	}

	return resp, nil
}

// handleResponse returns the decoded body of a 2xx response (nil for an
// empty body) and a classified taxonomy error for anything else.
func (r *resourceBase) handleResponse(resp *resty.Response) (any, error) {
	if !resp.IsSuccess() {
		return nil, classifyResponse(resp)
	}

	body := bytes.TrimSpace(resp.Body())
	if len(body) == 0 {
		return nil, nil
	}

	var decoded any
	if err := json.Unmarshal(body, &decoded); err != nil {
		return nil, &APIError{
			Message:    fmt.Sprintf("invalid JSON in response: %v", err),
			StatusCode: resp.StatusCode(),
			Response:   resp,
		}
	}

	return decoded, nil
}
