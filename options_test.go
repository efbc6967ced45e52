package mintsoft

import (
	"net/http"
	"testing"
	"time"
)

func TestNewClientOptions(t *testing.T) {
	t.Parallel()

	opts := newClientOptions()

	if opts.requestLogger == nil {
		t.Error("expected requestLogger to be set")
	}

	if opts.authToken != "" {
		t.Errorf("expected empty authToken, got %s", opts.authToken)
	}

	if opts.httpTimeout != 0 {
		t.Errorf("expected zero httpTimeout, got %v", opts.httpTimeout)
	}

	if opts.requestHeaders["Content-Type"] != "application/json" {
		t.Errorf("expected Content-Type=application/json, got %s", opts.requestHeaders["Content-Type"])
	}

	if opts.requestHeaders["Accept"] != "application/json" {
		t.Errorf("expected Accept=application/json, got %s", opts.requestHeaders["Accept"])
	}
}

func TestWithAuthToken(t *testing.T) {
	t.Parallel()

	opts := newClientOptions()
	WithAuthToken("my-token")(opts)

	if opts.authToken != "my-token" {
		t.Errorf("expected token=my-token, got %s", opts.authToken)
	}
}

func TestWithRequestHeader(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name          string
		header        string
		value         string
		expectIgnored bool
	}{
		{"valid header", "X-Custom", "value", false},
		{"empty header ignored", "", "value", true},
		{"whitespace header ignored", "   ", "value", true},
		{"Content-Type protected", "Content-Type", "text/plain", true},
		{"content-type protected (case insensitive)", "content-type", "text/plain", true},
		{"Accept protected", "Accept", "text/plain", true},
		{"accept protected (case insensitive)", "ACCEPT", "text/plain", true},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			opts := newClientOptions()
			originalContentType := opts.requestHeaders["Content-Type"]
			originalAccept := opts.requestHeaders["Accept"]
			originalLen := len(opts.requestHeaders)

			WithRequestHeader(tt.header, tt.value)(opts)

			if tt.expectIgnored {
				if opts.requestHeaders["Content-Type"] != originalContentType {
					t.Error("Content-Type should not be changed")
				}
				if opts.requestHeaders["Accept"] != originalAccept {
					t.Error("Accept should not be changed")
				}
				if tt.header == "" || tt.header == "   " {
					if len(opts.requestHeaders) != originalLen {
						t.Error("empty header should not add to headers")
					}
				}
			} else if opts.requestHeaders[tt.header] != tt.value {
				t.Errorf("expected header %s=%s, got %s", tt.header, tt.value, opts.requestHeaders[tt.header])
			}
		})
	}
}

func TestWithHTTPTimeout(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    time.Duration
		expected time.Duration
	}{
		{"valid", 5 * time.Second, 5 * time.Second},
		{"zero ignored", 0, 0},
		{"negative ignored", -time.Second, 0},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			opts := newClientOptions()
			WithHTTPTimeout(tt.input)(opts)

			if opts.httpTimeout != tt.expected {
				t.Errorf("expected httpTimeout=%v, got %v", tt.expected, opts.httpTimeout)
			}
		})
	}
}

func TestWithTransport(t *testing.T) {
	t.Parallel()

	t.Run("valid transport", func(t *testing.T) {
		t.Parallel()

		opts := newClientOptions()
		transport := &http.Transport{}
		WithTransport(transport)(opts)

		if opts.transport != transport {
			t.Error("expected transport to be set")
		}
	})

	t.Run("nil ignored", func(t *testing.T) {
		t.Parallel()

		opts := newClientOptions()
		WithTransport(nil)(opts)

		if opts.transport != nil {
			t.Error("nil transport should be ignored")
		}
	})
}

func TestWithRequestLogger(t *testing.T) {
	t.Parallel()

	t.Run("valid logger", func(t *testing.T) {
		t.Parallel()

		opts := newClientOptions()
		logger := &NoopLogger{}
		WithRequestLogger(logger)(opts)

		if opts.requestLogger != logger {
			t.Error("expected requestLogger to be set")
		}
	})

	t.Run("nil ignored", func(t *testing.T) {
		t.Parallel()

		opts := newClientOptions()
		originalLogger := opts.requestLogger
		WithRequestLogger(nil)(opts)

		if opts.requestLogger != originalLogger {
			t.Error("nil logger should be ignored")
		}
	})
}
