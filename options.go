package deepl

// This file defines functional options that configure the Client during
// construction. Keeping them in a standalone file avoids cluttering
// deepl.go and makes it easy to discover all available knobs at a glance.

import (
	"fmt"
	"net/http"
	"strings"
	"time"
)

// Option configures a Client during construction in New.
//
// Options are applied before the metrics transport wrapper is installed,
// so transport-related options (like debug logging) end up underneath
// the counters. Options must be deterministic and side-effect free.
type Option func(*Client) error

// WithHTTPTimeout sets the underlying http.Client Timeout used by the
// client.
//
// Prefer per-request context deadlines where possible; this timeout is a
// coarse safety net that bounds the total time spent on a single HTTP
// request (including connection, TLS handshake and reading the
// response). The value must be greater than zero.
func WithHTTPTimeout(d time.Duration) Option {
	return func(c *Client) error {
		if d <= 0 {
			return fmt.Errorf("http timeout must be > 0")
		}
		c.http.Timeout = d
		return nil
	}
}

// WithHTTPClient replaces the http.Client used for all requests. Useful
// for custom transports, proxies, or recording clients in tests.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) error {
		if hc == nil {
			return fmt.Errorf("http client must not be nil")
		}
		c.http = hc
		return nil
	}
}

// WithBaseURL overrides the tier-derived base URL. Intended for tests
// and for self-hosted API-compatible proxies; the value replaces the
// scheme, host and /v2 prefix in one piece.
func WithBaseURL(baseURL string) Option {
	return func(c *Client) error {
		if baseURL == "" {
			return fmt.Errorf("base URL must not be empty")
		}
		c.baseURL = strings.TrimRight(baseURL, "/")
		return nil
	}
}

// WithDebugLogging wraps the client's transport so each request/response
// is logged when enabled is true.
//
// Do not enable this option in production environments: the dumps
// include the auth_key parameter and full payloads.
func WithDebugLogging(enabled bool) Option {
	return func(c *Client) error {
		if enabled {
			c.http.Transport = &debugTransport{base: c.http.Transport}
		}
		return nil
	}
}
