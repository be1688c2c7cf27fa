// Package deepl is a lightweight client for the DeepL Pro REST API.
//
// A Client is created from an account API key and a tier flag and then
// exposes the v2 endpoints for translating text, listing supported
// languages and fetching account usage:
//
//	c, err := deepl.New(os.Getenv("DEEPL_API_KEY"), false)
//	if err != nil {
//		log.Fatal(err)
//	}
//	translated, err := c.Translate(ctx, deepl.TranslationRequest{
//		SourceLang: "DE",
//		TargetLang: "EN-US",
//		Texts:      []string{"ja"},
//	}, nil)
//
// Every operation performs exactly one HTTPS POST and returns either a
// typed result or a classified *Error; see errors.go for the taxonomy.
// Retries are deliberately left to the caller.
package deepl

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/deepl-clients/deepl-go/internal/api"
)

// Base URLs for the two account tiers. The tier flag is consumed once,
// in New, to pick between them.
const (
	paidBaseURL = "https://api.deepl.com/v2"
	freeBaseURL = "https://api-free.deepl.com/v2"
)

// --------------------------------------------------------------------
// Client core
// --------------------------------------------------------------------

// Client represents one DeepL developer account with an associated API
// key. It holds no mutable state after New, so a single Client is safe
// for concurrent use from multiple goroutines.
type Client struct {
	baseURL string
	http    *http.Client
	authKey string // account API key, sent as auth_key on every request
}

// New constructs a Client with the specified API key. freeTier selects
// the free-plan host variant. Additional options can be provided via
// functional arguments.
//
// No network activity happens here; key validity is only checked by the
// server on the first call.
func New(authKey string, freeTier bool, opts ...Option) (*Client, error) {
	if authKey == "" {
		return nil, fmt.Errorf("deepl: authKey cannot be empty")
	}

	c := &Client{
		authKey: authKey,
		baseURL: paidBaseURL,
		http:    &http.Client{Timeout: 30 * time.Second},
	}
	if freeTier {
		c.baseURL = freeBaseURL
	}

	// Auto-enable debug via env variable without changing code.
	if debugLoggingRequested() {
		opts = append(opts, WithDebugLogging(true))
	}

	for _, opt := range opts {
		if err := opt(c); err != nil {
			return nil, err
		}
	}

	// Wrap the HTTP transport so every request is counted, whatever
	// transport the options installed underneath.
	c.wrapTransportWithMetrics()

	return c, nil
}

// wrapTransportWithMetrics wraps the HTTP client's transport to record
// request and failure counters for all requests.
func (c *Client) wrapTransportWithMetrics() {
	baseTransport := c.http.Transport
	if baseTransport == nil {
		baseTransport = http.DefaultTransport
	}
	c.http.Transport = &metricsTransport{base: baseTransport}
}

// --------------------------------------------------------------------
// Usage operation - delegated to internal/api
// --------------------------------------------------------------------

// Usage retrieves information about API usage and limits. This can also
// be used to verify an API key without consuming translation contingent.
func (c *Client) Usage(ctx context.Context) (*Usage, error) {
	return api.Usage(ctx, c.http, c.baseURL, c.authKey)
}

// --------------------------------------------------------------------
// Language operations - delegated to internal/api
// --------------------------------------------------------------------

// SourceLanguages retrieves all currently available source languages,
// in the order the server returns them.
func (c *Client) SourceLanguages(ctx context.Context) ([]Language, error) {
	return api.Languages(ctx, c.http, c.baseURL, c.authKey, api.LanguageTypeSource)
}

// TargetLanguages retrieves all currently available target languages,
// in the order the server returns them.
func (c *Client) TargetLanguages(ctx context.Context) ([]Language, error) {
	return api.Languages(ctx, c.http, c.baseURL, c.authKey, api.LanguageTypeTarget)
}

// --------------------------------------------------------------------
// Translate operation - delegated to internal/api
// --------------------------------------------------------------------

// Translate sends the texts in req for translation and returns one
// Translation per input text, in input order. opts may be nil; every
// option left unset falls back to the server default.
func (c *Client) Translate(ctx context.Context, req TranslationRequest, opts *TranslationOptions) ([]Translation, error) {
	return api.Translate(ctx, c.http, c.baseURL, c.authKey, req, opts)
}
