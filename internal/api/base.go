package api

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/deepl-clients/deepl-go/internal/types"
)

// HTTPClient is the seam the API functions depend on so tests can inject
// failing or recording transports. *http.Client satisfies it.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// postForm issues one form-encoded POST to baseURL+endpoint with auth_key
// appended to the operation parameters and classifies the outcome. Every
// operation routes through here so URL construction and error handling are
// identical across endpoints.
func postForm(ctx context.Context, httpClient HTTPClient, baseURL, authKey, endpoint string, params url.Values) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if params == nil {
		params = url.Values{}
	}
	params.Set("auth_key", authKey)

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, baseURL+endpoint, strings.NewReader(params.Encode()))
	if err != nil {
		return nil, err
	}
	httpReq.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := httpClient.Do(httpReq)
	if err != nil {
		return nil, &types.Error{Kind: types.KindTransport, Underlying: err}
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &types.Error{Kind: types.KindTransport, StatusCode: resp.StatusCode, Underlying: err}
	}

	switch {
	case resp.StatusCode >= 200 && resp.StatusCode < 300:
		return body, nil
	case resp.StatusCode == http.StatusUnauthorized, resp.StatusCode == http.StatusForbidden:
		return nil, &types.Error{Kind: types.KindAuthorization, StatusCode: resp.StatusCode}
	default:
		// The server sends error details in the response body. Prefer
		// them over the bare status line when they decode.
		var envelope struct {
			Message string `json:"message"`
		}
		msg := statusDescription(resp)
		if jsonErr := json.Unmarshal(body, &envelope); jsonErr == nil && envelope.Message != "" {
			msg = envelope.Message
		}
		return nil, &types.Error{Kind: types.KindServer, Message: msg, StatusCode: resp.StatusCode}
	}
}

// statusDescription returns the status line of resp, reconstructing it
// from the code when the transport did not carry one.
func statusDescription(resp *http.Response) string {
	if resp.Status != "" {
		return resp.Status
	}
	return fmt.Sprintf("%d %s", resp.StatusCode, http.StatusText(resp.StatusCode))
}
