package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/deepl-clients/deepl-go/internal/types"
)

// errRT is an http.RoundTripper that always returns an error (simulates network failure).
type errRT struct{}

func (e *errRT) RoundTrip(*http.Request) (*http.Response, error) { return nil, fmt.Errorf("boom") }

// kindOf extracts the client error kind, or -1 when err is not a *types.Error.
func kindOf(err error) types.ErrorKind {
	var apiErr *types.Error
	if errors.As(err, &apiErr) {
		return apiErr.Kind
	}
	return types.ErrorKind(-1)
}
