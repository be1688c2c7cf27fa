package deepl

import (
	"net/http"
	"net/http/httputil"
	"os"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// debugTransport dumps each request and response for troubleshooting
// API communication problems. Both sides of an exchange share a
// request_id so they can be correlated in the logs.
//
// Enable it with DEEPL_DEBUG=true (or the general DEBUG=true), or with
// the WithDebugLogging option. The dumps include the auth_key parameter
// and full bodies, so keep this out of production environments.
type debugTransport struct{ base http.RoundTripper }

func (dt *debugTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	base := dt.base
	if base == nil {
		base = http.DefaultTransport
	}

	reqID := uuid.NewString()
	if reqDump, err := httputil.DumpRequestOut(req, true); err == nil {
		log.Debug().Str("request_id", reqID).Str("method", req.Method).Str("url", req.URL.String()).Str("request_dump", string(reqDump)).Msg("HTTP request")
	}

	resp, err := base.RoundTrip(req)
	if err != nil {
		log.Error().Err(err).Str("request_id", reqID).Str("method", req.Method).Str("url", req.URL.String()).Msg("HTTP request failed")
		return nil, err
	}

	if respDump, err := httputil.DumpResponse(resp, true); err == nil {
		log.Debug().Str("request_id", reqID).Str("method", req.Method).Str("url", req.URL.String()).Int("status_code", resp.StatusCode).Str("response_dump", string(respDump)).Msg("HTTP response")
	}
	return resp, nil
}

// debugLoggingRequested checks if HTTP debug logging should be enabled.
//
// Both environment variables are supported: DEEPL_DEBUG for targeted
// client debugging, DEBUG for broader application debugging that
// includes HTTP traffic. Values are compared case-sensitively against
// "true".
func debugLoggingRequested() bool {
	return os.Getenv("DEEPL_DEBUG") == "true" || os.Getenv("DEBUG") == "true"
}
