package deepl

import "github.com/deepl-clients/deepl-go/internal/types"

// Error kinds re-exported so callers compare against a single symbol.
// See the ErrorKind docs in public_types.go for the taxonomy.
const (
	KindAuthorization   = types.KindAuthorization
	KindServer          = types.KindServer
	KindDeserialization = types.KindDeserialization
	KindTransport       = types.KindTransport
)

// IsAuthorizationError reports whether err means the server rejected the
// API key (HTTP 401/403).
func IsAuthorizationError(err error) bool { return kindIs(err, types.KindAuthorization) }

// IsServerError reports whether err carries a non-success status other
// than an authorization failure.
func IsServerError(err error) bool { return kindIs(err, types.KindServer) }

// IsDeserializationError reports whether err means a success response
// body did not match the expected shape.
func IsDeserializationError(err error) bool { return kindIs(err, types.KindDeserialization) }

// IsTransportError reports whether err means the request never completed
// at the network layer.
func IsTransportError(err error) bool { return kindIs(err, types.KindTransport) }

func kindIs(err error, kind types.ErrorKind) bool {
	k, ok := types.KindOf(err)
	return ok && k == kind
}
