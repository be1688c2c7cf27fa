package types

import (
	"errors"
	"fmt"
)

// ErrorKind is the closed set of failure classes the client reports.
// Callers match on kind instead of parsing error strings.
type ErrorKind int

const (
	// KindAuthorization means the server rejected the API key (HTTP 401/403).
	KindAuthorization ErrorKind = iota

	// KindServer means the server reported any other non-success status.
	// The error carries the vendor-supplied message when one was decodable,
	// otherwise the raw HTTP status description.
	KindServer

	// KindDeserialization means a success response body did not match the
	// expected shape for the operation.
	KindDeserialization

	// KindTransport means the request never completed at the network layer
	// (DNS, connect, timeout, TLS). The underlying error is wrapped.
	KindTransport
)

// String returns a human-readable representation of the error kind.
func (k ErrorKind) String() string {
	switch k {
	case KindAuthorization:
		return "authorization"
	case KindServer:
		return "server"
	case KindDeserialization:
		return "deserialization"
	case KindTransport:
		return "transport"
	default:
		return fmt.Sprintf("unknown(%d)", int(k))
	}
}

// Error is the single error type returned by every API operation.
type Error struct {
	Kind ErrorKind

	// Message is set for KindServer and holds the vendor message or the
	// HTTP status description.
	Message string

	// StatusCode is the HTTP status that produced the error, 0 when the
	// failure happened below HTTP.
	StatusCode int

	// Underlying is the wrapped cause, set for KindTransport and
	// KindDeserialization.
	Underlying error
}

// Error implements the error interface.
func (e *Error) Error() string {
	switch e.Kind {
	case KindAuthorization:
		return "deepl: authorization failed, is your API key correct?"
	case KindServer:
		return fmt.Sprintf("deepl: server error: %s", e.Message)
	case KindDeserialization:
		return fmt.Sprintf("deepl: deserializing response: %v", e.Underlying)
	case KindTransport:
		return fmt.Sprintf("deepl: transport: %v", e.Underlying)
	default:
		return fmt.Sprintf("deepl: %v", e.Underlying)
	}
}

// Unwrap returns the underlying error for error chain compatibility.
func (e *Error) Unwrap() error { return e.Underlying }

// KindOf extracts the error kind from err. ok is false when err does
// not originate from this client.
func KindOf(err error) (ErrorKind, bool) {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr.Kind, true
	}
	return 0, false
}
