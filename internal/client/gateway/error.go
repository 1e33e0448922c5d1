// Package gateway performs the network round trips of the client core: one
// call, one request, a tagged outcome. Nothing here retries and nothing
// panics past the package boundary.
package gateway

import "errors"

// Kind classifies a failed gateway call.
type Kind int

const (
	// KindValidation: rejected before or at the server boundary because
	// required input was missing or malformed (400-class).
	KindValidation Kind = iota + 1
	// KindAuth: credentials were wrong (401-class).
	KindAuth
	// KindNotFound: the referenced id does not exist server-side (404).
	KindNotFound
	// KindPersistence: an opaque server-side failure (500-class).
	KindPersistence
	// KindTransport: no usable response was received at all.
	KindTransport
)

func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindAuth:
		return "auth"
	case KindNotFound:
		return "not_found"
	case KindPersistence:
		return "persistence"
	case KindTransport:
		return "transport"
	default:
		return "unknown"
	}
}

// TransportMessage is the generic user-facing text for transport failures;
// the underlying error is deliberately not surfaced.
const TransportMessage = "Unable to reach server, check your connection"

// MsgEmailPasswordRequired is raised locally before a blank auth submission
// can reach the network.
const MsgEmailPasswordRequired = "Email and password required"

// Error is the tagged failure outcome of a gateway call. Message is the
// display string stores commit verbatim into their error field.
type Error struct {
	Kind    Kind
	Message string
}

func (e *Error) Error() string { return e.Message }

// NewError builds a tagged gateway error.
func NewError(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

// KindOf extracts the classification from err, or 0 if err is not a
// gateway error.
func KindOf(err error) Kind {
	var ge *Error
	if errors.As(err, &ge) {
		return ge.Kind
	}
	return 0
}

// classify maps an HTTP status and server-provided message to an outcome.
// The fallback covers servers that failed before producing an envelope.
func classify(status int, message string, fallback string) *Error {
	if message == "" {
		message = fallback
	}
	switch {
	case status == 400:
		return NewError(KindValidation, message)
	case status == 401:
		return NewError(KindAuth, message)
	case status == 404:
		return NewError(KindNotFound, message)
	default:
		return NewError(KindPersistence, message)
	}
}
