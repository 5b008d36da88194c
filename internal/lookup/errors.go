package lookup

import (
	"errors"
	"fmt"
)

// Kind classifies why a lookup failed. Every kind maps to HTTP 400; callers tell
// them apart by message only.
type Kind string

const (
	KindInvalidInput        Kind = "invalid_input"
	KindUpstreamUnavailable Kind = "upstream_unavailable"
	KindNoPrimaryData       Kind = "no_primary_data"
	KindNoEnrichedData      Kind = "no_enriched_data"
)

// Client-facing messages. Existing clients match on these strings.
const (
	MessageMissingNumber       = "Missing 'num' parameter"
	MessageInvalidNumber       = "Invalid mobile number. Must be 10 digits."
	MessageUpstreamUnavailable = "Service temporarily unavailable"
	MessageNoPrimaryData       = "No data found"
	MessageNoEnrichedData      = "No family data available"
)

// Error is a classified lookup failure. Err keeps the underlying cause for logs.
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Err
}

func newError(kind Kind, message string, cause error) *Error {
	return &Error{Kind: kind, Message: message, Err: cause}
}

// KindOf extracts the kind of err. Unclassified errors count as upstream unavailable.
func KindOf(err error) Kind {
	var le *Error
	if errors.As(err, &le) {
		return le.Kind
	}
	return KindUpstreamUnavailable
}

// MessageFor returns the client-facing message for err. Unclassified errors
// never leak their text and fall back to the generic unavailability message.
func MessageFor(err error) string {
	var le *Error
	if errors.As(err, &le) && le.Message != "" {
		return le.Message
	}
	return MessageUpstreamUnavailable
}
