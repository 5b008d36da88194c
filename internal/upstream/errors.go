package upstream

import (
	"errors"
	"fmt"

	"lookupagg/pkg/platform/sentinel"
)

// Category is the normalized failure taxonomy for outbound calls.
type Category string

const (
	// CategoryTimeout indicates the call exceeded its per-call budget
	CategoryTimeout Category = "timeout"

	// CategoryTransport indicates the service could not be reached or the body could not be read
	CategoryTransport Category = "transport"

	// CategoryBadStatus indicates a non-2xx answer
	CategoryBadStatus Category = "bad_status"

	// CategoryBadData indicates the body was not the JSON we expected
	CategoryBadData Category = "bad_data"

	// CategoryNoData indicates a well-formed answer without usable records
	CategoryNoData Category = "no_data"
)

// CallError wraps an outbound failure with its category and service name.
type CallError struct {
	Category   Category
	Service    string
	Message    string
	StatusCode int
	Underlying error
}

func (e *CallError) Error() string {
	if e.Underlying != nil {
		return fmt.Sprintf("upstream %s [%s]: %s: %v", e.Service, e.Category, e.Message, e.Underlying)
	}
	return fmt.Sprintf("upstream %s [%s]: %s", e.Service, e.Category, e.Message)
}

func (e *CallError) Unwrap() error {
	return e.Underlying
}

// Is lets callers test CallErrors against the infrastructure sentinels:
// no_data matches sentinel.ErrNotFound, every other category sentinel.ErrUnavailable.
func (e *CallError) Is(target error) bool {
	if e.Category == CategoryNoData {
		return target == sentinel.ErrNotFound
	}
	return target == sentinel.ErrUnavailable
}

func newCallError(category Category, service, message string, underlying error) *CallError {
	return &CallError{
		Category:   category,
		Service:    service,
		Message:    message,
		Underlying: underlying,
	}
}

// GetCategory extracts the category from an error, or "" when err is not a CallError.
func GetCategory(err error) Category {
	var ce *CallError
	if errors.As(err, &ce) {
		return ce.Category
	}
	return ""
}
