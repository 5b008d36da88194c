package sentinel

import "errors"

// Sentinel errors for infrastructure facts. Upstream clients return these (wrapped) so the
// lookup pipeline can translate them into its own error kinds.
//
// - ErrUnavailable: an upstream service could not be reached or answered unusably
// - ErrNotFound: an upstream service answered but had nothing for the key
// - ErrInvalidInput: a value failed shape validation before any call was made
var (
	ErrUnavailable  = errors.New("unavailable")
	ErrNotFound     = errors.New("not found")
	ErrInvalidInput = errors.New("invalid input")
)
