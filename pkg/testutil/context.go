package testutil

import (
	"net/http"

	"lookupagg/pkg/requestcontext"
)

// WithRequestID adds a request ID to the request context, as the request-ID
// middleware would.
func WithRequestID(req *http.Request, requestID string) *http.Request {
	return req.WithContext(requestcontext.WithRequestID(req.Context(), requestID))
}
