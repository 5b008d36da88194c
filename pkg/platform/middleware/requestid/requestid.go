// Package requestid tags every request with an identifier used in logs and the
// X-Request-ID response header.
package requestid

import (
	"net/http"

	"github.com/google/uuid"

	"lookupagg/pkg/requestcontext"
)

// Header carries the request ID in both directions.
const Header = "X-Request-ID"

const maxInboundLength = 128

// Middleware reuses a caller supplied X-Request-ID when it is short enough,
// otherwise it generates a random UUID.
func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(Header)
		if id == "" || len(id) > maxInboundLength {
			id = uuid.NewString()
		}
		w.Header().Set(Header, id)
		ctx := requestcontext.WithRequestID(r.Context(), id)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
