package metadata

import (
	"net"
	"net/http"

	"lookupagg/pkg/requestcontext"
)

// ClientMetadata adds the client IP and User-Agent to the context for request
// logging. Mount it after chi's RealIP so proxy headers are already applied
// to RemoteAddr.
func ClientMetadata(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := requestcontext.WithClientMetadata(r.Context(), ClientIPFromRequest(r), r.Header.Get("User-Agent"))
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// ClientIPFromRequest returns the host part of RemoteAddr, which RealIP may
// have replaced with a bare address.
func ClientIPFromRequest(r *http.Request) string {
	if host, _, err := net.SplitHostPort(r.RemoteAddr); err == nil {
		return host
	}
	return r.RemoteAddr
}
