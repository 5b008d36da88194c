// Package cors emits the permissive CORS headers the lookup endpoint promises to browsers.
package cors

import "net/http"

const (
	allowOrigin  = "*"
	allowMethods = "GET, OPTIONS"
	allowHeaders = "Content-Type"
)

// SetHeaders writes the CORS headers onto w.
func SetHeaders(w http.ResponseWriter) {
	h := w.Header()
	h.Set("Access-Control-Allow-Origin", allowOrigin)
	h.Set("Access-Control-Allow-Methods", allowMethods)
	h.Set("Access-Control-Allow-Headers", allowHeaders)
}

// Middleware sets the CORS headers on every response, including errors and
// 405s. Preflight requests reach the routed OPTIONS handler.
func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		SetHeaders(w)
		next.ServeHTTP(w, r)
	})
}
