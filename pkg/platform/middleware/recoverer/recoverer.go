// Package recoverer turns handler panics into the generic failure envelope so a
// single broken request never takes the process down.
package recoverer

import (
	"log/slog"
	"net/http"
	"runtime/debug"

	"lookupagg/pkg/platform/httputil"
	"lookupagg/pkg/requestcontext"
)

// Middleware recovers panics, logs them with the request ID and answers with
// the fallback error message.
func Middleware(logger *slog.Logger, fallbackMessage string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				rec := recover()
				if rec == nil {
					return
				}
				if rec == http.ErrAbortHandler {
					panic(rec)
				}
				ctx := r.Context()
				logger.ErrorContext(ctx, "panic recovered",
					"request_id", requestcontext.RequestID(ctx),
					"panic", rec,
					"stack", string(debug.Stack()),
				)
				httputil.WriteFailure(w, http.StatusBadRequest, fallbackMessage)
			}()
			next.ServeHTTP(w, r)
		})
	}
}
