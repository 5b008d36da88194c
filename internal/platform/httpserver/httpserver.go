package httpserver

import (
	"net/http"
	"time"
)

// New builds an HTTP server with sane defaults for this project. The write
// timeout leaves room for one primary call plus a full enrichment fan-out.
func New(addr string, handler http.Handler, upstreamTimeout time.Duration) *http.Server {
	return &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      writeTimeout(upstreamTimeout),
		IdleTimeout:       60 * time.Second,
	}
}

// writeTimeout never cuts off a request that is still within its per-call
// budgets; enrichment calls may run sequentially in the worst case, so this
// is a generous multiple rather than an exact bound.
func writeTimeout(upstreamTimeout time.Duration) time.Duration {
	if upstreamTimeout <= 0 {
		return 0
	}
	return 12 * upstreamTimeout
}
