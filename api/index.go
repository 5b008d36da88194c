// Package handler is the serverless entry point. The platform invokes
// Handler per request; the pipeline is built once per instance from the
// environment and reused while the instance stays warm.
package handler

import (
	"log/slog"
	"net/http"
	"sync"

	"lookupagg/internal/app"
	"lookupagg/internal/lookup"
	"lookupagg/internal/platform/config"
	"lookupagg/internal/platform/logger"
	"lookupagg/pkg/platform/httputil"
	"lookupagg/pkg/platform/middleware/cors"
)

var (
	once     sync.Once
	router   http.Handler
	buildErr error
)

func build() (http.Handler, error) {
	once.Do(func() {
		cfg, err := config.FromEnv()
		if err != nil {
			slog.Error("invalid configuration", "error", err)
			buildErr = err
			return
		}
		router, buildErr = app.NewRouter(cfg, logger.New(cfg.LogLevel), nil)
	})
	return router, buildErr
}

// Handler serves one request. The platform routes the function under its own
// path (/api, /api/index), so every request is served as the lookup at /.
// A misconfigured deployment answers every lookup with the generic
// unavailable failure.
func Handler(w http.ResponseWriter, r *http.Request) {
	h, err := build()
	if err != nil {
		cors.SetHeaders(w)
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}
		httputil.WriteFailure(w, http.StatusBadRequest, lookup.MessageUpstreamUnavailable)
		return
	}
	h.ServeHTTP(w, atRoot(r))
}

func atRoot(r *http.Request) *http.Request {
	if r.URL.Path == "/" {
		return r
	}
	r = r.Clone(r.Context())
	r.URL.Path = "/"
	r.URL.RawPath = ""
	return r
}
