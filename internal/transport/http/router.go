package httptransport

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"lookupagg/internal/lookup"
	lookuphandler "lookupagg/internal/lookup/handler"
	"lookupagg/pkg/platform/httputil"
	"lookupagg/pkg/platform/middleware/cors"
	"lookupagg/pkg/platform/middleware/metadata"
	"lookupagg/pkg/platform/middleware/recoverer"
	"lookupagg/pkg/platform/middleware/requestid"
	"lookupagg/pkg/platform/middleware/requesttime"
)

// Deps are the pieces the router mounts. Metrics is optional; hosted
// deployments leave it nil and expose only the lookup endpoint.
type Deps struct {
	Lookup  *lookuphandler.Handler
	Metrics http.Handler
	Logger  *slog.Logger
}

// NewRouter wires the middleware chain and all public endpoints.
func NewRouter(d Deps) http.Handler {
	r := chi.NewRouter()
	r.Use(requestid.Middleware)
	r.Use(requesttime.Middleware)
	r.Use(chimiddleware.RealIP)
	r.Use(metadata.ClientMetadata)
	r.Use(recoverer.Middleware(d.Logger, lookup.MessageUpstreamUnavailable))
	r.Use(cors.Middleware)

	d.Lookup.Register(r)

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		httputil.WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	if d.Metrics != nil {
		r.Method(http.MethodGet, "/metrics", d.Metrics)
	}
	return r
}
