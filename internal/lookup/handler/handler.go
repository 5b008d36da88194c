package handler

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"lookupagg/internal/lookup"
	"lookupagg/pkg/platform/httputil"
	"lookupagg/pkg/requestcontext"
)

// Service defines the interface for lookup operations.
type Service interface {
	Lookup(ctx context.Context, rawNumber string) (*lookup.Result, error)
}

// Handler wires the lookup endpoint to the lookup service.
type Handler struct {
	service Service
	logger  *slog.Logger
}

// New constructs a lookup handler with its dependencies.
func New(service Service, logger *slog.Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Register mounts the lookup endpoints on the router.
func (h *Handler) Register(r chi.Router) {
	r.Get("/", h.HandleLookup)
	r.Options("/", h.HandlePreflight)
}

// HandleLookup handles GET /?num=<digits>. Every failure is a 400 carrying
// the failure message; success is a 200 with the enrichment records.
func (h *Handler) HandleLookup(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)
	start := requestcontext.Now(ctx)

	result, err := h.service.Lookup(ctx, numParam(r))
	if err != nil {
		h.logger.InfoContext(ctx, "lookup failed",
			"request_id", requestID,
			"client_ip", requestcontext.ClientIP(ctx),
			"user_agent", requestcontext.UserAgent(ctx),
			"kind", lookup.KindOf(err),
			"error", err,
			"duration_ms", time.Since(start).Milliseconds(),
		)
		httputil.WriteFailure(w, http.StatusBadRequest, lookup.MessageFor(err))
		return
	}

	h.logger.InfoContext(ctx, "lookup succeeded",
		"request_id", requestID,
		"candidates", result.Candidates,
		"records", len(result.Records),
		"dropped", len(result.Failed),
		"duration_ms", time.Since(start).Milliseconds(),
	)
	httputil.WriteJSON(w, http.StatusOK, FromResult(result))
}

// HandlePreflight answers OPTIONS / with an empty 200. The CORS headers come
// from the cors middleware.
func (h *Handler) HandlePreflight(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
}

// numParam returns the first non-empty num value. Empty repeats such as
// ?num=&num=9876543210 are skipped.
func numParam(r *http.Request) string {
	for _, v := range r.URL.Query()["num"] {
		if v != "" {
			return v
		}
	}
	return ""
}
