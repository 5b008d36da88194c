// Package app assembles the lookup pipeline from configuration. Both the
// long-running server and the hosted function adapter build through here.
package app

import (
	"log/slog"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"

	"lookupagg/internal/lookup"
	lookuphandler "lookupagg/internal/lookup/handler"
	lookupmetrics "lookupagg/internal/lookup/metrics"
	"lookupagg/internal/platform/config"
	"lookupagg/internal/platform/metrics"
	httptransport "lookupagg/internal/transport/http"
	"lookupagg/internal/upstream"
)

// NewRouter wires upstream clients, the lookup service and the HTTP router.
// A nil registry leaves metrics unregistered and /metrics unmounted.
func NewRouter(cfg config.Config, log *slog.Logger, reg *metrics.Registry) (http.Handler, error) {
	var (
		registerer  prometheus.Registerer
		metricsHTTP http.Handler
	)
	if reg != nil {
		registerer = reg
		metricsHTTP = reg.Handler()
	}

	upMetrics := upstream.NewMetrics(registerer)
	client := upstream.DefaultHTTPClient()

	primary, err := upstream.NewPrimaryClient(cfg.Upstream.PrimaryURL,
		upstream.WithHTTPClient(client),
		upstream.WithTimeout(cfg.Upstream.Timeout),
		upstream.WithMetrics(upMetrics),
	)
	if err != nil {
		return nil, err
	}
	enrichment, err := upstream.NewEnrichmentClient(cfg.Upstream.EnrichmentURL, cfg.Upstream.EnrichmentKey,
		upstream.WithHTTPClient(client),
		upstream.WithTimeout(cfg.Upstream.Timeout),
		upstream.WithMetrics(upMetrics),
	)
	if err != nil {
		return nil, err
	}

	svc, err := lookup.New(primary, enrichment,
		lookup.WithFanOut(cfg.Upstream.EnrichmentFanOut),
		lookup.WithLogger(log),
		lookup.WithMetrics(lookupmetrics.New(registerer)),
	)
	if err != nil {
		return nil, err
	}

	return httptransport.NewRouter(httptransport.Deps{
		Lookup:  lookuphandler.New(svc, log),
		Metrics: metricsHTTP,
		Logger:  log,
	}), nil
}
