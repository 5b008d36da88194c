package lookup

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"lookupagg/internal/lookup/metrics"
	"lookupagg/pkg/platform/sentinel"
	"lookupagg/pkg/requestcontext"
)

// DefaultFanOut bounds concurrent enrichment calls per request.
const DefaultFanOut = 4

var tracer = otel.Tracer("lookupagg/internal/lookup")

// Service runs the two-stage lookup: validate, primary fetch, extract,
// enrichment fan-out, assemble. It holds no per-request state.
type Service struct {
	primary    PrimaryClient
	enrichment EnrichmentClient
	fanOut     int
	logger     *slog.Logger
	metrics    *metrics.Metrics
}

type Option func(*Service)

// WithFanOut sets the maximum number of concurrent enrichment calls.
// Values below 1 are ignored.
func WithFanOut(n int) Option {
	return func(s *Service) {
		if n >= 1 {
			s.fanOut = n
		}
	}
}

func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(s *Service) {
		s.metrics = m
	}
}

// New constructs a Service. Both clients are required.
func New(primary PrimaryClient, enrichment EnrichmentClient, opts ...Option) (*Service, error) {
	if primary == nil {
		return nil, errors.New("primary client is required")
	}
	if enrichment == nil {
		return nil, errors.New("enrichment client is required")
	}
	s := &Service{
		primary:    primary,
		enrichment: enrichment,
		fanOut:     DefaultFanOut,
		logger:     slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// Lookup validates rawNumber and aggregates the enrichment records reachable
// from it. Every returned error is a *Error.
func (s *Service) Lookup(ctx context.Context, rawNumber string) (*Result, error) {
	start := time.Now()
	ctx, span := tracer.Start(ctx, "lookup.Lookup")
	defer span.End()

	result, err := s.lookup(ctx, rawNumber)

	s.metrics.ObserveLookupLatency(time.Since(start))
	if err != nil {
		kind := KindOf(err)
		s.metrics.IncrementOutcome(string(kind))
		span.SetAttributes(attribute.String("lookup.outcome", string(kind)))
		span.SetStatus(codes.Error, string(kind))
		return nil, err
	}
	s.metrics.IncrementOutcome("success")
	span.SetAttributes(
		attribute.String("lookup.outcome", "success"),
		attribute.Int("lookup.records", len(result.Records)),
	)
	return result, nil
}

func (s *Service) lookup(ctx context.Context, rawNumber string) (*Result, error) {
	number, err := ParseMobileNumber(rawNumber)
	if err != nil {
		return nil, err
	}

	records, err := s.fetchPrimary(ctx, number)
	if err != nil {
		return nil, err
	}

	ids := ExtractIdentifiers(records)
	s.metrics.AddCandidates(len(ids), len(records)-len(ids))
	s.logger.DebugContext(ctx, "primary records extracted",
		"request_id", requestcontext.RequestID(ctx),
		"records", len(records),
		"candidates", len(ids),
	)

	outcomes := s.enrich(ctx, ids)
	return Assemble(outcomes)
}

func (s *Service) fetchPrimary(ctx context.Context, number MobileNumber) ([]PrimaryRecord, error) {
	records, err := s.primary.Lookup(ctx, number)
	switch {
	case errors.Is(err, sentinel.ErrNotFound):
		return nil, newError(KindNoPrimaryData, MessageNoPrimaryData, err)
	case err != nil:
		s.logger.WarnContext(ctx, "primary lookup failed",
			"request_id", requestcontext.RequestID(ctx),
			"error", err,
		)
		return nil, newError(KindUpstreamUnavailable, MessageUpstreamUnavailable, err)
	case len(records) == 0:
		return nil, newError(KindNoPrimaryData, MessageNoPrimaryData, sentinel.ErrNotFound)
	}
	return records, nil
}
