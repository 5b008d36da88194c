package lookup

import (
	"context"

	"golang.org/x/sync/errgroup"

	"lookupagg/pkg/requestcontext"
)

// enrich calls the enrichment service once per identifier, at most s.fanOut at
// a time. Outcomes are written by index, so the slice is in extraction order
// whatever order the calls finish in. A failed call never stops the others.
func (s *Service) enrich(ctx context.Context, ids []CandidateIdentifier) []EnrichmentOutcome {
	outcomes := make([]EnrichmentOutcome, len(ids))
	if len(ids) == 0 {
		return outcomes
	}

	var g errgroup.Group
	g.SetLimit(s.fanOut)
	for i, id := range ids {
		g.Go(func() error {
			outcomes[i] = s.enrichOne(ctx, i, id)
			return nil
		})
	}
	// workers never return an error, failures live in the outcomes
	_ = g.Wait()
	return outcomes
}

func (s *Service) enrichOne(ctx context.Context, index int, id CandidateIdentifier) EnrichmentOutcome {
	out := EnrichmentOutcome{Index: index, Identifier: id}
	record, err := s.enrichment.Fetch(ctx, id)
	if err != nil {
		out.Err = err
		s.logger.WarnContext(ctx, "enrichment dropped",
			"request_id", requestcontext.RequestID(ctx),
			"index", index,
			"identifier", id.Masked(),
			"error", err,
		)
	} else {
		out.Record = record
	}
	s.metrics.IncrementEnrichment(out.OK())
	return out
}
