package lookup

import "context"

// PrimaryClient fetches candidate records for a number.
// Implementations wrap sentinel.ErrNotFound when the service answered without
// usable records and sentinel.ErrUnavailable for everything else.
type PrimaryClient interface {
	Lookup(ctx context.Context, number MobileNumber) ([]PrimaryRecord, error)
}

// EnrichmentClient fetches the enrichment body for one identifier.
type EnrichmentClient interface {
	Fetch(ctx context.Context, id CandidateIdentifier) (EnrichmentRecord, error)
}
