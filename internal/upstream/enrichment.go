package upstream

import (
	"bytes"
	"context"
	"encoding/json"

	"lookupagg/internal/lookup"
)

const enrichmentService = "enrichment"

// EnrichmentClient queries the enrichment service:
// GET <base>?key=<access-key>&aadhar=<identifier>.
type EnrichmentClient struct {
	caller    *caller
	accessKey string
}

// NewEnrichmentClient builds a client for the enrichment service at baseURL.
func NewEnrichmentClient(baseURL, accessKey string, opts ...Option) (*EnrichmentClient, error) {
	c, err := newCaller(enrichmentService, baseURL, opts)
	if err != nil {
		return nil, err
	}
	return &EnrichmentClient{caller: c, accessKey: accessKey}, nil
}

// Fetch returns the enrichment body for id, compacted but otherwise untouched.
func (c *EnrichmentClient) Fetch(ctx context.Context, id lookup.CandidateIdentifier) (lookup.EnrichmentRecord, error) {
	body, err := c.caller.getJSON(ctx, []param{
		{"key", c.accessKey},
		{"aadhar", string(id)},
	})
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if err := json.Compact(&buf, body); err != nil {
		return nil, newCallError(CategoryBadData, enrichmentService, "compact body", err)
	}
	return lookup.EnrichmentRecord(buf.Bytes()), nil
}
