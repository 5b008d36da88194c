package handler

import (
	"lookupagg/internal/lookup"
)

// LookupResponse is the success body of GET /.
type LookupResponse struct {
	Success bool                      `json:"success"`
	Result  []lookup.EnrichmentRecord `json:"result"`
}

// FromResult converts a domain Result to the HTTP response.
func FromResult(result *lookup.Result) *LookupResponse {
	records := result.Records
	if records == nil {
		records = []lookup.EnrichmentRecord{}
	}
	return &LookupResponse{Success: true, Result: records}
}
