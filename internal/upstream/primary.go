package upstream

import (
	"context"
	"encoding/json"

	"lookupagg/internal/lookup"
)

const primaryService = "primary"

// PrimaryClient queries the primary lookup service: GET <base>?term=<number>.
type PrimaryClient struct {
	caller *caller
}

// NewPrimaryClient builds a client for the primary service at baseURL.
func NewPrimaryClient(baseURL string, opts ...Option) (*PrimaryClient, error) {
	c, err := newCaller(primaryService, baseURL, opts)
	if err != nil {
		return nil, err
	}
	return &PrimaryClient{caller: c}, nil
}

// Lookup returns the primary records for number. A falsy success flag and a
// falsy result are reported as CategoryNoData.
func (c *PrimaryClient) Lookup(ctx context.Context, number lookup.MobileNumber) ([]lookup.PrimaryRecord, error) {
	body, err := c.caller.getJSON(ctx, []param{{"term", string(number)}})
	if err != nil {
		return nil, err
	}
	return parsePrimaryResponse(body)
}

// parsePrimaryResponse decodes a primary body. The success flag and the
// result use JSON truthiness: null, false, 0, "", {} and [] all mean "no
// data". The flag is checked first, so a failed lookup with a malformed list
// is still "no data". A truthy result that is not an array is bad data.
// Entries that are not JSON objects become nil records, which yield no
// identifier.
func parsePrimaryResponse(body []byte) ([]lookup.PrimaryRecord, error) {
	var envelope map[string]json.RawMessage
	if err := json.Unmarshal(body, &envelope); err != nil {
		return nil, newCallError(CategoryBadData, primaryService, "decode response", err)
	}
	if envelope == nil {
		return nil, newCallError(CategoryBadData, primaryService, "response is null", nil)
	}
	if !truthy(envelope["success"]) {
		return nil, newCallError(CategoryNoData, primaryService, "success flag not set", nil)
	}

	raw := envelope["result"]
	if !truthy(raw) {
		return nil, newCallError(CategoryNoData, primaryService, "empty result", nil)
	}
	var results []json.RawMessage
	if err := json.Unmarshal(raw, &results); err != nil {
		return nil, newCallError(CategoryBadData, primaryService, "decode result list", err)
	}

	records := make([]lookup.PrimaryRecord, len(results))
	for i, raw := range results {
		var rec lookup.PrimaryRecord
		if err := json.Unmarshal(raw, &rec); err == nil {
			records[i] = rec
		}
	}
	return records, nil
}

// truthy reports whether raw is a present, non-empty JSON value. Absent and
// undecodable values are falsy.
func truthy(raw json.RawMessage) bool {
	if len(raw) == 0 {
		return false
	}
	var v any
	if err := json.Unmarshal(raw, &v); err != nil {
		return false
	}
	switch t := v.(type) {
	case nil:
		return false
	case bool:
		return t
	case float64:
		return t != 0
	case string:
		return t != ""
	case []any:
		return len(t) > 0
	case map[string]any:
		return len(t) > 0
	}
	return true
}
