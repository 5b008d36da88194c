package lookup

import (
	"encoding/json"
)

// MobileNumber is a validated 10-digit number. Only ParseMobileNumber produces one.
type MobileNumber string

// PrimaryRecord is one opaque entry of the primary service's result list.
// Values stay raw; the pipeline reads nothing but the id_number field.
type PrimaryRecord map[string]json.RawMessage

// CandidateIdentifier is a trimmed 12-digit identifier eligible for enrichment.
type CandidateIdentifier string

// Masked keeps the last four digits, for logs.
func (c CandidateIdentifier) Masked() string {
	s := string(c)
	if len(s) <= 4 {
		return s
	}
	return "********" + s[len(s)-4:]
}

// EnrichmentRecord is the enrichment service's JSON body, carried verbatim.
type EnrichmentRecord json.RawMessage

// MarshalJSON emits the record unchanged; the encoder compacts it.
func (r EnrichmentRecord) MarshalJSON() ([]byte, error) {
	if r == nil {
		return []byte("null"), nil
	}
	return r, nil
}

// EnrichmentOutcome is the result of one enrichment call: either Record or Err is set.
// Index is the candidate's position in extraction order.
type EnrichmentOutcome struct {
	Index      int
	Identifier CandidateIdentifier
	Record     EnrichmentRecord
	Err        error
}

// OK reports whether the call produced a record.
func (o EnrichmentOutcome) OK() bool {
	return o.Err == nil
}

// Result is a successful aggregation. Records keeps extraction order and is never empty.
type Result struct {
	Records []EnrichmentRecord
	// Candidates is how many primary records yielded an identifier.
	Candidates int
	// Failed lists the enrichment calls that were dropped.
	Failed []EnrichmentOutcome
}
