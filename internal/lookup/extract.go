package lookup

import (
	"encoding/json"
	"strings"
)

// ExtractIdentifier reads id_number from rec. A missing, non-string or blank
// field, or one that is not exactly twelve digits once trimmed, yields false.
func ExtractIdentifier(rec PrimaryRecord) (CandidateIdentifier, bool) {
	raw, ok := rec[identifierField]
	if !ok {
		return "", false
	}
	var value string
	if err := json.Unmarshal(raw, &value); err != nil {
		return "", false
	}
	value = strings.TrimSpace(value)
	if len(value) != identifierLength || !isASCIIDigits(value) {
		return "", false
	}
	return CandidateIdentifier(value), true
}

// ExtractIdentifiers keeps primary order. Duplicates are kept: every accepted
// record gets its own enrichment call.
func ExtractIdentifiers(records []PrimaryRecord) []CandidateIdentifier {
	ids := make([]CandidateIdentifier, 0, len(records))
	for _, rec := range records {
		if id, ok := ExtractIdentifier(rec); ok {
			ids = append(ids, id)
		}
	}
	return ids
}
