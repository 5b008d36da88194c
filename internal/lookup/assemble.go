package lookup

// Assemble turns enrichment outcomes into the final result. Success needs at
// least one record; no candidates and no successful call both end as
// KindNoEnrichedData with the same message.
func Assemble(outcomes []EnrichmentOutcome) (*Result, error) {
	result := &Result{
		Records:    make([]EnrichmentRecord, 0, len(outcomes)),
		Candidates: len(outcomes),
	}
	for _, o := range outcomes {
		if o.OK() {
			result.Records = append(result.Records, o.Record)
			continue
		}
		result.Failed = append(result.Failed, o)
	}
	if len(result.Records) == 0 {
		return nil, newError(KindNoEnrichedData, MessageNoEnrichedData, nil)
	}
	return result, nil
}
