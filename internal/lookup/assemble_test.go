package lookup

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAssemble(t *testing.T) {
	t.Run("no candidates", func(t *testing.T) {
		result, err := Assemble(nil)
		require.Error(t, err)
		assert.Nil(t, result)
		assert.Equal(t, KindNoEnrichedData, KindOf(err))
		assert.Equal(t, MessageNoEnrichedData, MessageFor(err))
	})

	t.Run("every call failed", func(t *testing.T) {
		outcomes := []EnrichmentOutcome{
			{Index: 0, Identifier: "111111111111", Err: errors.New("timeout")},
			{Index: 1, Identifier: "222222222222", Err: errors.New("bad status")},
		}
		_, err := Assemble(outcomes)
		assert.Equal(t, MessageNoEnrichedData, MessageFor(err))
	})

	t.Run("keeps successful records in index order", func(t *testing.T) {
		outcomes := []EnrichmentOutcome{
			{Index: 0, Identifier: "111111111111", Record: EnrichmentRecord(`{"n":1}`)},
			{Index: 1, Identifier: "222222222222", Err: errors.New("boom")},
			{Index: 2, Identifier: "333333333333", Record: EnrichmentRecord(`{"n":3}`)},
		}
		result, err := Assemble(outcomes)
		require.NoError(t, err)
		assert.Equal(t, []EnrichmentRecord{EnrichmentRecord(`{"n":1}`), EnrichmentRecord(`{"n":3}`)}, result.Records)
		assert.Equal(t, 3, result.Candidates)
		require.Len(t, result.Failed, 1)
		assert.Equal(t, CandidateIdentifier("222222222222"), result.Failed[0].Identifier)
	})
}

func TestEnrichmentRecordMarshalJSON(t *testing.T) {
	out, err := EnrichmentRecord(`[1,"a"]`).MarshalJSON()
	require.NoError(t, err)
	assert.Equal(t, `[1,"a"]`, string(out))

	out, err = EnrichmentRecord(nil).MarshalJSON()
	require.NoError(t, err)
	assert.Equal(t, "null", string(out))
}
