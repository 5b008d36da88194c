package upstream

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lookupagg/pkg/platform/sentinel"
	"lookupagg/pkg/testutil"
)

func TestEnrichmentClientFetch(t *testing.T) {
	t.Run("sends key and identifier and returns compact body", func(t *testing.T) {
		srv := testutil.NewUpstream(t, testutil.JSON(http.StatusOK, "{\n  \"name\": \"X\",\n  \"members\": [ {\"rel\": \"father\"} ]\n}"))
		client, err := NewEnrichmentClient(srv.URL+"/fetch", "secret-key")
		require.NoError(t, err)

		rec, err := client.Fetch(context.Background(), "123456789012")

		require.NoError(t, err)
		assert.Equal(t, `{"name":"X","members":[{"rel":"father"}]}`, string(rec))
		require.Len(t, srv.Queries(), 1)
		q := srv.Queries()[0]
		assert.Equal(t, "secret-key", q.Get("key"))
		assert.Equal(t, "123456789012", q.Get("aadhar"))
	})

	t.Run("any json value is accepted", func(t *testing.T) {
		srv := testutil.NewUpstream(t, testutil.JSON(http.StatusOK, `["a", 1, null]`))
		client, err := NewEnrichmentClient(srv.URL, "k")
		require.NoError(t, err)

		rec, err := client.Fetch(context.Background(), "123456789012")
		require.NoError(t, err)
		assert.Equal(t, `["a",1,null]`, string(rec))
	})

	t.Run("server error is unavailable", func(t *testing.T) {
		srv := testutil.NewUpstream(t, testutil.JSON(http.StatusInternalServerError, `{}`))
		client, err := NewEnrichmentClient(srv.URL, "k")
		require.NoError(t, err)

		rec, err := client.Fetch(context.Background(), "123456789012")
		assert.Nil(t, rec)
		assert.ErrorIs(t, err, sentinel.ErrUnavailable)
		assert.Equal(t, CategoryBadStatus, GetCategory(err))
	})

	t.Run("malformed body is bad_data", func(t *testing.T) {
		srv := testutil.NewUpstream(t, testutil.JSON(http.StatusOK, `{"name":`))
		client, err := NewEnrichmentClient(srv.URL, "k")
		require.NoError(t, err)

		_, err = client.Fetch(context.Background(), "123456789012")
		assert.Equal(t, CategoryBadData, GetCategory(err))
	})

	t.Run("transport errors do not expose the query", func(t *testing.T) {
		srv := testutil.NewUpstream(t, testutil.JSON(http.StatusOK, `{}`))
		base := srv.URL
		srv.Close()
		client, err := NewEnrichmentClient(base, "secret-key")
		require.NoError(t, err)

		_, err = client.Fetch(context.Background(), "123456789012")
		require.Error(t, err)
		assert.Equal(t, CategoryTransport, GetCategory(err))
		assert.NotContains(t, err.Error(), "secret-key")
		assert.NotContains(t, err.Error(), "123456789012")
	})
}
