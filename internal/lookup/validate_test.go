package lookup

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lookupagg/pkg/platform/sentinel"
)

func TestParseMobileNumber(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    MobileNumber
		wantMsg string
	}{
		{name: "ten digits", raw: "9876543210", want: "9876543210"},
		{name: "surrounding whitespace trimmed", raw: "  9876543210\t", want: "9876543210"},
		{name: "empty", raw: "", wantMsg: MessageMissingNumber},
		{name: "only whitespace", raw: "   ", wantMsg: MessageMissingNumber},
		{name: "too short", raw: "123", wantMsg: MessageInvalidNumber},
		{name: "too long", raw: "98765432101", wantMsg: MessageInvalidNumber},
		{name: "letters", raw: "98765abcde", wantMsg: MessageInvalidNumber},
		{name: "sign prefix", raw: "+987654321", wantMsg: MessageInvalidNumber},
		{name: "inner space", raw: "98765 43210", wantMsg: MessageInvalidNumber},
		{name: "non-ascii digits", raw: "٩٨٧٦٥٤٣٢١٠", wantMsg: MessageInvalidNumber},
		{name: "fullwidth digits", raw: "９８７６５４３２１０", wantMsg: MessageInvalidNumber},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseMobileNumber(tt.raw)
			if tt.wantMsg == "" {
				require.NoError(t, err)
				assert.Equal(t, tt.want, got)
				return
			}
			require.Error(t, err)
			assert.Equal(t, KindInvalidInput, KindOf(err))
			assert.Equal(t, tt.wantMsg, MessageFor(err))
			assert.True(t, errors.Is(err, sentinel.ErrInvalidInput))
			assert.Empty(t, got)
		})
	}
}

func TestMessageFor(t *testing.T) {
	t.Run("unclassified errors fall back to the generic message", func(t *testing.T) {
		err := errors.New("dial tcp 10.0.0.1:443: connection refused")
		assert.Equal(t, MessageUpstreamUnavailable, MessageFor(err))
		assert.Equal(t, KindUpstreamUnavailable, KindOf(err))
	})

	t.Run("wrapped lookup errors keep their message", func(t *testing.T) {
		err := newError(KindNoPrimaryData, MessageNoPrimaryData, sentinel.ErrNotFound)
		wrapped := errors.Join(errors.New("context"), err)
		assert.Equal(t, MessageNoPrimaryData, MessageFor(wrapped))
		assert.Equal(t, KindNoPrimaryData, KindOf(wrapped))
	})

	t.Run("error text includes cause", func(t *testing.T) {
		err := newError(KindUpstreamUnavailable, MessageUpstreamUnavailable, sentinel.ErrUnavailable)
		assert.Equal(t, "upstream_unavailable: Service temporarily unavailable: unavailable", err.Error())
	})
}
