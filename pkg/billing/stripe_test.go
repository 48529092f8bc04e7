package billing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetPricingMatchesPackTable(t *testing.T) {
	s := &Service{}

	resp := s.GetPricing()
	require.Len(t, resp.Packs, len(packs))

	for i, got := range resp.Packs {
		p, ok := packs[got.Name]
		require.True(t, ok, "listed pack %q not in pack table", got.Name)
		assert.Equal(t, p.tokens, got.Tokens)
		assert.Equal(t, p.priceUSD, got.PriceUSD)
		assert.Equal(t, p.description, got.Description)
		if i > 0 {
			assert.Less(t, resp.Packs[i-1].Tokens, got.Tokens)
		}
	}
}
