package cache

import (
	"context"
	"testing"
	"time"

	"github.com/amirasaad/swapflow/pkg/currency"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryCacheSetGet(t *testing.T) {
	c := NewMemoryCache()
	ctx := context.Background()

	cat := &currency.Catalog{
		Currencies: []currency.Currency{{Symbol: "ETH", Name: "Ethereum"}},
		Prices:     currency.PriceTable{"ETH": 3000},
	}

	require.NoError(t, c.Set(ctx, "markets", cat, time.Minute))

	got, err := c.Get(ctx, "markets")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, cat.Currencies, got.Currencies)
}

func TestMemoryCacheMiss(t *testing.T) {
	c := NewMemoryCache()

	got, err := c.Get(context.Background(), "absent")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestMemoryCacheExpiry(t *testing.T) {
	c := NewMemoryCache()
	ctx := context.Background()

	cat := &currency.Catalog{Prices: currency.PriceTable{"BTC": 60000}}
	require.NoError(t, c.Set(ctx, "markets", cat, time.Millisecond))

	time.Sleep(5 * time.Millisecond)

	got, err := c.Get(ctx, "markets")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestMemoryCacheDelete(t *testing.T) {
	c := NewMemoryCache()
	ctx := context.Background()

	cat := &currency.Catalog{Prices: currency.PriceTable{"SOL": 150}}
	require.NoError(t, c.Set(ctx, "markets", cat, time.Minute))
	require.NoError(t, c.Delete(ctx, "markets"))

	got, err := c.Get(ctx, "markets")
	require.NoError(t, err)
	assert.Nil(t, got)
}
