package ledger

import (
	"math"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetMissingIsZero(t *testing.T) {
	l := New(nil)
	assert.Equal(t, 0.0, l.Get("ETH"))
}

func TestApplyExactDeltas(t *testing.T) {
	l := New(map[string]float64{"ETH": 10, "USDT": 100})

	require.NoError(t, l.Apply("ETH", 5, "USDT", 15000))

	assert.Equal(t, 5.0, l.Get("ETH"))
	assert.Equal(t, 15100.0, l.Get("USDT"))
}

func TestApplyCreditsUnknownCurrency(t *testing.T) {
	l := New(map[string]float64{"ETH": 10})

	require.NoError(t, l.Apply("ETH", 1, "USDT", 3000))

	assert.Equal(t, 9.0, l.Get("ETH"))
	assert.Equal(t, 3000.0, l.Get("USDT"))
}

func TestApplyRejections(t *testing.T) {
	tests := []struct {
		name       string
		from       string
		fromAmount float64
		to         string
		toAmount   float64
		wantErr    error
	}{
		{"insufficient balance", "ETH", 20, "USDT", 60000, ErrInsufficientFunds},
		{"zero from amount", "ETH", 0, "USDT", 1, ErrNonPositiveAmount},
		{"negative to amount", "ETH", 1, "USDT", -1, ErrNonPositiveAmount},
		{"nan from amount", "ETH", math.NaN(), "USDT", 1, ErrNonPositiveAmount},
		{"nan to amount", "ETH", 1, "USDT", math.NaN(), ErrNonPositiveAmount},
		{"infinite from amount", "ETH", math.Inf(1), "USDT", 1, ErrNonPositiveAmount},
		{"self swap", "ETH", 1, "ETH", 1, ErrSameCurrency},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := New(map[string]float64{"ETH": 10})

			err := l.Apply(tt.from, tt.fromAmount, tt.to, tt.toAmount)
			require.ErrorIs(t, err, tt.wantErr)

			// A rejected apply must leave the ledger untouched.
			assert.Equal(t, map[string]float64{"ETH": 10}, l.Snapshot())
		})
	}
}

func TestApplyConcurrentNoDoubleSpend(t *testing.T) {
	l := New(map[string]float64{"ETH": 10})

	var wg sync.WaitGroup
	errs := make([]error, 4)
	for i := range errs {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			errs[i] = l.Apply("ETH", 4, "USDT", 12000)
		}(i)
	}
	wg.Wait()

	applied := 0
	for _, err := range errs {
		if err == nil {
			applied++
		}
	}

	// Only two debits of 4 fit into a balance of 10.
	assert.Equal(t, 2, applied)
	assert.Equal(t, 2.0, l.Get("ETH"))
	assert.Equal(t, 24000.0, l.Get("USDT"))
}

func TestSnapshotIsCopy(t *testing.T) {
	l := New(map[string]float64{"BTC": 1})

	snap := l.Snapshot()
	snap["BTC"] = 99

	assert.Equal(t, 1.0, l.Get("BTC"))
}

func TestParseSeed(t *testing.T) {
	seed, err := ParseSeed("ETH:10, btc:1,USDT:10000")
	require.NoError(t, err)
	assert.Equal(t, map[string]float64{"ETH": 10, "BTC": 1, "USDT": 10000}, seed)

	_, err = ParseSeed("ETH")
	require.Error(t, err)

	_, err = ParseSeed("ETH:abc")
	require.Error(t, err)

	_, err = ParseSeed("ETH:-1")
	require.Error(t, err)

	_, err = ParseSeed("ETH:NaN")
	require.Error(t, err)

	_, err = ParseSeed("ETH:Inf")
	require.Error(t, err)

	seed, err = ParseSeed("")
	require.NoError(t, err)
	assert.Empty(t, seed)
}
