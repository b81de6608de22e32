package swap

import (
	"context"
	"math"
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConvert(t *testing.T) {
	tests := []struct {
		name      string
		amount    float64
		fromPrice float64
		toPrice   float64
		want      float64
	}{
		{"eth to usdt", 5, 3000, 1, 15000},
		{"usdt to eth", 3000, 1, 3000, 1},
		{"same price is identity", 7.25, 42, 42, 7.25},
		{"fractional", 0.5, 60000, 3000, 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, Convert(tt.amount, tt.fromPrice, tt.toPrice), 1e-9)
		})
	}
}

func TestFormatAmount(t *testing.T) {
	assert.Equal(t, "15000.0000", FormatAmount(15000, 4))
	assert.Equal(t, "0.3333", FormatAmount(1.0/3.0, 4))
	assert.Equal(t, "1.50", FormatAmount(1.5, 2))

	// Non-finite values must not panic the formatter.
	assert.Equal(t, "NaN", FormatAmount(math.NaN(), 4))
	assert.Equal(t, "+Inf", FormatAmount(math.Inf(1), 4))
}

func TestSuccessMessage(t *testing.T) {
	msg := SuccessMessage(5, "ETH", "USDT")
	assert.Equal(t, "Successfully swapped 5 ETH for 4.9500 USDT.", msg)
}

func TestSimulatorSettles(t *testing.T) {
	// Rate 1 settles every submission.
	s := NewSimulator(time.Millisecond, 1, rand.New(rand.NewSource(1)), nil)

	receipt, err := s.Execute(context.Background(), "ETH", "USDT", 5)
	require.NoError(t, err)
	assert.NotEqual(t, "", receipt.ID.String())
	assert.Contains(t, receipt.Message, "Successfully swapped 5 ETH")
}

func TestSimulatorFails(t *testing.T) {
	// Rate 0 fails every submission.
	s := NewSimulator(time.Millisecond, 0, rand.New(rand.NewSource(1)), nil)

	_, err := s.Execute(context.Background(), "ETH", "USDT", 5)
	require.ErrorIs(t, err, ErrSwapFailed)
}

func TestSimulatorContextCancelled(t *testing.T) {
	s := NewSimulator(time.Second, 1, nil, nil)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := s.Execute(ctx, "ETH", "USDT", 5)
	require.ErrorIs(t, err, context.Canceled)
}

func TestStubExecutor(t *testing.T) {
	stub := &StubExecutor{}
	receipt, err := stub.Execute(context.Background(), "ETH", "USDT", 5)
	require.NoError(t, err)
	assert.NotNil(t, receipt)
	assert.Equal(t, 1, stub.Calls())

	stub = &StubExecutor{Err: ErrSwapFailed}
	_, err = stub.Execute(context.Background(), "ETH", "USDT", 5)
	require.ErrorIs(t, err, ErrSwapFailed)
}
