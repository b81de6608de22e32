package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("nonexistent.env")
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.Env)
	assert.Equal(t, "0.0.0.0:3000", cfg.Server.Addr())
	assert.Equal(t, 500*time.Millisecond, cfg.Swap.DebounceInterval)
	assert.Equal(t, 300*time.Millisecond, cfg.Swap.CalcDelay)
	assert.Equal(t, 1500*time.Millisecond, cfg.Swap.Latency)
	assert.Equal(t, 0.9, cfg.Swap.SuccessRate)
	assert.Equal(t, 15*time.Minute, cfg.Catalog.CacheTTL)
	assert.Contains(t, cfg.Ledger.Seed, "ETH:10")
	assert.Equal(t, "", cfg.Redis.Addr)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("SWAP_SUCCESS_RATE", "0.5")
	t.Setenv("SERVER_PORT", "8080")
	t.Setenv("LEDGER_SEED", "ETH:1")

	cfg, err := Load("nonexistent.env")
	require.NoError(t, err)

	assert.Equal(t, 0.5, cfg.Swap.SuccessRate)
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "ETH:1", cfg.Ledger.Seed)
}
