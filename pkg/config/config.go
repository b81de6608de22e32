// Package config loads application configuration from the environment,
// optionally seeded from a .env file.
package config

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Server configures the HTTP listener.
type Server struct {
	Host string `envconfig:"HOST" default:"0.0.0.0"`
	Port int    `envconfig:"PORT" default:"3000"`
}

// Addr returns the listen address in host:port form.
func (s Server) Addr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

// Catalog configures the currency catalog feed.
type Catalog struct {
	URL         string        `envconfig:"URL" default:"https://api.coingecko.com/api/v3/coins/markets?vs_currency=usd&order=market_cap_desc&per_page=50&page=1"`
	HTTPTimeout time.Duration `envconfig:"HTTP_TIMEOUT" default:"10s"`
	CacheTTL    time.Duration `envconfig:"CACHE_TTL" default:"15m"`
	CacheKey    string        `envconfig:"CACHE_KEY" default:"markets"`
}

// Redis configures the optional catalog cache backend. An empty Addr
// selects the in-memory cache.
type Redis struct {
	Addr     string `envconfig:"ADDR"`
	Password string `envconfig:"PASSWORD"`
	DB       int    `envconfig:"DB"`
	Prefix   string `envconfig:"PREFIX" default:"swapflow:"`
}

// Swap configures the pipeline timing and the simulated executor.
type Swap struct {
	DebounceInterval time.Duration `envconfig:"DEBOUNCE_INTERVAL" default:"500ms"`
	CalcDelay        time.Duration `envconfig:"CALC_DELAY" default:"300ms"`
	Latency          time.Duration `envconfig:"LATENCY" default:"1500ms"`
	SuccessRate      float64       `envconfig:"SUCCESS_RATE" default:"0.9"`
}

// Ledger configures the starting balances, as "SYM:amount" pairs.
type Ledger struct {
	Seed string `envconfig:"SEED" default:"ETH:10,BTC:1,USDT:10000,BNB:50,SOL:200,AAVE:1993"`
}

// Log configures the logger.
type Log struct {
	Level      string `envconfig:"LEVEL" default:"info"`
	Format     string `envconfig:"FORMAT" default:"text"`
	TimeFormat string `envconfig:"TIME_FORMAT" default:"15:04:05"`
	Prefix     string `envconfig:"PREFIX" default:"swapflow"`
}

// App is the root configuration.
type App struct {
	Env     string  `envconfig:"ENV" default:"development"`
	Server  Server  `envconfig:"SERVER"`
	Catalog Catalog `envconfig:"CATALOG"`
	Redis   Redis   `envconfig:"REDIS"`
	Swap    Swap    `envconfig:"SWAP"`
	Ledger  Ledger  `envconfig:"LEDGER"`
	Log     Log     `envconfig:"LOG"`
}

// Load reads configuration from the environment. When envFiles are given,
// the first one that loads wins; a missing .env file is not an error.
func Load(envFiles ...string) (*App, error) {
	logger := slog.Default()
	if len(envFiles) == 0 {
		envFiles = []string{".env"}
	}
	loaded := false
	for _, path := range envFiles {
		if err := godotenv.Load(path); err != nil {
			logger.Debug("environment file not loaded", "path", path, "error", err)
			continue
		}
		logger.Info("environment loaded from file", "path", path)
		loaded = true
		break
	}
	if !loaded {
		logger.Warn("no .env file found, using system environment variables")
	}

	var cfg App
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("process environment: %w", err)
	}
	return &cfg, nil
}
