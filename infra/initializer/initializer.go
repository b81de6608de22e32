// Package initializer wires the application dependencies from
// configuration: logger, catalog source, cache, ledger, executor and the
// form controller.
package initializer

import (
	"fmt"
	"log/slog"

	"github.com/amirasaad/swapflow/pkg/cache"
	"github.com/amirasaad/swapflow/pkg/config"
	"github.com/amirasaad/swapflow/pkg/eventbus"
	"github.com/amirasaad/swapflow/pkg/form"
	"github.com/amirasaad/swapflow/pkg/ledger"
	"github.com/amirasaad/swapflow/pkg/provider/catalog"
	"github.com/amirasaad/swapflow/pkg/swap"
	"github.com/redis/go-redis/v9"
)

// Deps carries all the initialized application dependencies.
type Deps struct {
	Logger     *slog.Logger
	Source     catalog.Source
	Ledger     *ledger.Ledger
	Executor   swap.Executor
	Bus        *eventbus.Bus
	Controller *form.Controller
}

// InitializeDependencies builds the dependency graph for the given
// configuration.
func InitializeDependencies(cfg *config.App) (*Deps, error) {
	logger := SetupLogger(cfg.Log)

	seed, err := ledger.ParseSeed(cfg.Ledger.Seed)
	if err != nil {
		return nil, fmt.Errorf("parse ledger seed: %w", err)
	}

	var catalogCache cache.CatalogCache
	if cfg.Redis.Addr != "" {
		catalogCache = cache.NewRedisCatalogCache(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		}, cfg.Redis.Prefix, logger)
		logger.Info("using redis catalog cache", "addr", cfg.Redis.Addr)
	} else {
		catalogCache = cache.NewMemoryCache()
	}

	source := catalog.NewCachedSource(
		catalog.NewHTTPSource(cfg.Catalog.URL, cfg.Catalog.HTTPTimeout, logger),
		catalogCache,
		cfg.Catalog.CacheKey,
		cfg.Catalog.CacheTTL,
		logger,
	)

	deps := &Deps{
		Logger:   logger,
		Source:   source,
		Ledger:   ledger.New(seed),
		Executor: swap.NewSimulator(cfg.Swap.Latency, cfg.Swap.SuccessRate, nil, logger),
		Bus:      eventbus.New(),
	}
	deps.Controller = form.NewController(
		deps.Source,
		deps.Ledger,
		deps.Executor,
		form.Config{
			DebounceInterval: cfg.Swap.DebounceInterval,
			CalcDelay:        cfg.Swap.CalcDelay,
		},
		deps.Bus,
		logger,
	)
	return deps, nil
}
