package main

import (
	"context"
	"fmt"

	"github.com/amirasaad/swapflow/infra/initializer"
	"github.com/amirasaad/swapflow/pkg/config"
	"github.com/amirasaad/swapflow/webapi"
	log "github.com/charmbracelet/log"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	cfg, err := config.Load(".env")
	if err != nil {
		return fmt.Errorf("failed to load application configuration: %w", err)
	}

	deps, err := initializer.InitializeDependencies(cfg)
	if err != nil {
		return fmt.Errorf("failed to initialize dependencies: %w", err)
	}
	defer deps.Controller.Close()

	if err := deps.Controller.LoadCatalog(context.Background()); err != nil {
		// The session stays up with a disabled form; the operator can
		// restart once the feed is reachable.
		deps.Logger.Error("starting with an empty catalog", "error", err)
	}

	deps.Logger.Info(
		"starting server",
		"env", cfg.Env,
		"addr", cfg.Server.Addr(),
		"debounce", cfg.Swap.DebounceInterval,
		"calc_delay", cfg.Swap.CalcDelay,
		"swap_latency", cfg.Swap.Latency,
	)

	app := webapi.NewApp(deps.Controller, deps.Ledger)
	return app.Listen(cfg.Server.Addr())
}
