package main

import (
	"fmt"
	"os"

	"crmpulse/internal/crm"
	"crmpulse/internal/crm/seed"
	"crmpulse/internal/events"
	"crmpulse/internal/notify"
	"crmpulse/platform/config"
	"crmpulse/platform/logger"
	"crmpulse/platform/validator"
)

// Version is set at build time.
var Version = "dev"

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "failed to load config:", err)
		os.Exit(1)
	}

	log := logger.New(cfg.Env)
	bus := events.NewInMemoryBus(log)
	val := validator.New()

	module := crm.NewModule(cfg, val, bus, log)

	notifier := notify.New(log)
	notifier.RegisterHandlers(bus)

	if cfg.IsSeedEnabled() {
		if err := seed.Load(module.Store(), log); err != nil {
			log.StoreError("seed", err)
			os.Exit(1)
		}
	}

	app := newCLIApp(module, log)
	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
