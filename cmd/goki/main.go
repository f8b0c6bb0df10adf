// Package main is the entry point for Goblin King.
package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"

	"github.com/samdwyer/goblinking/internal/app"
	"github.com/samdwyer/goblinking/internal/config"
	"github.com/samdwyer/goblinking/internal/rando"
	"github.com/samdwyer/goblinking/internal/registry"
	"github.com/samdwyer/goblinking/internal/telemetry"
	"github.com/samdwyer/goblinking/internal/ui"
)

func main() {
	os.Exit(run())
}

// run wires the program together and returns the process exit status.
func run() int {
	// Load .env file for local development
	if err := godotenv.Load(); err != nil {
		// Not fatal - env vars might be set directly
		log.Printf("Note: .env file not loaded: %v", err)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Printf("Invalid configuration: %v", err)
		return app.ExitBadInput
	}

	ctx := context.Background()

	shutdown, err := telemetry.Setup(ctx, telemetry.Honeycomb{
		APIKey:  cfg.HoneycombAPIKey,
		Dataset: cfg.HoneycombDataset,
	})
	switch {
	case errors.Is(err, telemetry.ErrNoAPIKey):
		log.Printf("Note: telemetry disabled: %v", err)
	case err != nil:
		log.Printf("Warning: telemetry setup failed: %v", err)
	default:
		defer func() {
			if err := shutdown(ctx); err != nil {
				log.Printf("Error shutting down telemetry: %v", err)
			}
		}()
	}

	cwd, err := os.Getwd()
	if err != nil {
		log.Printf("Failed to resolve working directory: %v", err)
		return app.ExitBadEnv
	}
	reg, err := registry.Load(registry.BaseDir(cwd, cfg.DatabaseDir))
	if err != nil {
		log.Printf("Failed to load database registry: %v", err)
		return app.ExitBadEnv
	}

	rng, seed := cfg.NewRNG()
	sampler := rando.NewSampler(rng, telemetry.Tracer("rando"))

	if cfg.Headless {
		log.Printf("Using seed: %d", seed)
		roll, err := app.RollEquipment(ctx, reg, sampler, cfg)
		if err != nil {
			log.Printf("Roll failed: %v", err)
			return app.ExitCode(err)
		}
		for _, line := range roll.Lines() {
			fmt.Println(line)
		}
		return app.ExitOK
	}

	screen, err := ui.NewScreen()
	if err != nil {
		log.Printf("Failed to initialize screen: %v", err)
		return app.ExitBadEnv
	}

	a := app.New(screen, reg, sampler, cfg)
	err = a.Run(ctx)
	// Restore the terminal before printing anything
	a.Close()
	if err != nil {
		log.Printf("ERROR: %v", err)
	}
	return app.ExitCode(err)
}
