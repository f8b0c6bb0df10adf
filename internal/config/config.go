// Package config loads Goblin King settings from the environment.
package config

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config holds program configuration options.
type Config struct {
	// DatabaseDir is the database directory. Relative paths are resolved
	// against the working directory.
	DatabaseDir string `env:"GOKI_DATABASE_DIR" envDefault:"databases"`

	// Seed for random number generation. Used for reproducible rolls.
	// A seed of 0 means a random seed will be generated.
	Seed int64 `env:"GOKI_SEED" envDefault:"0"`

	NumItems    int  `env:"GOKI_NUM_ITEMS" envDefault:"10"`    // Cross-category equipment draws
	UniqueItems int  `env:"GOKI_UNIQUE_ITEMS" envDefault:"10"` // Unique food draws
	Verbose     bool `env:"GOKI_VERBOSE" envDefault:"true"`    // Prefix equipment with its category
	Headless    bool `env:"GOKI_HEADLESS" envDefault:"false"`  // Print one roll to stdout and exit

	HoneycombAPIKey  string `env:"HONEYCOMB_GOKI_API_KEY"`
	HoneycombDataset string `env:"HONEYCOMB_GOKI_DATASET" envDefault:"goblinking"`
}

// Load parses configuration from environment variables and validates it.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate rejects settings the sampler cannot use.
func (c Config) Validate() error {
	if c.NumItems < 1 {
		return fmt.Errorf("GOKI_NUM_ITEMS must be greater than 0, got %d", c.NumItems)
	}
	if c.UniqueItems < 1 {
		return fmt.Errorf("GOKI_UNIQUE_ITEMS must be greater than 0, got %d", c.UniqueItems)
	}
	return nil
}

// NewRNG returns a random source seeded from Seed, or from the clock when
// Seed is 0. The seed actually used is returned for reproducibility.
func (c Config) NewRNG() (*rand.Rand, int64) {
	seed := c.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed)), seed
}
