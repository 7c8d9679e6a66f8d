package main

import (
	"context"
	"fmt"
	"math"

	"github.com/sethvargo/go-envconfig"

	"github.com/katalvlaran/pantry/knapsack"
)

// Config holds the CLI settings. Environment variables provide defaults;
// command-line flags override them.
type Config struct {
	DB              string  `env:"MAXCAL_DB"`
	Capacity        float64 `env:"MAXCAL_CAPACITY,default=0"`
	Algo            string  `env:"MAXCAL_ALGO,default=auto"`
	Rounding        string  `env:"MAXCAL_ROUNDING,default=truncate"`
	Format          string  `env:"MAXCAL_FORMAT,default=text"`
	ExhaustiveLimit int     `env:"MAXCAL_EXHAUSTIVE_LIMIT,default=24"`
	MaxTableCells   int     `env:"MAXCAL_MAX_TABLE_CELLS,default=16777216"`
	MinCalories     float64 `env:"MAXCAL_MIN_CALORIES,default=0"`
	MaxCalories     float64 `env:"MAXCAL_MAX_CALORIES,default=0"`
	Limit           int     `env:"MAXCAL_LIMIT,default=0"`
	Verbose         bool    `env:"MAXCAL_VERBOSE,default=false"`
}

// loadConfig fills a Config from l.
func loadConfig(ctx context.Context, l envconfig.Lookuper) (*Config, error) {
	var cfg Config
	if err := envconfig.ProcessWith(ctx, &envconfig.Config{Target: &cfg, Lookuper: l}); err != nil {
		return nil, fmt.Errorf("failed to process config: %w", err)
	}

	return &cfg, nil
}

// options translates the solver-related settings.
func (c *Config) options() (knapsack.Options, error) {
	opts := knapsack.DefaultOptions()

	algo, err := knapsack.ParseAlgorithm(c.Algo)
	if err != nil {
		return opts, err
	}
	rounding, err := knapsack.ParseRounding(c.Rounding)
	if err != nil {
		return opts, err
	}
	opts.Algo = algo
	opts.Rounding = rounding
	opts.ExhaustiveLimit = c.ExhaustiveLimit
	opts.MaxTableCells = c.MaxTableCells

	return opts, nil
}

// filtering reports whether any calorie or size filter is configured.
func (c *Config) filtering() bool {
	return c.MinCalories > 0 || c.MaxCalories > 0 || c.Limit > 0
}

// calorieBounds returns the Filter range; MaxCalories ≤ 0 means unbounded.
func (c *Config) calorieBounds() (float64, float64) {
	hi := c.MaxCalories
	if hi <= 0 {
		hi = math.Inf(1)
	}

	return c.MinCalories, hi
}
