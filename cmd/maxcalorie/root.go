package main

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/katalvlaran/pantry/fooddb"
	"github.com/katalvlaran/pantry/knapsack"
	"github.com/katalvlaran/pantry/report"
)

var errNoCatalog = errors.New("no catalog: set --db or MAXCAL_DB")

// app carries what every subcommand needs.
type app struct {
	cfg    *Config
	logger *zap.Logger
}

// newApp binds cfg to an optional logger. A nil logger is replaced by a zap
// production logger before any subcommand runs.
func newApp(cfg *Config, logger ...*zap.Logger) *app {
	a := &app{cfg: cfg}
	if len(logger) > 0 {
		a.logger = logger[0]
	}

	return a
}

// newRootCmd builds the command tree for cfg.
func newRootCmd(cfg *Config, logger ...*zap.Logger) *cobra.Command {
	return newApp(cfg, logger...).rootCmd()
}

// execute runs root and flushes the logger on success and failure alike.
func (a *app) execute(ctx context.Context, root *cobra.Command) error {
	err := root.ExecuteContext(ctx)
	if a.logger != nil {
		_ = a.logger.Sync()
	}

	return err
}

func (a *app) rootCmd() *cobra.Command {
	cfg := a.cfg
	root := &cobra.Command{
		Use:           "maxcalorie",
		Short:         "Pick the highest-calorie foods that fit a weight limit",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if a.logger != nil {
				return nil
			}
			zcfg := zap.NewProductionConfig()
			if a.cfg.Verbose {
				zcfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
			}
			l, err := zcfg.Build()
			if err != nil {
				return fmt.Errorf("failed to initialize logger: %w", err)
			}
			a.logger = l

			return nil
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&cfg.DB, "db", cfg.DB, "catalog file (^-delimited text, or .yaml)")
	pf.Float64Var(&cfg.Capacity, "capacity", cfg.Capacity, "maximum total weight in ounces")
	pf.StringVar(&cfg.Rounding, "rounding", cfg.Rounding, "dynamic weight rounding: truncate|ceil")
	pf.StringVarP(&cfg.Format, "format", "o", cfg.Format, "output format: text|yaml|json")
	pf.IntVar(&cfg.ExhaustiveLimit, "exhaustive-limit", cfg.ExhaustiveLimit, "largest catalog exhaustive search accepts")
	pf.IntVar(&cfg.MaxTableCells, "max-table-cells", cfg.MaxTableCells, "largest dynamic table in cells")
	pf.Float64Var(&cfg.MinCalories, "min-calories", cfg.MinCalories, "drop items below this many calories")
	pf.Float64Var(&cfg.MaxCalories, "max-calories", cfg.MaxCalories, "drop items above this many calories (0: no bound)")
	pf.IntVar(&cfg.Limit, "limit", cfg.Limit, "keep only the first N matching items (0: all)")
	pf.BoolVarP(&cfg.Verbose, "verbose", "v", cfg.Verbose, "debug logging")

	root.AddCommand(a.solveCmd(), a.compareCmd())

	return root
}

// catalog is a loaded, optionally filtered, catalog plus the mapping back to
// the source indices.
type catalog struct {
	source   *knapsack.Catalog
	working  *knapsack.Catalog
	filtered []int // nil when working == source
}

// load reads and filters the configured catalog.
func (a *app) load() (*catalog, error) {
	if a.cfg.DB == "" {
		return nil, errNoCatalog
	}

	src, err := fooddb.LoadFile(a.cfg.DB, fooddb.WithOnSkip(func(line int, err error) {
		a.logger.Warn("skipping catalog row", zap.String("db", a.cfg.DB), zap.Int("line", line), zap.Error(err))
	}))
	if err != nil {
		return nil, err
	}
	a.logger.Debug("catalog loaded", zap.String("db", a.cfg.DB), zap.Int("items", src.Len()))

	cat := &catalog{source: src, working: src}
	if !a.cfg.filtering() {
		return cat, nil
	}

	lo, hi := a.cfg.calorieBounds()
	cat.working, cat.filtered, err = knapsack.Filter(src, lo, hi, a.cfg.Limit)
	if err != nil {
		return nil, err
	}
	a.logger.Debug("catalog filtered",
		zap.Float64("min_calories", lo),
		zap.Float64("max_calories", hi),
		zap.Int("limit", a.cfg.Limit),
		zap.Int("items", cat.working.Len()))

	return cat, nil
}

// run solves the working catalog and reports against the source catalog.
func (a *app) run(cat *catalog, opts knapsack.Options) (report.Report, error) {
	algo, err := knapsack.Pick(cat.working, a.cfg.Capacity, opts)
	if err != nil {
		return report.Report{}, err
	}
	if a.cfg.Capacity == 0 {
		a.logger.Warn("capacity is zero, nothing can be selected",
			zap.String("hint", "set --capacity or MAXCAL_CAPACITY"),
			zap.Int("items", cat.working.Len()))
	}

	start := time.Now()
	sol, err := knapsack.Solve(cat.working, a.cfg.Capacity, opts)
	elapsed := time.Since(start)
	if err != nil {
		return report.Report{}, fmt.Errorf("%s: %w", algo, err)
	}
	if cat.filtered != nil {
		if sol, err = knapsack.Remap(sol, cat.filtered); err != nil {
			return report.Report{}, err
		}
	}

	a.logger.Info("solved",
		zap.Stringer("algorithm", algo),
		zap.Int("items", cat.working.Len()),
		zap.Float64("capacity", a.cfg.Capacity),
		zap.Int("selected", sol.Len()),
		zap.Float64("calories", sol.Calories),
		zap.Float64("weight", sol.Weight),
		zap.Duration("elapsed", elapsed))

	rep, err := report.Summarize(cat.source, sol, a.cfg.Capacity, algo)
	if err != nil {
		return report.Report{}, err
	}
	rep.Elapsed = elapsed

	return rep, nil
}
