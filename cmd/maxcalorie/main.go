// Command maxcalorie picks the highest-calorie set of foods that fits a
// weight limit.
//
//	maxcalorie solve   --db foods.txt --capacity 100
//	maxcalorie compare --db foods.txt --capacity 100 --limit 20
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/sethvargo/go-envconfig"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := loadConfig(ctx, envconfig.OsLookuper())
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	a := newApp(cfg)
	if err := a.execute(ctx, a.rootCmd()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
