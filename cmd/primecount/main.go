package main

import (
	"context"
	"fmt"
	"os"
	"runtime"

	"github.com/florianschmidt1994/ParallelPrimalityTesting/internal/bench"
	"github.com/florianschmidt1994/ParallelPrimalityTesting/internal/config"
	"github.com/florianschmidt1994/ParallelPrimalityTesting/internal/obs"
)

func main() {
	logger := obs.NewLogger("primecount", os.Stderr)

	cfg, err := config.Parse(os.Args[1:])
	if err != nil {
		fmt.Fprintln(os.Stderr, "invalid arguments:", err)
		os.Exit(2)
	}

	logger.Info("run start",
		obs.Int64("limit", cfg.Limit),
		obs.Int("workers", cfg.Workers),
		obs.Int("strategies", len(cfg.Kinds)),
		obs.Int("gomaxprocs", runtime.GOMAXPROCS(0)),
	)

	runner := bench.NewRunner(logger, func(m bench.Measurement) {
		fmt.Println(bench.Line(m))
	})
	if _, err := runner.Run(context.Background(), cfg); err != nil {
		logger.Error(err)
		os.Exit(1)
	}
}
