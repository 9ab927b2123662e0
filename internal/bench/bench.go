// Package bench times each counting strategy and renders the report.
package bench

import (
	"context"
	"fmt"
	"time"

	"github.com/florianschmidt1994/ParallelPrimalityTesting/internal/config"
	"github.com/florianschmidt1994/ParallelPrimalityTesting/internal/obs"
	"github.com/florianschmidt1994/ParallelPrimalityTesting/internal/strategy"
)

const (
	KindConstruct = "construct"
	KindCount     = "count"
)

type Measurement struct {
	Strategy string
	Elapsed  time.Duration
	Count    int64
}

// Line renders m the way the benchmark prints it.
func Line(m Measurement) string {
	return fmt.Sprintf("Found %d primes in %d nanoseconds with %s", m.Count, m.Elapsed.Nanoseconds(), m.Strategy)
}

// Measure times fn on the wall clock.
func Measure(fn func() (int64, error)) (time.Duration, int64, error) {
	start := time.Now()
	n, err := fn()
	return time.Since(start), n, err
}

// Factory builds a counter for a kind. strategy.New is the production one.
type Factory func(kind strategy.Kind, timeout time.Duration) (strategy.Counter, error)

type Runner struct {
	New    Factory
	Logger *obs.Logger
	// Report, if set, receives each measurement as soon as it is taken.
	Report func(Measurement)
}

func NewRunner(logger *obs.Logger, report func(Measurement)) *Runner {
	return &Runner{New: strategy.New, Logger: logger, Report: report}
}

// Run executes cfg.Kinds one after another. The first failure stops the run
// and is returned as an obs.AppError naming the strategy.
func (r *Runner) Run(ctx context.Context, cfg config.Config) ([]Measurement, error) {
	trace := obs.TraceID()
	out := make([]Measurement, 0, len(cfg.Kinds))

	for _, kind := range cfg.Kinds {
		name := kind.String()
		counter, err := r.New(kind, cfg.Timeout)
		if err != nil {
			return out, obs.Wrap(name, KindConstruct, trace, err)
		}

		elapsed, n, err := Measure(func() (int64, error) {
			return counter.Count(ctx, cfg.Limit, cfg.Workers)
		})
		if err != nil {
			return out, obs.Wrap(name, KindCount, trace, err)
		}

		m := Measurement{Strategy: name, Elapsed: elapsed, Count: n}
		out = append(out, m)
		if r.Logger != nil && kind == strategy.KindUnsafeCursor && cfg.Workers > 1 {
			r.Logger.Warn("unsynchronized cursor, count may vary between runs",
				obs.Str("trace", trace),
				obs.Str("strategy", name),
				obs.Int("workers", cfg.Workers),
			)
		}
		if r.Logger != nil {
			r.Logger.Info("strategy done",
				obs.Str("trace", trace),
				obs.Str("strategy", name),
				obs.Int64("count", n),
				obs.Duration("cost", elapsed),
			)
		}
		if r.Report != nil {
			r.Report(m)
		}
	}
	return out, nil
}
