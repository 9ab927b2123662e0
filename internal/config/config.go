package config

import (
	"errors"
	"flag"
	"fmt"
	"strings"
	"time"

	"github.com/florianschmidt1994/ParallelPrimalityTesting/internal/strategy"
	"github.com/florianschmidt1994/ParallelPrimalityTesting/internal/workpool"
)

var (
	ErrInvalidTimeout = errors.New("timeout must be positive")
	ErrNoStrategy     = errors.New("no strategy selected")
)

type Config struct {
	Limit   int64
	Workers int
	Timeout time.Duration
	Kinds   []strategy.Kind
}

func Default() Config {
	return Config{
		Limit:   100_000,
		Workers: 10,
		Timeout: workpool.DefaultTimeout,
		Kinds:   strategy.Kinds(),
	}
}

// Parse reads flags on top of Default. No arguments yields Default.
func Parse(args []string) (Config, error) {
	cfg := Default()

	fs := flag.NewFlagSet("primecount", flag.ContinueOnError)
	fs.Int64Var(&cfg.Limit, "limit", cfg.Limit, "upper bound of the scanned range")
	fs.IntVar(&cfg.Workers, "workers", cfg.Workers, "number of worker goroutines")
	fs.DurationVar(&cfg.Timeout, "timeout", cfg.Timeout, "max wait for workers of one strategy")
	only := fs.String("only", "", "comma separated strategies to run (default all)")
	fs.SetOutput(new(strings.Builder))

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}
	if fs.NArg() > 0 {
		return Config{}, fmt.Errorf("unexpected arguments: %v", fs.Args())
	}

	if v := strings.TrimSpace(*only); v != "" {
		cfg.Kinds = nil
		for _, name := range strings.Split(v, ",") {
			kind, err := strategy.ParseKind(name)
			if err != nil {
				return Config{}, err
			}
			cfg.Kinds = append(cfg.Kinds, kind)
		}
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	if c.Limit < 0 || c.Limit > strategy.MaxLimit {
		return fmt.Errorf("%w: got %d", strategy.ErrInvalidLimit, c.Limit)
	}
	if c.Workers <= 0 {
		return fmt.Errorf("%w: got %d", strategy.ErrInvalidWorkers, c.Workers)
	}
	if c.Timeout <= 0 {
		return fmt.Errorf("%w: got %s", ErrInvalidTimeout, c.Timeout)
	}
	if len(c.Kinds) == 0 {
		return ErrNoStrategy
	}
	return nil
}
