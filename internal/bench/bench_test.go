package bench

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/florianschmidt1994/ParallelPrimalityTesting/internal/config"
	"github.com/florianschmidt1994/ParallelPrimalityTesting/internal/obs"
	"github.com/florianschmidt1994/ParallelPrimalityTesting/internal/strategy"
)

type fakeCounter struct {
	n   int64
	err error
}

func (f fakeCounter) Count(context.Context, int64, int) (int64, error) {
	return f.n, f.err
}

func TestLine(t *testing.T) {
	got := Line(Measurement{Strategy: "fixed-range", Elapsed: 1500 * time.Microsecond, Count: 9593})
	want := "Found 9593 primes in 1500000 nanoseconds with fixed-range"
	if got != want {
		t.Fatalf("Line = %q, want %q", got, want)
	}
}

func TestRunAllStrategies(t *testing.T) {
	cfg := config.Default()
	cfg.Limit = 1000
	cfg.Kinds = []strategy.Kind{strategy.KindSingleThreaded, strategy.KindFixedRange, strategy.KindAtomicCursor, strategy.KindLockedCursor}

	var buf bytes.Buffer
	var reported []string
	r := NewRunner(obs.NewLogger("primecount", &buf), func(m Measurement) {
		reported = append(reported, m.Strategy)
	})

	got, err := r.Run(context.Background(), cfg)
	if err != nil {
		t.Fatalf("Run returned error: %v", err)
	}
	if len(got) != len(cfg.Kinds) {
		t.Fatalf("got %d measurements, want %d", len(got), len(cfg.Kinds))
	}
	for i, m := range got {
		if m.Strategy != cfg.Kinds[i].String() {
			t.Fatalf("measurement %d strategy = %q, want %q", i, m.Strategy, cfg.Kinds[i])
		}
		if m.Count != 169 {
			t.Fatalf("%s count = %d, want 169", m.Strategy, m.Count)
		}
		if reported[i] != m.Strategy {
			t.Fatalf("reported[%d] = %q, want %q", i, reported[i], m.Strategy)
		}
	}
	if !strings.Contains(buf.String(), "strategy=locked-cursor") {
		t.Fatalf("log missing last strategy: %s", buf.String())
	}
}

func TestRunStopsOnCountFailure(t *testing.T) {
	boom := errors.New("boom")
	cfg := config.Default()
	cfg.Kinds = []strategy.Kind{strategy.KindSingleThreaded, strategy.KindFixedRange, strategy.KindAtomicCursor}

	calls := 0
	r := &Runner{New: func(kind strategy.Kind, _ time.Duration) (strategy.Counter, error) {
		calls++
		if kind == strategy.KindFixedRange {
			return fakeCounter{err: boom}, nil
		}
		return fakeCounter{n: 1}, nil
	}}

	got, err := r.Run(context.Background(), cfg)
	if !errors.Is(err, boom) {
		t.Fatalf("err = %v, want boom", err)
	}
	if !obs.IsKind(err, KindCount) {
		t.Fatalf("err kind is not %q: %v", KindCount, err)
	}
	app, _ := obs.AsAppError(err)
	if app.Op != "fixed-range" {
		t.Fatalf("Op = %q, want fixed-range", app.Op)
	}
	if len(got) != 1 || calls != 2 {
		t.Fatalf("measurements=%d calls=%d, want 1 and 2", len(got), calls)
	}
}

func TestRunStopsOnConstructFailure(t *testing.T) {
	cfg := config.Default()
	cfg.Kinds = []strategy.Kind{strategy.Kind(99)}

	r := NewRunner(nil, nil)
	_, err := r.Run(context.Background(), cfg)
	if !errors.Is(err, strategy.ErrUnknownKind) {
		t.Fatalf("err = %v, want ErrUnknownKind", err)
	}
	if !obs.IsKind(err, KindConstruct) {
		t.Fatalf("err kind is not %q: %v", KindConstruct, err)
	}
	if !strings.Contains(err.Error(), "kind(99)") {
		t.Fatalf("err %q does not name the strategy", err)
	}
}

func TestRunWarnsOnUnsafeCursor(t *testing.T) {
	cfg := config.Default()
	cfg.Kinds = []strategy.Kind{strategy.KindUnsafeCursor, strategy.KindLockedCursor}
	cfg.Workers = 4

	var buf bytes.Buffer
	r := NewRunner(obs.NewLogger("primecount", &buf), nil)
	r.New = func(strategy.Kind, time.Duration) (strategy.Counter, error) {
		return fakeCounter{n: 3}, nil
	}
	if _, err := r.Run(context.Background(), cfg); err != nil {
		t.Fatalf("Run returned error: %v", err)
	}

	warns := 0
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		if strings.Contains(line, "level=WARN") {
			warns++
			if !strings.Contains(line, "strategy=unsafe-cursor") {
				t.Fatalf("warning for wrong strategy: %s", line)
			}
		}
	}
	if warns != 1 {
		t.Fatalf("warnings = %d, want 1\n%s", warns, buf.String())
	}

	buf.Reset()
	cfg.Workers = 1
	if _, err := r.Run(context.Background(), cfg); err != nil {
		t.Fatalf("Run returned error: %v", err)
	}
	if strings.Contains(buf.String(), "level=WARN") {
		t.Fatalf("unexpected warning with one worker: %s", buf.String())
	}
}

func TestMeasure(t *testing.T) {
	elapsed, n, err := Measure(func() (int64, error) {
		time.Sleep(5 * time.Millisecond)
		return 7, nil
	})
	if err != nil || n != 7 {
		t.Fatalf("Measure = %d, %v", n, err)
	}
	if elapsed < 5*time.Millisecond {
		t.Fatalf("elapsed = %s, want >= 5ms", elapsed)
	}
}
