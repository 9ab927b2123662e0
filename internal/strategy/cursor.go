package strategy

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/florianschmidt1994/ParallelPrimalityTesting/internal/cursor"
	"github.com/florianschmidt1994/ParallelPrimalityTesting/internal/prime"
	"github.com/florianschmidt1994/ParallelPrimalityTesting/internal/workpool"
)

// AtomicCursor lets workers claim numbers from a sync/atomic counter.
type AtomicCursor struct {
	Timeout time.Duration
}

func (s AtomicCursor) Count(ctx context.Context, limit int64, workers int) (int64, error) {
	return countWithCursor(ctx, cursor.KindAtomic, limit, workers, s.Timeout)
}

// UnsafeCursor claims numbers from an unsynchronized counter. Its result is
// not deterministic once workers > 1: numbers can be scanned twice or
// skipped.
type UnsafeCursor struct {
	Timeout time.Duration
}

func (s UnsafeCursor) Count(ctx context.Context, limit int64, workers int) (int64, error) {
	return countWithCursor(ctx, cursor.KindUnsafe, limit, workers, s.Timeout)
}

// LockedCursor claims numbers from a mutex-guarded counter.
type LockedCursor struct {
	Timeout time.Duration
}

func (s LockedCursor) Count(ctx context.Context, limit int64, workers int) (int64, error) {
	return countWithCursor(ctx, cursor.KindLocked, limit, workers, s.Timeout)
}

// countWithCursor scans [0, limit): a claimed value equal to limit stops the
// worker without being tested.
func countWithCursor(ctx context.Context, kind cursor.Kind, limit int64, workers int, timeout time.Duration) (int64, error) {
	if err := validate(limit, workers); err != nil {
		return 0, err
	}
	c, err := cursor.New(kind)
	if err != nil {
		return 0, err
	}

	var primes atomic.Int64
	err = workpool.Run(ctx, workers, timeout, func(ctx context.Context, _ int) {
		claims := 0
		for n := c.GetAndIncrement(); n < limit; n = c.GetAndIncrement() {
			claims++
			if claims%checkEvery == 0 && ctx.Err() != nil {
				return
			}
			if prime.IsPrime(n) {
				primes.Add(1)
			}
		}
	})
	if err != nil {
		return 0, err
	}
	return primes.Load(), nil
}
