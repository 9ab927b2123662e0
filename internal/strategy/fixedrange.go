package strategy

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/florianschmidt1994/ParallelPrimalityTesting/internal/prime"
	"github.com/florianschmidt1994/ParallelPrimalityTesting/internal/workpool"
)

// Span is a closed range [Lo, Hi]. It is empty when Hi < Lo.
type Span struct {
	Lo int64
	Hi int64
}

func (s Span) Len() int64 {
	if s.Hi < s.Lo {
		return 0
	}
	return s.Hi - s.Lo + 1
}

// Partition splits [0, limit] into parts contiguous spans in ascending
// order. The first (limit+1)%parts spans hold one extra value; when parts
// exceeds limit+1 the trailing spans are empty. A limit above MaxLimit
// yields nil.
func Partition(limit int64, parts int) []Span {
	if parts < 1 || limit < 0 || limit > MaxLimit {
		return nil
	}
	total := limit + 1
	base := total / int64(parts)
	rem := total % int64(parts)

	spans := make([]Span, parts)
	lo := int64(0)
	for i := range spans {
		size := base
		if int64(i) < rem {
			size++
		}
		spans[i] = Span{Lo: lo, Hi: lo + size - 1}
		lo += size
	}
	return spans
}

// FixedRange hands each worker one span from Partition and sums the
// per-span counts into a shared atomic total.
type FixedRange struct {
	Timeout time.Duration
}

func (s FixedRange) Count(ctx context.Context, limit int64, workers int) (int64, error) {
	if err := validate(limit, workers); err != nil {
		return 0, err
	}

	spans := Partition(limit, workers)
	var primes atomic.Int64
	err := workpool.Run(ctx, workers, s.Timeout, func(ctx context.Context, worker int) {
		span := spans[worker]
		for n := span.Lo; n <= span.Hi; n++ {
			if (n-span.Lo)%checkEvery == 0 && ctx.Err() != nil {
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
