package strategy

import (
	"context"

	"github.com/florianschmidt1994/ParallelPrimalityTesting/internal/prime"
)

// SingleThreaded scans [0, limit] on the calling goroutine. workers is
// ignored. It is the baseline the other strategies are compared with.
type SingleThreaded struct{}

func (SingleThreaded) Count(ctx context.Context, limit int64, _ int) (int64, error) {
	if err := validateLimit(limit); err != nil {
		return 0, err
	}
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	return prime.CountRange(0, limit), nil
}
