// Package workpool runs a fixed number of goroutines for the duration of one
// call and joins them before returning.
package workpool

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"
)

var (
	ErrInvalidWorkers = errors.New("workers must be positive")
	ErrTimeout        = errors.New("timed out waiting for workers")
	ErrPanic          = errors.New("worker panicked")
)

// DefaultTimeout bounds the join. It is far above any realistic run.
const DefaultTimeout = time.Hour

// Task is run once per worker; worker ids are 0..workers-1. It must return
// soon after ctx is done.
type Task func(ctx context.Context, worker int)

// Run starts workers goroutines running task and blocks until all of them
// return. A timeout <= 0 means DefaultTimeout. When the timeout elapses or
// the parent ctx is done, the task context is canceled; Run still waits for
// every worker, then returns an error wrapping ErrTimeout (or the parent's
// cancellation cause). Panics in a task are recovered and reported
// as ErrPanic.
func Run(parent context.Context, workers int, timeout time.Duration, task Task) error {
	if workers < 1 {
		return fmt.Errorf("%w: got %d", ErrInvalidWorkers, workers)
	}
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	ctx, cancel := context.WithTimeout(parent, timeout)
	defer cancel()

	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		panicked error
	)
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		w := w
		go func() {
			defer wg.Done()
			defer func() {
				if r := recover(); r != nil {
					mu.Lock()
					if panicked == nil {
						panicked = fmt.Errorf("%w: worker=%d: %v", ErrPanic, w, r)
					}
					mu.Unlock()
				}
			}()
			task(ctx, w)
		}()
	}

	wg.Wait()
	// Tasks cut short by cancellation leave partial results behind.
	if ctx.Err() != nil {
		return stopCause(parent, timeout)
	}

	mu.Lock()
	defer mu.Unlock()
	return panicked
}

func stopCause(parent context.Context, timeout time.Duration) error {
	switch err := parent.Err(); {
	case err == nil:
		return fmt.Errorf("%w after %s", ErrTimeout, timeout)
	case errors.Is(err, context.DeadlineExceeded):
		return fmt.Errorf("%w: %w", ErrTimeout, err)
	default:
		return err
	}
}
