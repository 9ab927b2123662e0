// Package strategy implements the five ways of counting primes in a range
// that the benchmark compares. Every strategy creates its shared state fresh
// on each call; nothing survives between calls.
package strategy

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"
	"time"
)

var (
	ErrInvalidLimit   = errors.New("limit out of range")
	ErrInvalidWorkers = errors.New("workers must be positive")
	ErrUnknownKind    = errors.New("unknown strategy")
)

// MaxLimit is the largest accepted limit; [0, limit] must have a countable
// size in an int64.
const MaxLimit = math.MaxInt64 - 1

// Workers poll for cancellation once per checkEvery numbers.
const checkEvery = 1024

type Counter interface {
	Count(ctx context.Context, limit int64, workers int) (int64, error)
}

type Kind int

const (
	KindSingleThreaded Kind = iota
	KindFixedRange
	KindAtomicCursor
	KindUnsafeCursor
	KindLockedCursor
)

var kindNames = map[Kind]string{
	KindSingleThreaded: "single-threaded",
	KindFixedRange:     "fixed-range",
	KindAtomicCursor:   "atomic-cursor",
	KindUnsafeCursor:   "unsafe-cursor",
	KindLockedCursor:   "locked-cursor",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// Kinds lists every strategy in benchmark order.
func Kinds() []Kind {
	return []Kind{
		KindSingleThreaded,
		KindFixedRange,
		KindAtomicCursor,
		KindUnsafeCursor,
		KindLockedCursor,
	}
}

func ParseKind(name string) (Kind, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for k, n := range kindNames {
		if n == name {
			return k, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownKind, name)
}

// New builds the counter for kind. timeout bounds the wait for workers;
// zero means the pool default.
func New(kind Kind, timeout time.Duration) (Counter, error) {
	switch kind {
	case KindSingleThreaded:
		return SingleThreaded{}, nil
	case KindFixedRange:
		return FixedRange{Timeout: timeout}, nil
	case KindAtomicCursor:
		return AtomicCursor{Timeout: timeout}, nil
	case KindUnsafeCursor:
		return UnsafeCursor{Timeout: timeout}, nil
	case KindLockedCursor:
		return LockedCursor{Timeout: timeout}, nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownKind, kind)
	}
}

func validateLimit(limit int64) error {
	if limit < 0 || limit > MaxLimit {
		return fmt.Errorf("%w: got %d, want [0, %d]", ErrInvalidLimit, limit, int64(MaxLimit))
	}
	return nil
}

func validate(limit int64, workers int) error {
	if err := validateLimit(limit); err != nil {
		return err
	}
	if workers < 1 {
		return fmt.Errorf("%w: got %d", ErrInvalidWorkers, workers)
	}
	return nil
}
