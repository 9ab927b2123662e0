// Package cursor provides the shared work-claiming counters used by the
// cursor-based strategies. All variants start at zero.
package cursor

import (
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
)

var ErrUnknownKind = errors.New("unknown cursor kind")

type Cursor interface {
	Get() int64
	// GetAndIncrement returns the current value and advances it by one.
	GetAndIncrement() int64
}

type Kind string

const (
	KindUnsafe Kind = "unsafe"
	KindLocked Kind = "locked"
	KindAtomic Kind = "atomic"
)

func New(kind Kind) (Cursor, error) {
	switch kind {
	case KindUnsafe:
		return &Unsafe{}, nil
	case KindLocked:
		return &Locked{}, nil
	case KindAtomic:
		return &Atomic{}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownKind, kind)
	}
}

// Unsafe has no synchronization at all. Concurrent callers race on value:
// two of them can read the same number, and increments can be lost.
type Unsafe struct {
	value int64
}

func (c *Unsafe) Get() int64 {
	return c.value
}

func (c *Unsafe) GetAndIncrement() int64 {
	v := c.value
	c.value = v + 1
	return v
}

type Locked struct {
	mu    sync.Mutex
	value int64
}

func (c *Locked) Get() int64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.value
}

func (c *Locked) GetAndIncrement() int64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	v := c.value
	c.value++
	return v
}

type Atomic struct {
	value atomic.Int64
}

func (c *Atomic) Get() int64 {
	return c.value.Load()
}

func (c *Atomic) GetAndIncrement() int64 {
	return c.value.Add(1) - 1
}
