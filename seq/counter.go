// Package seq provides a bounded, skip-aware counter and generic combinators
// over iter.Seq.
package seq

import (
	"errors"
	"iter"
)

// DefaultBound is the largest value a Counter built by NewCounter produces.
const DefaultBound uint32 = 5

var (
	// ErrAlreadyStarted is returned by SkipValue once production has begun.
	ErrAlreadyStarted = errors.New("counter already started")

	// ErrSkipAlreadySet is returned by SkipValue when a skip value is configured.
	ErrSkipAlreadySet = errors.New("skip value already set")
)

// Counter produces 1, 2, ... up to its bound, omitting an optional skip value.
// Once it stops producing it is exhausted for good.
type Counter struct {
	count     uint32
	bound     uint32
	skip      uint32
	hasSkip   bool
	started   bool
	exhausted bool
}

func NewCounter() *Counter {
	return NewCounterWithBound(DefaultBound)
}

func NewCounterWithBound(bound uint32) *Counter {
	return &Counter{bound: bound}
}

// SkipValue configures the value to omit. It can be set once, before the
// first call to Next.
func (c *Counter) SkipValue(v uint32) error {
	if c.started {
		return ErrAlreadyStarted
	}
	if c.hasSkip {
		return ErrSkipAlreadySet
	}
	c.skip = v
	c.hasSkip = true
	return nil
}

// Next advances the counter. ok is false when the counter is exhausted.
func (c *Counter) Next() (v uint32, ok bool) {
	c.started = true
	if c.exhausted || c.count >= c.bound {
		c.exhausted = true
		return 0, false
	}

	c.count++
	if c.hasSkip && c.count == c.skip {
		// skipping past the bound ends the sequence
		if c.count >= c.bound {
			c.exhausted = true
			return 0, false
		}
		c.count++
	}
	return c.count, true
}

func (c *Counter) Exhausted() bool {
	return c.exhausted
}

// All returns the remaining values as a single-use sequence.
func (c *Counter) All() iter.Seq[uint32] {
	return func(yield func(uint32) bool) {
		for {
			v, ok := c.Next()
			if !ok || !yield(v) {
				return
			}
		}
	}
}
