package pure

import (
	"sync/atomic"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// memo holds the table shared by Cacher and FallibleCacher.
// Table failures are logged and degrade to a miss, never to a caller error.
// Its own bookkeeping is atomic, so a memo is as safe to share as its table.
type memo[I comparable, O any] struct {
	id     string
	table  Table[I, O]
	stored atomic.Int64
	logger *zap.Logger
}

func (m *memo[I, O]) init(table Table[I, O], opts []Option) {
	o := newOptions(opts)
	m.id = uuid.New().String()
	m.table = table
	m.logger = o.logger.With(zap.String("cacher", m.id))
}

func (m *memo[I, O]) lookup(in I) (O, bool) {
	v, ok, err := m.table.Get(in)
	if err != nil {
		m.logger.Warn("failed to read memo table, recomputing", zap.Any("input", in), zap.Error(err))
		var zero O
		return zero, false
	}
	if ok {
		m.logger.Debug("memo hit", zap.Any("input", in))
	}
	return v, ok
}

func (m *memo[I, O]) record(in I, out O) {
	if err := m.table.Set(in, out); err != nil {
		m.logger.Warn("failed to write memo table", zap.Any("input", in), zap.Error(err))
		return
	}
	m.stored.Add(1)
}

// Cacher memoizes a single-argument pure function per distinct input.
type Cacher[I comparable, O any] struct {
	memo[I, O]
	compute func(I) O
}

// NewCacher wraps compute with an empty, unbounded table.
// compute runs at most once per distinct input over the Cacher's lifetime.
func NewCacher[I comparable, O any](compute func(I) O, opts ...Option) *Cacher[I, O] {
	return NewCacherWithTable(compute, NewMapTable[I, O](), opts...)
}

// NewCacherWithTable wraps compute with a caller-supplied table.
// With a bounded table compute may run again for an evicted input.
func NewCacherWithTable[I comparable, O any](
	compute func(I) O,
	table Table[I, O],
	opts ...Option,
) *Cacher[I, O] {
	c := &Cacher[I, O]{compute: compute}
	c.init(table, opts)
	return c
}

// Value returns compute(in), invoking compute only if in has not been seen.
func (c *Cacher[I, O]) Value(in I) O {
	if v, ok := c.lookup(in); ok {
		return v
	}
	c.logger.Debug("memo miss", zap.Any("input", in))
	v := c.compute(in)
	c.record(in, v)
	return v
}

// ID identifies this cacher in log output.
func (c *Cacher[I, O]) ID() string {
	return c.id
}

// Len is the number of results this cacher has written to its table.
func (c *Cacher[I, O]) Len() int {
	return int(c.stored.Load())
}
