package pure

import "go.uber.org/zap"

// FallibleCacher memoizes a computation that may fail.
// Only successful results are recorded; a failed input is retried on the next call.
type FallibleCacher[I comparable, O any] struct {
	memo[I, O]
	compute func(I) (O, error)
}

// NewFallibleCacher wraps compute with an empty, unbounded table.
func NewFallibleCacher[I comparable, O any](compute func(I) (O, error), opts ...Option) *FallibleCacher[I, O] {
	return NewFallibleCacherWithTable(compute, NewMapTable[I, O](), opts...)
}

// NewFallibleCacherWithTable wraps compute with a caller-supplied table.
func NewFallibleCacherWithTable[I comparable, O any](
	compute func(I) (O, error),
	table Table[I, O],
	opts ...Option,
) *FallibleCacher[I, O] {
	c := &FallibleCacher[I, O]{compute: compute}
	c.init(table, opts)
	return c
}

// Value returns the memoized output for in, or the error compute returned.
// The error is passed through unchanged.
func (c *FallibleCacher[I, O]) Value(in I) (O, error) {
	if v, ok := c.lookup(in); ok {
		return v, nil
	}
	c.logger.Debug("memo miss", zap.Any("input", in))
	v, err := c.compute(in)
	if err != nil {
		c.logger.Debug("computation failed, not memoized", zap.Any("input", in), zap.Error(err))
		var zero O
		return zero, err
	}
	c.record(in, v)
	return v, nil
}

// ID identifies this cacher in log output.
func (c *FallibleCacher[I, O]) ID() string {
	return c.id
}

// Len is the number of successful results this cacher has written to its table.
func (c *FallibleCacher[I, O]) Len() int {
	return int(c.stored.Load())
}
