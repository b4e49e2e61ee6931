package pure

// SingleValueCacher remembers only the first result it computes and returns it
// for every later call, whatever the argument. Use Cacher unless that is
// exactly the behavior you need.
type SingleValueCacher[I any, O any] struct {
	compute func(I) O
	value   O
	set     bool
}

// NewSingleValueCacher wraps compute; nothing is computed until the first Value.
func NewSingleValueCacher[I any, O any](compute func(I) O) *SingleValueCacher[I, O] {
	return &SingleValueCacher[I, O]{compute: compute}
}

// Value returns compute(in) on the first call and that same result afterwards.
func (c *SingleValueCacher[I, O]) Value(in I) O {
	if c.set {
		return c.value
	}
	c.value = c.compute(in)
	c.set = true
	return c.value
}
