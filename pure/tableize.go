package pure

// TableizeI1O1 returns a memoized version of pureFn.
// maxTableSize bounds the table with a RotatingTable; 0 keeps every result.
func TableizeI1O1[I1 comparable, O1 any](
	pureFn func(I1) O1,
	maxTableSize uint32,
	opts ...Option,
) func(I1) O1 {
	return NewCacherWithTable(pureFn, newTable[I1, O1](maxTableSize), opts...).Value
}

type args2[I1, I2 comparable] struct {
	i1 I1
	i2 I2
}

func TableizeI2O1[I1, I2 comparable, O1 any](
	pureFn func(I1, I2) O1,
	maxTableSize uint32,
	opts ...Option,
) func(I1, I2) O1 {
	tableized := NewCacherWithTable(
		func(args args2[I1, I2]) O1 {
			return pureFn(args.i1, args.i2)
		},
		newTable[args2[I1, I2], O1](maxTableSize),
		opts...,
	)
	return func(i1 I1, i2 I2) O1 {
		return tableized.Value(args2[I1, I2]{i1: i1, i2: i2})
	}
}

type result[O1 any, O2 any] struct {
	O1 O1
	O2 O2
}

func TableizeI1O2[I1 comparable, O1, O2 any](
	pureFn func(I1) (O1, O2),
	maxTableSize uint32,
	opts ...Option,
) func(I1) (O1, O2) {
	tableized := NewCacherWithTable(
		func(i1 I1) result[O1, O2] {
			v1, v2 := pureFn(i1)
			return result[O1, O2]{O1: v1, O2: v2}
		},
		newTable[I1, result[O1, O2]](maxTableSize),
		opts...,
	)
	return func(i1 I1) (O1, O2) {
		res := tableized.Value(i1)
		return res.O1, res.O2
	}
}

// TableizeI1E memoizes a fallible function. Errors are returned as-is and
// never stored.
func TableizeI1E[I1 comparable, O1 any](
	fn func(I1) (O1, error),
	maxTableSize uint32,
	opts ...Option,
) func(I1) (O1, error) {
	return NewFallibleCacherWithTable(fn, newTable[I1, O1](maxTableSize), opts...).Value
}

func newTable[K comparable, V any](maxTableSize uint32) Table[K, V] {
	if maxTableSize == 0 {
		return NewMapTable[K, V]()
	}
	return NewRotatingTable[K, V](maxTableSize)
}
