package pure_test

import (
	"errors"
	"testing"

	"github.com/on-the-ground/pure_ive_go/pure"

	"github.com/stretchr/testify/assert"
)

func TestTableizeI1O1(t *testing.T) {
	count := 0
	fn := pure.TableizeI1O1(func(i int) int {
		count++
		return i * 2
	}, 2)

	assert.Equal(t, 4, fn(2))
	assert.Equal(t, 4, fn(2)) // cached
	assert.Equal(t, 1, count)
}

func TestTableizeI1O1_Unbounded(t *testing.T) {
	count := 0
	fn := pure.TableizeI1O1(func(i int) int {
		count++
		return i + 1
	}, 0)

	for i := 0; i < 100; i++ {
		assert.Equal(t, i+1, fn(i))
	}
	for i := 0; i < 100; i++ {
		assert.Equal(t, i+1, fn(i))
	}
	assert.Equal(t, 100, count)
}

func TestTableizeI1O1_Recursive(t *testing.T) {
	calls := 0
	var fib func(int) int
	fib = pure.TableizeI1O1(func(n int) int {
		calls++
		if n <= 1 {
			return n
		}
		return fib(n-1) + fib(n-2)
	}, 0)

	assert.Equal(t, 6765, fib(20))
	assert.Equal(t, 21, calls) // one computation per n in [0, 20]
}

func TestTableizeI2O1(t *testing.T) {
	count := 0
	fn := pure.TableizeI2O1(func(a, b int) int {
		count++
		return a + b
	}, 2)

	assert.Equal(t, 5, fn(2, 3))
	assert.Equal(t, 5, fn(2, 3))
	assert.Equal(t, 1, count)

	assert.Equal(t, 5, fn(3, 2))
	assert.Equal(t, 2, count)
}

func TestTableizeI1O2(t *testing.T) {
	count := 0
	fn := pure.TableizeI1O2(func(i int) (int, string) {
		count++
		return i, "val"
	}, 2)

	a, b := fn(10)
	assert.Equal(t, 10, a)
	assert.Equal(t, "val", b)
	a2, b2 := fn(10)
	assert.Equal(t, 10, a2)
	assert.Equal(t, "val", b2)
	assert.Equal(t, 1, count)
}

func TestTableizeI1E(t *testing.T) {
	errOdd := errors.New("odd")
	count := 0
	fn := pure.TableizeI1E(func(i int) (int, error) {
		count++
		if i%2 == 1 {
			return 0, errOdd
		}
		return i / 2, nil
	}, 4)

	v, err := fn(4)
	assert.NoError(t, err)
	assert.Equal(t, 2, v)
	_, _ = fn(4)
	assert.Equal(t, 1, count)

	_, err = fn(3)
	assert.ErrorIs(t, err, errOdd)
	_, err = fn(3)
	assert.ErrorIs(t, err, errOdd)
	assert.Equal(t, 3, count)
}
