package seq_test

import (
	"slices"
	"testing"

	"github.com/on-the-ground/pure_ive_go/seq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCombinators_PairProductSum(t *testing.T) {
	a := seq.NewCounter()
	b := seq.NewCounter()
	require.NoError(t, b.SkipValue(1))

	products := seq.ZipWith(a.All(), b.All(), func(x, y uint32) uint32 { return x * y })
	sum := seq.Sum(seq.Filter(products, func(v uint32) bool { return v%3 == 0 }))

	assert.Equal(t, uint32(18), sum)
}

func TestZip_StopsAtShorter(t *testing.T) {
	var left, right []int
	for l, r := range seq.Zip(slices.Values([]int{1, 2, 3}), slices.Values([]int{10, 20})) {
		left = append(left, l)
		right = append(right, r)
	}
	assert.Equal(t, []int{1, 2}, left)
	assert.Equal(t, []int{10, 20}, right)
}

func TestZip_EarlyBreak(t *testing.T) {
	n := 0
	for range seq.Zip(seq.NewCounter().All(), seq.NewCounter().All()) {
		n++
		if n == 2 {
			break
		}
	}
	assert.Equal(t, 2, n)
}

func TestMapFilterTake(t *testing.T) {
	doubled := seq.Map(seq.NewCounter().All(), func(v uint32) int { return int(v) * 2 })
	assert.Equal(t, []int{2, 4, 6, 8, 10}, slices.Collect(doubled))

	odd := seq.Filter(seq.NewCounter().All(), func(v uint32) bool { return v%2 == 1 })
	assert.Equal(t, []uint32{1, 3, 5}, slices.Collect(odd))

	assert.Equal(t, []uint32{1, 2}, slices.Collect(seq.Take(seq.NewCounter().All(), 2)))
	assert.Empty(t, slices.Collect(seq.Take(seq.NewCounter().All(), 0)))
}

func TestSum(t *testing.T) {
	assert.Equal(t, uint32(15), seq.Sum(seq.NewCounter().All()))
	assert.Equal(t, 0.0, seq.Sum(slices.Values([]float64{})))
	assert.Equal(t, 1.5, seq.Sum(slices.Values([]float64{0.5, 1})))
}
