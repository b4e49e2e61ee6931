package pure_test

import (
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"

	"github.com/on-the-ground/pure_ive_go/pure"
)

func TestCacherProperties(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.Rng.Seed(1357)
	parameters.MinSuccessfulTests = 200

	properties := gopter.NewProperties(parameters)

	square := func(x int) int { return x*x - 3*x + 7 }

	// Property: the computation runs exactly once per distinct input
	properties.Property("computes once per distinct input", prop.ForAll(
		func(inputs []int) bool {
			calls := map[int]int{}
			c := pure.NewCacher(func(x int) int {
				calls[x]++
				return square(x)
			})
			distinct := map[int]struct{}{}
			for _, in := range inputs {
				c.Value(in)
				distinct[in] = struct{}{}
			}
			if len(calls) != len(distinct) || c.Len() != len(distinct) {
				return false
			}
			for _, n := range calls {
				if n != 1 {
					return false
				}
			}
			return true
		},
		gen.SliceOf(gen.IntRange(-20, 20)),
	))

	// Property: a hit returns exactly what the computation would return
	properties.Property("cached value equals computed value", prop.ForAll(
		func(inputs []int) bool {
			c := pure.NewCacher(square)
			for _, in := range inputs {
				if c.Value(in) != square(in) {
					return false
				}
			}
			for _, in := range inputs {
				if c.Value(in) != square(in) {
					return false
				}
			}
			return true
		},
		gen.SliceOf(gen.IntRange(-1000, 1000)),
	))

	// Property: bounded tables may recompute but never return a wrong value
	properties.Property("rotating table stays correct", prop.ForAll(
		func(size int, inputs []int) bool {
			c := pure.NewCacherWithTable(square, pure.NewRotatingTable[int, int](uint32(size)))
			for _, in := range inputs {
				if c.Value(in) != square(in) {
					return false
				}
			}
			return true
		},
		gen.IntRange(1, 8),
		gen.SliceOf(gen.IntRange(-50, 50)),
	))

	properties.TestingRun(t)
}
