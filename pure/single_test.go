package pure_test

import (
	"testing"

	"github.com/on-the-ground/pure_ive_go/pure"
	"github.com/stretchr/testify/assert"
)

func TestSingleValueCacher_IgnoresLaterArguments(t *testing.T) {
	count := 0
	c := pure.NewSingleValueCacher(func(a uint32) uint32 {
		count++
		return a
	})

	assert.Equal(t, uint32(1), c.Value(1))
	assert.Equal(t, uint32(1), c.Value(2))
	assert.Equal(t, 1, count)
}
