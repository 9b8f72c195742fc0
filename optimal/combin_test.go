package optimal

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// The generator is package-private; these tests exercise it directly
// since lexicographic order is part of the optimizer's tie-break
// contract.

func TestCombinations_Lexicographic(t *testing.T) {
	want := [][]int{
		{0, 1, 2}, {0, 1, 3}, {0, 1, 4},
		{0, 2, 3}, {0, 2, 4}, {0, 3, 4},
		{1, 2, 3}, {1, 2, 4}, {1, 3, 4},
		{2, 3, 4},
	}

	gen := newCombinations(5, 3)
	var got [][]int
	for gen.next() {
		idx := gen.indices()
		cp := make([]int, len(idx)) // indices() is a view, copy per step
		copy(cp, idx)
		got = append(got, cp)
	}

	assert.Equal(t, want, got, "C(5,3) must enumerate in lexicographic order")
	assert.False(t, gen.next(), "exhausted generator must stay exhausted")
}

func TestCombinations_FullAndSingle(t *testing.T) {
	// k == n: exactly one combination.
	gen := newCombinations(4, 4)
	require.True(t, gen.next())
	assert.Equal(t, []int{0, 1, 2, 3}, gen.indices())
	assert.False(t, gen.next())

	// k == 1: n singletons.
	gen = newCombinations(3, 1)
	var got []int
	for gen.next() {
		got = append(got, gen.indices()[0])
	}
	assert.Equal(t, []int{0, 1, 2}, got)
}

func TestCombinations_Count(t *testing.T) {
	// C(10,4) = 210, the canonical pool/subset pairing for the optimizer.
	gen := newCombinations(10, 4)
	n := 0
	for gen.next() {
		n++
	}
	assert.Equal(t, 210, n)
}
