package optimal

// combinations enumerates the k-subsets of {0..n-1} in lexicographic
// order as an explicit iterative generator: a lazy, finite sequence of
// index sets with no recursion, so large pools cannot blow the call
// stack.
//
// Usage:
//
//	c := newCombinations(n, k)
//	for c.next() {
//	    idx := c.indices() // valid until the following next()
//	}
type combinations struct {
	n, k    int
	idx     []int
	started bool
	done    bool
}

// newCombinations prepares a generator over k-subsets of {0..n-1}.
// Callers must ensure 0 < k <= n; Select guarantees this.
func newCombinations(n, k int) *combinations {
	return &combinations{n: n, k: k, idx: make([]int, k)}
}

// next advances to the following combination, returning false once the
// sequence is exhausted. The first call positions the generator at
// {0, 1, …, k-1}.
//
// Complexity: amortized O(1) per combination, O(k) worst case.
func (c *combinations) next() bool {
	if c.done {
		return false
	}
	if !c.started {
		for i := range c.idx {
			c.idx[i] = i
		}
		c.started = true

		return true
	}

	// Find the rightmost index that can still move right.
	i := c.k - 1
	for i >= 0 && c.idx[i] == c.n-c.k+i {
		i--
	}
	if i < 0 {
		c.done = true

		return false
	}
	c.idx[i]++
	for j := i + 1; j < c.k; j++ {
		c.idx[j] = c.idx[j-1] + 1
	}

	return true
}

// indices exposes the current combination as a view; it is overwritten
// by the following next() call. Callers needing to keep it must copy.
func (c *combinations) indices() []int { return c.idx }
