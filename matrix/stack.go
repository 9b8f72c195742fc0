package matrix

import "fmt"

// VStack concatenates the given matrices vertically, in argument order,
// into one new matrix. All blocks must share the same column count.
//
// Contracts:
//   - at least one block; every block non-nil, else ErrNilMatrix.
//   - equal column counts, else ErrDimensionMismatch.
//
// Complexity: O(total rows · cols) time and memory.
func VStack(blocks ...*Dense) (*Dense, error) {
	if len(blocks) == 0 {
		return nil, fmt.Errorf("VStack: no blocks: %w", ErrBadShape)
	}

	var (
		rows int // accumulated row count across blocks
		cols int // shared column count, fixed by the first block
	)
	for i, b := range blocks {
		if b == nil {
			return nil, fmt.Errorf("VStack: block %d: %w", i, ErrNilMatrix)
		}
		if i == 0 {
			cols = b.c
		} else if b.c != cols {
			return nil, fmt.Errorf("VStack: block %d has %d columns, want %d: %w",
				i, b.c, cols, ErrDimensionMismatch)
		}
		rows += b.r
	}

	out, err := NewDense(rows, cols)
	if err != nil {
		return nil, err
	}
	var off int // write offset into the flat backing slice
	for _, b := range blocks {
		copy(out.data[off:off+len(b.data)], b.data)
		off += len(b.data)
	}

	return out, nil
}
