package param

import (
	"fmt"

	"github.com/katalvlaran/morris/matrix"
)

// ScaleInPlace maps every column of a [0,1] design matrix onto the
// corresponding factor bound: v ↦ low + v·(high − low).
//
// Contracts:
//   - m non-nil, else matrix.ErrNilMatrix.
//   - m.Cols() == len(bounds), else matrix.ErrDimensionMismatch.
//
// The matrix is mutated; callers wanting to keep the unit design must
// Clone first.
//
// Complexity: O(rows·cols).
func ScaleInPlace(m *matrix.Dense, bounds []Bound) error {
	if m == nil {
		return fmt.Errorf("ScaleInPlace: %w", matrix.ErrNilMatrix)
	}
	if m.Cols() != len(bounds) {
		return fmt.Errorf("ScaleInPlace: %d columns, %d bounds: %w",
			m.Cols(), len(bounds), matrix.ErrDimensionMismatch)
	}

	var (
		i   int
		row []float64
		err error
	)
	for i = 0; i < m.Rows(); i++ {
		row, err = m.Row(i)
		if err != nil {
			return err
		}
		for j, b := range bounds {
			row[j] = b.Low + row[j]*(b.High-b.Low)
		}
	}

	return nil
}
