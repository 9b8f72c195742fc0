package matrix

import (
	"fmt"
	"strings"
)

// Dense is a row-major matrix of float64 values.
// r is rows, c is columns, and data holds r*c elements in row-major order.
type Dense struct {
	r, c int       // number of rows and columns
	data []float64 // flat backing storage, length == r*c
}

// NewDense creates an r×c Dense matrix initialized to zeros.
//
// Contracts:
//   - rows > 0 and cols > 0, else ErrBadShape.
//
// Complexity: O(r·c) time and memory.
func NewDense(rows, cols int) (*Dense, error) {
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("NewDense(%d,%d): %w", rows, cols, ErrBadShape)
	}

	return &Dense{r: rows, c: cols, data: make([]float64, rows*cols)}, nil
}

// FromRows builds a Dense from a non-empty rectangular slice of rows.
// Every row must have the same, non-zero length; values are copied.
//
// Complexity: O(r·c).
func FromRows(rows [][]float64) (*Dense, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, fmt.Errorf("FromRows: %w", ErrBadShape)
	}
	m, err := NewDense(len(rows), len(rows[0]))
	if err != nil {
		return nil, err
	}
	for i, row := range rows {
		if len(row) != m.c {
			return nil, fmt.Errorf("FromRows: row %d has %d columns, want %d: %w",
				i, len(row), m.c, ErrDimensionMismatch)
		}
		copy(m.data[i*m.c:(i+1)*m.c], row)
	}

	return m, nil
}

// Rows returns the number of rows in the matrix.
// Complexity: O(1).
func (m *Dense) Rows() int { return m.r }

// Cols returns the number of columns in the matrix.
// Complexity: O(1).
func (m *Dense) Cols() int { return m.c }

// At retrieves the element at (row, col), or ErrOutOfRange.
// Complexity: O(1).
func (m *Dense) At(row, col int) (float64, error) {
	if row < 0 || row >= m.r || col < 0 || col >= m.c {
		return 0, fmt.Errorf("Dense.At(%d,%d): %w", row, col, ErrOutOfRange)
	}

	return m.data[row*m.c+col], nil
}

// Set assigns value v at (row, col), or returns ErrOutOfRange.
// Complexity: O(1).
func (m *Dense) Set(row, col int, v float64) error {
	if row < 0 || row >= m.r || col < 0 || col >= m.c {
		return fmt.Errorf("Dense.Set(%d,%d): %w", row, col, ErrOutOfRange)
	}
	m.data[row*m.c+col] = v

	return nil
}

// Row returns the backing slice of row i as a view, not a copy.
// Mutating the returned slice mutates the matrix; callers that need an
// immutable snapshot must copy it themselves.
//
// Complexity: O(1).
func (m *Dense) Row(i int) ([]float64, error) {
	if i < 0 || i >= m.r {
		return nil, fmt.Errorf("Dense.Row(%d): %w", i, ErrOutOfRange)
	}

	return m.data[i*m.c : (i+1)*m.c], nil
}

// SetRow copies vals into row i. len(vals) must equal Cols().
//
// Complexity: O(c).
func (m *Dense) SetRow(i int, vals []float64) error {
	if i < 0 || i >= m.r {
		return fmt.Errorf("Dense.SetRow(%d): %w", i, ErrOutOfRange)
	}
	if len(vals) != m.c {
		return fmt.Errorf("Dense.SetRow(%d): got %d values, want %d: %w",
			i, len(vals), m.c, ErrDimensionMismatch)
	}
	copy(m.data[i*m.c:(i+1)*m.c], vals)

	return nil
}

// Clone returns a deep copy of the matrix.
// Complexity: O(r·c).
func (m *Dense) Clone() *Dense {
	cp := make([]float64, len(m.data))
	copy(cp, m.data)

	return &Dense{r: m.r, c: m.c, data: cp}
}

// String implements fmt.Stringer for debugging.
// Complexity: O(r·c).
func (m *Dense) String() string {
	var b strings.Builder
	var i, j int
	for i = 0; i < m.r; i++ {
		b.WriteByte('[')
		for j = 0; j < m.c; j++ {
			if j > 0 {
				b.WriteString(", ")
			}
			fmt.Fprintf(&b, "%g", m.data[i*m.c+j])
		}
		b.WriteString("]\n")
	}

	return b.String()
}
