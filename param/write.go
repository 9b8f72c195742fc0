package param

import (
	"bufio"
	"fmt"
	"io"

	"github.com/katalvlaran/morris/matrix"
)

// Output formatting defaults, matching the historical design-file format.
const (
	// DefaultDelimiter separates fields on one output row.
	DefaultDelimiter = " "

	// DefaultPrecision is the number of decimal digits in the mantissa.
	DefaultPrecision = 8
)

// WriteMatrix renders m as plain text: one matrix row per line, fields
// in scientific notation with the given mantissa precision, joined by
// delim. An empty delim falls back to DefaultDelimiter; a negative
// precision falls back to DefaultPrecision.
//
// Complexity: O(rows·cols) writes, buffered.
func WriteMatrix(w io.Writer, m *matrix.Dense, delim string, precision int) error {
	if m == nil {
		return fmt.Errorf("WriteMatrix: %w", matrix.ErrNilMatrix)
	}
	if delim == "" {
		delim = DefaultDelimiter
	}
	if precision < 0 {
		precision = DefaultPrecision
	}

	bw := bufio.NewWriter(w)
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
		for j, v := range row {
			if j > 0 {
				if _, err = bw.WriteString(delim); err != nil {
					return fmt.Errorf("WriteMatrix: %w", err)
				}
			}
			if _, err = fmt.Fprintf(bw, "%.*e", precision, v); err != nil {
				return fmt.Errorf("WriteMatrix: %w", err)
			}
		}
		if err = bw.WriteByte('\n'); err != nil {
			return fmt.Errorf("WriteMatrix: %w", err)
		}
	}

	return bw.Flush()
}
