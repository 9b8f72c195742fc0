// Package matrix: sentinel error set.
// All operations in this package return these sentinels (optionally
// wrapped with fmt.Errorf("…: %w", …) for context); tests and callers
// match them via errors.Is. No operation panics on user input.

package matrix

import "errors"

var (
	// ErrBadShape is returned when a requested shape is invalid (rows<=0 or cols<=0).
	ErrBadShape = errors.New("matrix: invalid shape")

	// ErrOutOfRange indicates that a row or column index is outside valid bounds.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible dimensions between operands,
	// e.g. stacking matrices with differing column counts.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNilMatrix indicates that a nil *Dense was used as receiver or argument.
	ErrNilMatrix = errors.New("matrix: nil matrix")
)
