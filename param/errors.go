package param

import "errors"

var (
	// ErrShapeMismatch indicates names/bounds of differing length or an empty space.
	ErrShapeMismatch = errors.New("param: names and bounds must be non-empty and of equal length")

	// ErrEmptyName indicates a factor with an empty name.
	ErrEmptyName = errors.New("param: factor name must be non-empty")

	// ErrDuplicateName indicates two factors sharing one name.
	ErrDuplicateName = errors.New("param: duplicate factor name")

	// ErrBadBound indicates a bound with low >= high.
	ErrBadBound = errors.New("param: lower bound must be strictly below upper bound")

	// ErrBadRow indicates a malformed parameter-file row.
	ErrBadRow = errors.New("param: malformed parameter row, want: name lower upper")

	// ErrUnknownFactor indicates a lookup of a name absent from the space.
	ErrUnknownFactor = errors.New("param: unknown factor name")
)
