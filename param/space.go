package param

import "fmt"

// Bound is one factor's closed sampling interval.
type Bound struct {
	Low  float64
	High float64
}

// Space is the ordered parameter space of the study: one name and one
// bound per factor, index order fixed at construction. A Space is
// read-only after NewSpace returns; share it freely.
type Space struct {
	names  []string
	bounds []Bound
	index  map[string]int // name -> factor position
}

// NewSpace validates and freezes a parameter space.
//
// Contracts:
//   - len(names) == len(bounds) > 0, else ErrShapeMismatch.
//   - names non-empty and unique, else ErrEmptyName / ErrDuplicateName.
//   - every bound has Low < High, else ErrBadBound.
//
// Complexity: O(n) time and space.
func NewSpace(names []string, bounds []Bound) (*Space, error) {
	if len(names) == 0 || len(names) != len(bounds) {
		return nil, fmt.Errorf("NewSpace: %d names, %d bounds: %w",
			len(names), len(bounds), ErrShapeMismatch)
	}

	s := &Space{
		names:  make([]string, len(names)),
		bounds: make([]Bound, len(bounds)),
		index:  make(map[string]int, len(names)),
	}
	for i, name := range names {
		if name == "" {
			return nil, fmt.Errorf("NewSpace: factor %d: %w", i, ErrEmptyName)
		}
		if _, dup := s.index[name]; dup {
			return nil, fmt.Errorf("NewSpace: %q: %w", name, ErrDuplicateName)
		}
		if !(bounds[i].Low < bounds[i].High) {
			return nil, fmt.Errorf("NewSpace: %q [%g, %g]: %w",
				name, bounds[i].Low, bounds[i].High, ErrBadBound)
		}
		s.names[i] = name
		s.bounds[i] = bounds[i]
		s.index[name] = i
	}

	return s, nil
}

// NumVars returns the number of factors.
func (s *Space) NumVars() int { return len(s.names) }

// Name returns the name of factor i; empty string when out of range.
func (s *Space) Name(i int) string {
	if i < 0 || i >= len(s.names) {
		return ""
	}

	return s.names[i]
}

// Names returns a copy of the factor names in index order.
func (s *Space) Names() []string {
	out := make([]string, len(s.names))
	copy(out, s.names)

	return out
}

// Bounds returns a copy of the per-factor bounds in index order.
func (s *Space) Bounds() []Bound {
	out := make([]Bound, len(s.bounds))
	copy(out, s.bounds)

	return out
}

// Index returns the position of the named factor, or ErrUnknownFactor.
func (s *Space) Index(name string) (int, error) {
	i, ok := s.index[name]
	if !ok {
		return 0, fmt.Errorf("Space.Index(%q): %w", name, ErrUnknownFactor)
	}

	return i, nil
}
