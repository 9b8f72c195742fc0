package param_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/morris/param"
)

func TestNewSpace_Valid(t *testing.T) {
	s, err := param.NewSpace(
		[]string{"x1", "x2", "x3"},
		[]param.Bound{{0, 1}, {-5, 5}, {0.1, 0.9}},
	)
	require.NoError(t, err)

	assert.Equal(t, 3, s.NumVars())
	assert.Equal(t, []string{"x1", "x2", "x3"}, s.Names())
	assert.Equal(t, "x2", s.Name(1))
	assert.Equal(t, "", s.Name(7), "out-of-range name lookup yields empty string")

	i, err := s.Index("x3")
	require.NoError(t, err)
	assert.Equal(t, 2, i)

	_, err = s.Index("nope")
	assert.ErrorIs(t, err, param.ErrUnknownFactor)
}

func TestNewSpace_Invalid(t *testing.T) {
	tests := []struct {
		name   string
		names  []string
		bounds []param.Bound
		want   error
	}{
		{"empty", nil, nil, param.ErrShapeMismatch},
		{"length mismatch", []string{"a", "b"}, []param.Bound{{0, 1}}, param.ErrShapeMismatch},
		{"empty name", []string{""}, []param.Bound{{0, 1}}, param.ErrEmptyName},
		{"duplicate name", []string{"a", "a"}, []param.Bound{{0, 1}, {0, 1}}, param.ErrDuplicateName},
		{"inverted bound", []string{"a"}, []param.Bound{{1, 0}}, param.ErrBadBound},
		{"degenerate bound", []string{"a"}, []param.Bound{{2, 2}}, param.ErrBadBound},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := param.NewSpace(tc.names, tc.bounds)
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

// TestSpace_CopySemantics ensures accessor slices do not alias internals.
func TestSpace_CopySemantics(t *testing.T) {
	s, err := param.NewSpace([]string{"a", "b"}, []param.Bound{{0, 1}, {0, 2}})
	require.NoError(t, err)

	names := s.Names()
	names[0] = "mutated"
	assert.Equal(t, "a", s.Name(0))

	bounds := s.Bounds()
	bounds[1].High = 99
	assert.Equal(t, 2.0, s.Bounds()[1].High)
}
