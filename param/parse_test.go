package param_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/morris/param"
)

func TestParseParams_WhitespaceAndCommas(t *testing.T) {
	in := strings.Join([]string{
		"# three factors",
		"x1 0.0 1.0",
		"x2,-1.0,1.0   # comma delimited with trailing comment",
		"",
		"x3\t0.5\t2.5",
	}, "\n")

	s, err := param.ParseParams(strings.NewReader(in))
	require.NoError(t, err)

	assert.Equal(t, 3, s.NumVars())
	assert.Equal(t, []string{"x1", "x2", "x3"}, s.Names())
	assert.Equal(t, []param.Bound{{0, 1}, {-1, 1}, {0.5, 2.5}}, s.Bounds())
}

func TestParseParams_Malformed(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want error
	}{
		{"too few fields", "x1 0.0", param.ErrBadRow},
		{"too many fields", "x1 0 1 extra", param.ErrBadRow},
		{"bad lower", "x1 low 1.0", param.ErrBadRow},
		{"bad upper", "x1 0.0 high", param.ErrBadRow},
		{"inverted bounds", "x1 1.0 0.0", param.ErrBadBound},
		{"empty file", "# only a comment\n", param.ErrShapeMismatch},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := param.ParseParams(strings.NewReader(tc.in))
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

func TestSplitRow(t *testing.T) {
	assert.Nil(t, param.SplitRow(""))
	assert.Nil(t, param.SplitRow("   # comment only"))
	assert.Equal(t, []string{"a", "b", "c"}, param.SplitRow("a, b\tc"))
	assert.Equal(t, []string{"a"}, param.SplitRow("a # trailing"))
}
