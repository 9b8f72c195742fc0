// Package trajectory_test verifies the OAT construction invariants:
// range, one-column steps of magnitude Δ, single perturbation per
// dimension, determinism, and precondition sentinels.
package trajectory_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/morris/matrix"
	"github.com/katalvlaran/morris/trajectory"
)

const tol = 1e-12

// checkInvariants asserts the geometric trajectory invariants for t.
func checkInvariants(t *testing.T, tr *matrix.Dense, k int, delta float64) {
	t.Helper()

	require.Equal(t, k+1, tr.Rows())
	require.Equal(t, k, tr.Cols())

	perturbed := make([]int, k) // per-column perturbation count
	for i := 0; i < tr.Rows(); i++ {
		row, err := tr.Row(i)
		require.NoError(t, err)
		for _, v := range row {
			assert.GreaterOrEqual(t, v, -tol, "entry below 0")
			assert.LessOrEqual(t, v, 1+tol, "entry above 1")
		}
		if i == 0 {
			continue
		}
		prev, err := tr.Row(i - 1)
		require.NoError(t, err)

		changed := -1
		for j := 0; j < k; j++ {
			if math.Abs(row[j]-prev[j]) > tol {
				require.Equal(t, -1, changed, "row %d: more than one column changed", i)
				changed = j
				assert.InDelta(t, delta, math.Abs(row[j]-prev[j]), tol,
					"row %d col %d: step magnitude must be Δ", i, j)
			}
		}
		require.NotEqual(t, -1, changed, "row %d: no column changed", i)
		perturbed[changed]++
	}
	for j, n := range perturbed {
		assert.Equal(t, 1, n, "column %d must be perturbed exactly once", j)
	}
}

func TestBuild_Invariants(t *testing.T) {
	rng := trajectory.NewRand(42)
	opts := trajectory.DefaultOptions()

	for _, k := range []int{1, 2, 3, 7, 20} {
		tr, err := trajectory.Build(k, opts, rng)
		require.NoError(t, err)
		checkInvariants(t, tr, k, opts.Delta())
	}
}

func TestBuild_InvariantsAcrossGrids(t *testing.T) {
	rng := trajectory.NewRand(7)
	for _, o := range []trajectory.Options{
		{NumLevels: 2, GridJump: 1},
		{NumLevels: 4, GridJump: 1},
		{NumLevels: 4, GridJump: 3},
		{NumLevels: 8, GridJump: 4},
		{NumLevels: 10, GridJump: 9},
	} {
		for trial := 0; trial < 20; trial++ {
			tr, err := trajectory.Build(5, o, rng)
			require.NoError(t, err)
			checkInvariants(t, tr, 5, o.Delta())
		}
	}
}

// TestBuild_ConventionalGrid pins the p=4, j=2 scenario: 3 factors,
// shape (4,3), every value on the 4-level grid, steps of 2/3.
func TestBuild_ConventionalGrid(t *testing.T) {
	rng := trajectory.NewRand(1)
	opts := trajectory.Options{NumLevels: 4, GridJump: 2}

	tr, err := trajectory.Build(3, opts, rng)
	require.NoError(t, err)
	require.Equal(t, 4, tr.Rows())
	require.Equal(t, 3, tr.Cols())

	grid := []float64{0, 1.0 / 3, 2.0 / 3, 1}
	for i := 0; i < tr.Rows(); i++ {
		row, err := tr.Row(i)
		require.NoError(t, err)
		for j, v := range row {
			onGrid := false
			for _, g := range grid {
				if math.Abs(v-g) < tol {
					onGrid = true
					break
				}
			}
			assert.True(t, onGrid, "entry (%d,%d)=%v not on the 4-level grid", i, j, v)
		}
	}
	checkInvariants(t, tr, 3, 2.0/3)
}

func TestBuild_Deterministic(t *testing.T) {
	opts := trajectory.DefaultOptions()

	a, err := trajectory.Build(6, opts, trajectory.NewRand(99))
	require.NoError(t, err)
	b, err := trajectory.Build(6, opts, trajectory.NewRand(99))
	require.NoError(t, err)

	assert.Equal(t, a.String(), b.String(), "same seed must reproduce the trajectory")

	// Seed 0 maps to the fixed default stream.
	c, err := trajectory.Build(6, opts, trajectory.NewRand(0))
	require.NoError(t, err)
	d, err := trajectory.Build(6, opts, trajectory.NewRand(0))
	require.NoError(t, err)
	assert.Equal(t, c.String(), d.String())
}

func TestBuild_ConfigErrors(t *testing.T) {
	rng := trajectory.NewRand(1)
	tests := []struct {
		name string
		k    int
		opts trajectory.Options
		want error
	}{
		{"odd levels", 3, trajectory.Options{NumLevels: 5, GridJump: 2}, trajectory.ErrNumLevels},
		{"levels below 2", 3, trajectory.Options{NumLevels: 0, GridJump: 1}, trajectory.ErrNumLevels},
		{"zero jump", 3, trajectory.Options{NumLevels: 4, GridJump: 0}, trajectory.ErrGridJump},
		{"jump at levels", 3, trajectory.Options{NumLevels: 4, GridJump: 4}, trajectory.ErrGridJump},
		{"jump above levels", 3, trajectory.Options{NumLevels: 4, GridJump: 9}, trajectory.ErrGridJump},
		{"no factors", 0, trajectory.DefaultOptions(), trajectory.ErrNumVars},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := trajectory.Build(tc.k, tc.opts, rng)
			assert.ErrorIs(t, err, tc.want)
		})
	}

	_, err := trajectory.Build(3, trajectory.DefaultOptions(), nil)
	assert.ErrorIs(t, err, trajectory.ErrNilRand)
}

func TestBuildMany(t *testing.T) {
	rng := trajectory.NewRand(5)
	opts := trajectory.DefaultOptions()

	cands, err := trajectory.BuildMany(8, 4, opts, rng)
	require.NoError(t, err)
	require.Len(t, cands, 8)
	for _, tr := range cands {
		checkInvariants(t, tr, 4, opts.Delta())
	}

	_, err = trajectory.BuildMany(0, 4, opts, rng)
	assert.ErrorIs(t, err, trajectory.ErrCount)
}
