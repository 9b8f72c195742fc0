package optimal

import (
	"fmt"
	"math"

	"github.com/katalvlaran/morris/matrix"
)

// CheckCount validates a requested subset size m against a pool of the
// given size, in the documented precondition order.
//
// Errors: ErrCountExceedsPool (m >= pool), ErrCountInfeasible
// (m > MaxSelectable), ErrCountTooSmall (m <= 1).
//
// Complexity: O(1).
func CheckCount(m, pool int) error {
	if m >= pool {
		return ErrCountExceedsPool
	}
	if m > MaxSelectable {
		return ErrCountInfeasible
	}
	if m <= 1 {
		return ErrCountTooSmall
	}

	return nil
}

// PairwiseDistance returns d(a, b): the sum of Euclidean distances
// between every point (row) of a and every point of b. Both
// trajectories must share the same shape.
//
// Complexity: O(rows² · cols).
func PairwiseDistance(a, b *matrix.Dense) (float64, error) {
	if a == nil || b == nil {
		return 0, ErrNilTrajectory
	}
	if a.Rows() != b.Rows() || a.Cols() != b.Cols() {
		return 0, fmt.Errorf("PairwiseDistance: %dx%d vs %dx%d: %w",
			a.Rows(), a.Cols(), b.Rows(), b.Cols(), matrix.ErrDimensionMismatch)
	}

	var (
		total  float64
		i, j   int
		pa, pb []float64
		err    error
	)
	for i = 0; i < a.Rows(); i++ {
		pa, err = a.Row(i)
		if err != nil {
			return 0, err
		}
		for j = 0; j < b.Rows(); j++ {
			pb, err = b.Row(j)
			if err != nil {
				return 0, err
			}
			var sq float64 // squared Euclidean distance between the two points
			for c := range pa {
				d := pa[c] - pb[c]
				sq += d * d
			}
			total += math.Sqrt(sq)
		}
	}

	return total, nil
}

// distanceTable precomputes the symmetric N×N table of pairwise
// trajectory distances. Entry (i,j) holds d(T_i, T_j); the diagonal is
// zero.
//
// Complexity: O(N² · rows² · cols).
func distanceTable(cands []*matrix.Dense) (*matrix.Dense, error) {
	table, err := matrix.NewDense(len(cands), len(cands))
	if err != nil {
		return nil, err
	}
	for i := 0; i < len(cands); i++ {
		for j := i + 1; j < len(cands); j++ {
			d, err := PairwiseDistance(cands[i], cands[j])
			if err != nil {
				return nil, err
			}
			if err = table.Set(i, j, d); err != nil {
				return nil, err
			}
			if err = table.Set(j, i, d); err != nil {
				return nil, err
			}
		}
	}

	return table, nil
}

// Spread returns sqrt(Σ_{i<j} d(T_i, T_j)²) over the given set — the
// aggregate geometric spread the optimizer maximizes. Exposed so that
// callers (and tests) can score arbitrary subsets against the selected
// one.
//
// Complexity: O(len² · rows² · cols).
func Spread(set []*matrix.Dense) (float64, error) {
	var sum float64
	for i := 0; i < len(set); i++ {
		for j := i + 1; j < len(set); j++ {
			d, err := PairwiseDistance(set[i], set[j])
			if err != nil {
				return 0, err
			}
			sum += d * d
		}
	}

	return math.Sqrt(sum), nil
}

// SelectIndices returns the indices (ascending) of the m-subset of
// candidates maximizing spread, enumerating every C(N,m) combination in
// lexicographic order. The first combination attaining the maximum wins;
// there is no secondary tie-break, so the result is deterministic for a
// fixed candidate order.
//
// Complexity: O(N²·rows²·cols) precompute + O(C(N,m)·m²) enumeration.
func SelectIndices(cands []*matrix.Dense, m int) ([]int, error) {
	if err := CheckCount(m, len(cands)); err != nil {
		return nil, err
	}
	table, err := distanceTable(cands)
	if err != nil {
		return nil, err
	}

	// Row views once; the hot loop must not touch error-checked accessors.
	rows := make([][]float64, len(cands))
	for i := range rows {
		if rows[i], err = table.Row(i); err != nil {
			return nil, err
		}
	}

	var (
		best      = make([]int, m)
		bestScore = math.Inf(-1)
		gen       = newCombinations(len(cands), m)
	)
	for gen.next() {
		idx := gen.indices()
		var score float64 // spread² of this combination
		for a := 0; a < m; a++ {
			ra := rows[idx[a]]
			for b := a + 1; b < m; b++ {
				d := ra[idx[b]]
				score += d * d
			}
		}
		// Strict improvement only: the first maximum in enumeration
		// order is kept on ties.
		if score > bestScore {
			bestScore = score
			copy(best, idx)
		}
	}

	return best, nil
}

// Select returns the m candidates maximizing spread, in their original
// relative order. The pool is never mutated; the result shares the
// candidates' backing matrices.
func Select(cands []*matrix.Dense, m int) ([]*matrix.Dense, error) {
	idx, err := SelectIndices(cands, m)
	if err != nil {
		return nil, err
	}

	out := make([]*matrix.Dense, len(idx))
	for i, j := range idx {
		out[i] = cands[j]
	}

	return out, nil
}
