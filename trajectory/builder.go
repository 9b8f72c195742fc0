package trajectory

import (
	"math/rand"

	"github.com/katalvlaran/morris/matrix"
)

// Build constructs one randomized OAT trajectory over numVars dimensions:
// a (numVars+1)×numVars matrix whose row 0 is a random grid point and
// whose step i perturbs exactly one dimension by ±Δ.
//
// Per dimension, the lower endpoint of the two visited grid values is
// drawn uniformly from the j-safe grid {0 … p−1−j} (grid units) and an
// independent sign fixes the walk direction: positive starts low and
// steps up, negative starts high and steps down. Both endpoints lie in
// [0,1] by construction, so the builder never rejects or retries a draw.
// Step order is a uniform random permutation of the dimensions.
//
// Contracts:
//   - numVars >= 1, else ErrNumVars.
//   - opts valid per Options.Validate.
//   - rng non-nil, else ErrNilRand.
//
// The returned matrix is freshly allocated and owned by the caller;
// Build keeps no reference to it.
//
// Complexity: O(numVars²) time and memory.
func Build(numVars int, opts Options, rng *rand.Rand) (*matrix.Dense, error) {
	if err := validate(numVars, opts, rng); err != nil {
		return nil, err
	}

	var (
		unit  = 1.0 / float64(opts.NumLevels-1) // grid spacing
		delta = opts.Delta()
		base  = make([]float64, numVars) // row 0, adjusted for direction
		step  = make([]float64, numVars) // signed step per dimension
	)
	for d := 0; d < numVars; d++ {
		// low is the smaller of the two grid values this dimension visits.
		low := rng.Intn(opts.NumLevels - opts.GridJump)
		if rng.Intn(2) == 0 {
			base[d] = float64(low) * unit
			step[d] = delta
		} else {
			base[d] = float64(low+opts.GridJump) * unit
			step[d] = -delta
		}
	}

	t, err := matrix.NewDense(numVars+1, numVars)
	if err != nil {
		return nil, err
	}
	if err = t.SetRow(0, base); err != nil {
		return nil, err
	}

	// One perturbation per dimension, in random order; each row carries
	// all perturbations applied so far.
	cur := base // reuse: SetRow copies, so mutating base in place is safe
	for i, d := range rng.Perm(numVars) {
		cur[d] += step[d]
		if err = t.SetRow(i+1, cur); err != nil {
			return nil, err
		}
	}

	return t, nil
}

// BuildMany produces count independent candidate trajectories from one
// RNG stream. No two candidates are correlated beyond sharing the stream.
//
// Contracts: count >= 1, else ErrCount; the rest as in Build.
//
// Complexity: O(count·numVars²).
func BuildMany(count, numVars int, opts Options, rng *rand.Rand) ([]*matrix.Dense, error) {
	if count < 1 {
		return nil, ErrCount
	}
	if err := validate(numVars, opts, rng); err != nil {
		return nil, err
	}

	out := make([]*matrix.Dense, count)
	for i := range out {
		t, err := Build(numVars, opts, rng)
		if err != nil {
			return nil, err
		}
		out[i] = t
	}

	return out, nil
}

// validate is the shared precondition gate for the builders.
func validate(numVars int, opts Options, rng *rand.Rand) error {
	if numVars < 1 {
		return ErrNumVars
	}
	if err := opts.Validate(); err != nil {
		return err
	}
	if rng == nil {
		return ErrNilRand
	}

	return nil
}
