package groups

import (
	"math/rand"

	"github.com/katalvlaran/morris/matrix"
	"github.com/katalvlaran/morris/trajectory"
)

// Build constructs one grouped OAT trajectory: a
// (num_groups+1)×num_vars matrix whose row 0 is a random grid point and
// whose step i perturbs every member of exactly one group by the same
// ±Δ. This is the membership-matrix expansion of a group-space walk —
// the walk itself has k = num_groups effective dimensions.
//
// Base values are drawn per factor (each factor gets its own grid
// point), while the direction sign and the step order are drawn per
// group, so members share a direction but not a base. As in the
// ungrouped builder, each factor's base is the endpoint of its group's
// walk direction, which keeps every intermediate point inside [0,1]
// without retries.
//
// Contracts:
//   - mem non-nil with at least one group, else ErrNoGroups.
//   - opts valid per trajectory.Options.Validate.
//   - rng non-nil, else trajectory.ErrNilRand.
//
// Complexity: O(num_groups · num_vars) time and memory.
func Build(mem *Membership, opts trajectory.Options, rng *rand.Rand) (*matrix.Dense, error) {
	if mem == nil || mem.NumGroups() == 0 {
		return nil, ErrNoGroups
	}
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	if rng == nil {
		return nil, trajectory.ErrNilRand
	}

	var (
		numVars   = mem.NumVars()
		numGroups = mem.NumGroups()
		unit      = 1.0 / float64(opts.NumLevels-1)
		delta     = opts.Delta()
		signs     = make([]float64, numGroups) // signed step per group
		base      = make([]float64, numVars)
	)

	// Group-space draws first: one direction per effective dimension.
	for c := 0; c < numGroups; c++ {
		if rng.Intn(2) == 0 {
			signs[c] = delta
		} else {
			signs[c] = -delta
		}
	}
	// Factor-space bases, conditioned on the owning group's direction.
	for f := 0; f < numVars; f++ {
		low := rng.Intn(opts.NumLevels - opts.GridJump)
		if signs[mem.GroupOf(f)] > 0 {
			base[f] = float64(low) * unit
		} else {
			base[f] = float64(low+opts.GridJump) * unit
		}
	}

	t, err := matrix.NewDense(numGroups+1, numVars)
	if err != nil {
		return nil, err
	}
	if err = t.SetRow(0, base); err != nil {
		return nil, err
	}

	// One step per group, in random order; expanding a group-space step
	// through the membership matrix moves all members together.
	cur := base // SetRow copies, so in-place mutation is safe
	for i, c := range rng.Perm(numGroups) {
		for _, f := range mem.members[c] {
			cur[f] += signs[c]
		}
		if err = t.SetRow(i+1, cur); err != nil {
			return nil, err
		}
	}

	return t, nil
}

// BuildMany produces count independent grouped candidate trajectories
// from one RNG stream.
//
// Contracts: count >= 1, else trajectory.ErrCount; the rest as in Build.
//
// Complexity: O(count · num_groups · num_vars).
func BuildMany(count int, mem *Membership, opts trajectory.Options, rng *rand.Rand) ([]*matrix.Dense, error) {
	if count < 1 {
		return nil, trajectory.ErrCount
	}

	out := make([]*matrix.Dense, count)
	for i := range out {
		t, err := Build(mem, opts, rng)
		if err != nil {
			return nil, err
		}
		out[i] = t
	}

	return out, nil
}
