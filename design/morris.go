package design

import (
	"io"
	"math/rand"

	"github.com/katalvlaran/morris/groups"
	"github.com/katalvlaran/morris/matrix"
	"github.com/katalvlaran/morris/optimal"
	"github.com/katalvlaran/morris/param"
	"github.com/katalvlaran/morris/trajectory"
)

// Morris generates one Morris elementary-effects design over a
// parameter space. Construct with New; every configuration error is
// raised there, before any sampling.
type Morris struct {
	space *param.Space
	opts  Options
	mem   *groups.Membership // nil for ungrouped designs
	rng   *rand.Rand

	sample *matrix.Dense // cached unscaled design, built on first use
}

// New validates the full configuration and prepares a design generator.
//
// Validation stages, all before any sampling:
//  1. space non-nil, Samples >= 1.
//  2. grid geometry (levels, jump) per trajectory.Options.Validate.
//  3. group definitions, when present, per groups.NewMembership.
//  4. optimizer range, when requested, per optimal.CheckCount.
//
// Complexity: O(num_vars + total group members).
func New(space *param.Space, opts Options) (*Morris, error) {
	if space == nil {
		return nil, ErrNilSpace
	}
	if opts.Samples < 1 {
		return nil, ErrSamples
	}
	if err := opts.grid().Validate(); err != nil {
		return nil, err
	}

	var (
		mem *groups.Membership
		err error
	)
	if len(opts.Groups) > 0 {
		if mem, err = groups.NewMembership(space, opts.Groups); err != nil {
			return nil, err
		}
	}
	if opts.OptimalTrajectories != 0 {
		if err = optimal.CheckCount(opts.OptimalTrajectories, opts.Samples); err != nil {
			return nil, err
		}
	}

	return &Morris{
		space: space,
		opts:  opts,
		mem:   mem,
		rng:   trajectory.NewRand(opts.Seed),
	}, nil
}

// Space returns the parameter space the design is drawn over.
func (m *Morris) Space() *param.Space { return m.space }

// Sample returns the unscaled design matrix in [0,1]: the surviving
// trajectories stacked vertically, shape (T·(k+1)) × num_vars, where T
// is Samples (or OptimalTrajectories when optimization is on) and k the
// number of effective dimensions (factors, or groups when grouping is
// active). The design is generated on the first call and cached; later
// calls return the same matrix.
//
// Complexity: dominated by optimal.Select when optimization is on,
// O(Samples · k²) otherwise.
func (m *Morris) Sample() (*matrix.Dense, error) {
	if m.sample != nil {
		return m.sample, nil
	}

	var (
		cands []*matrix.Dense
		err   error
	)
	if m.mem != nil {
		cands, err = groups.BuildMany(m.opts.Samples, m.mem, m.opts.grid(), m.rng)
	} else {
		cands, err = trajectory.BuildMany(m.opts.Samples, m.space.NumVars(), m.opts.grid(), m.rng)
	}
	if err != nil {
		return nil, err
	}

	if m.opts.OptimalTrajectories != 0 {
		if cands, err = optimal.Select(cands, m.opts.OptimalTrajectories); err != nil {
			return nil, err
		}
	}

	if m.sample, err = matrix.VStack(cands...); err != nil {
		return nil, err
	}

	return m.sample, nil
}

// ScaledSample returns a fresh copy of the design rescaled per column
// to the factor bounds. The cached unscaled design is left untouched.
func (m *Morris) ScaledSample() (*matrix.Dense, error) {
	unscaled, err := m.Sample()
	if err != nil {
		return nil, err
	}

	scaled := unscaled.Clone()
	if err = param.ScaleInPlace(scaled, m.space.Bounds()); err != nil {
		return nil, err
	}

	return scaled, nil
}

// Save writes the scaled design to w in the plain-text output format:
// one sample point per line, scientific-notation fields joined by
// delim (param.DefaultDelimiter when empty) with the given mantissa
// precision (param.DefaultPrecision when negative).
func (m *Morris) Save(w io.Writer, delim string, precision int) error {
	scaled, err := m.ScaledSample()
	if err != nil {
		return err
	}

	return param.WriteMatrix(w, scaled, delim, precision)
}
