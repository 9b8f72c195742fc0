package design

import (
	"errors"

	"github.com/katalvlaran/morris/groups"
	"github.com/katalvlaran/morris/trajectory"
)

// ErrSamples rejects non-positive candidate counts.
var ErrSamples = errors.New("design: number of samples must be >= 1")

// ErrNilSpace rejects a nil parameter space.
var ErrNilSpace = errors.New("design: parameter space must be non-nil")

// Options configures one Morris design.
type Options struct {
	// Samples is the number of candidate trajectories to generate.
	Samples int

	// NumLevels and GridJump fix the grid geometry; see trajectory.Options.
	NumLevels int
	GridJump  int

	// Groups, when non-empty, switches to grouped sampling with these
	// parsed group definitions.
	Groups []groups.Definition

	// OptimalTrajectories, when non-zero, selects that many maximally
	// spread trajectories out of the candidate pool (2..10, below
	// Samples). Zero disables optimization.
	OptimalTrajectories int

	// Seed feeds the single RNG stream driving all draws; 0 selects a
	// fixed default stream.
	Seed int64
}

// DefaultOptions returns the conventional grid (p=4, j=2) with grouping
// and optimization disabled. Samples has no sensible default and must
// be set by the caller.
func DefaultOptions() Options {
	return Options{
		NumLevels: trajectory.DefaultNumLevels,
		GridJump:  trajectory.DefaultGridJump,
	}
}

// grid projects the grid-geometry subset of the options.
func (o Options) grid() trajectory.Options {
	return trajectory.Options{NumLevels: o.NumLevels, GridJump: o.GridJump}
}
