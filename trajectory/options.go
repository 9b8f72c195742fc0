package trajectory

// DEFAULTS - single source of truth for zero-configuration sampling.
const (
	// DefaultNumLevels is the conventional Morris grid resolution (p = 4).
	DefaultNumLevels = 4

	// DefaultGridJump is the conventional step, p/2 grid units.
	DefaultGridJump = 2
)

// Options fixes the grid geometry shared by all trajectories of a design.
type Options struct {
	// NumLevels (p) is the number of discrete values each factor may
	// take in [0,1]. Must be an even integer >= 2.
	NumLevels int

	// GridJump (j) is the perturbation size in grid units; the concrete
	// step is Δ = j/(p−1). Must satisfy 1 <= j < p.
	GridJump int
}

// DefaultOptions returns the conventional Morris grid (p=4, j=2),
// giving Δ = 2/3.
func DefaultOptions() Options {
	return Options{NumLevels: DefaultNumLevels, GridJump: DefaultGridJump}
}

// Validate checks the grid geometry.
//
// Contracts:
//   - NumLevels even and >= 2, else ErrNumLevels.
//   - 1 <= GridJump < NumLevels, else ErrGridJump.
//
// Complexity: O(1).
func (o Options) Validate() error {
	if o.NumLevels < 2 || o.NumLevels%2 != 0 {
		return ErrNumLevels
	}
	if o.GridJump < 1 || o.GridJump >= o.NumLevels {
		return ErrGridJump
	}

	return nil
}

// Delta returns the concrete step size j/(p−1). Callers must have
// validated the options first; Delta performs no checks.
//
// Complexity: O(1).
func (o Options) Delta() float64 {
	return float64(o.GridJump) / float64(o.NumLevels-1)
}
