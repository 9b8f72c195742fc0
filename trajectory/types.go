package trajectory

import "errors"

var (
	// ErrNumLevels rejects grid-level counts that are odd or below 2.
	ErrNumLevels = errors.New("trajectory: number of grid levels must be an even integer >= 2")

	// ErrGridJump rejects jumps outside [1, num_levels).
	ErrGridJump = errors.New("trajectory: grid jump must be a positive integer below the number of levels")

	// ErrNumVars rejects non-positive dimension counts.
	ErrNumVars = errors.New("trajectory: number of factors must be >= 1")

	// ErrCount rejects non-positive candidate-pool sizes.
	ErrCount = errors.New("trajectory: candidate count must be >= 1")

	// ErrNilRand rejects a nil random source.
	ErrNilRand = errors.New("trajectory: random source must be non-nil")
)
