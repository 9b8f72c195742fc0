package optimal

import "errors"

// MaxSelectable bounds the requested subset size. A usability guard,
// not a mathematical limit: C(N,m) grows too fast past this point for
// the brute-force contract to stay interactive.
const MaxSelectable = 10

var (
	// ErrCountExceedsPool — fewer optimal trajectories than candidate samples required.
	ErrCountExceedsPool = errors.New("optimal: fewer optimal trajectories than samples required")

	// ErrCountInfeasible — requested subset too large, brute-force computation infeasible.
	ErrCountInfeasible = errors.New("optimal: requested count too large, computation infeasible")

	// ErrCountTooSmall — a spread needs at least two trajectories.
	ErrCountTooSmall = errors.New("optimal: must select 2 or more trajectories")

	// ErrNilTrajectory — a nil candidate in the pool.
	ErrNilTrajectory = errors.New("optimal: nil candidate trajectory")
)
