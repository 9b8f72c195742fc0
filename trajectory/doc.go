// Package trajectory constructs randomized one-at-a-time (OAT) Morris
// trajectories over a discretized unit hypercube.
//
// 🚀 What is an OAT trajectory?
//
//	A walk of k+1 points in [0,1]^k where each step perturbs exactly one
//	dimension by ±Δ, Δ = grid_jump/(num_levels−1), and every dimension is
//	perturbed exactly once, in uniformly random order. Running a model at
//	each point lets a downstream analysis attribute output changes to
//	individual factors (the "elementary effects").
//
// Geometry:
//
//	For each dimension the builder draws the lower of the two grid values
//	the walk will visit, uniformly from {0, 1/(p−1), …, (p−1−j)/(p−1)},
//	and an independent direction sign. A positive sign starts at the
//	lower value and steps up; a negative sign starts at the upper value
//	(lower + Δ) and steps down. Both endpoints are grid points inside
//	[0,1] by construction, so no draw ever needs rejection or retry.
//
// Invariants (enforced by construction, checked in tests):
//
//   - every entry lies in [0,1];
//   - consecutive rows differ in exactly one column, by exactly Δ;
//   - each column is perturbed exactly once across the k steps.
//
// Determinism:
//
//	All randomness flows through an explicit *rand.Rand supplied by the
//	caller; the same seed yields bit-identical trajectories. NewRand
//	maps seed 0 to a fixed default stream.
//
// Errors:
//
//   - ErrNumLevels: num_levels is odd or below 2.
//   - ErrGridJump: grid_jump is not in [1, num_levels).
//   - ErrNumVars: a non-positive dimension count.
//   - ErrCount: a non-positive candidate count (BuildMany).
//
// Complexity: Build is O(k²) time and memory for the (k+1)×k matrix.
package trajectory
