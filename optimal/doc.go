// Package optimal selects, from a pool of candidate Morris trajectories,
// the fixed-size subset that maximizes mutual geometric spread — the
// Campolongo (2007) optimal-trajectory enhancement.
//
// Objective:
//
//	spread(S) = sqrt( Σ_{i<j ∈ S} d(T_i, T_j)² )
//
// where d(T_i, T_j) sums the Euclidean distances between every point of
// T_i and every point of T_j. Trajectories that are mutually far apart
// cover the factor space better, improving the quality of the
// downstream elementary-effect estimates.
//
// Algorithm — brute force, by contract:
//
//	All pairwise d(T_i, T_j) are precomputed once into an N×N symmetric
//	table (O(N²·(k+1)²·num_vars)), then every m-combination of the pool
//	is enumerated in lexicographic order through an iterative
//	next-combination generator (no recursion), summing precomputed
//	entries per subset (O(C(N,m))). The first combination attaining the
//	maximum wins; ties are broken by enumeration order and nothing else.
//	The cost is exponential in N for fixed m — this is the documented
//	contract, not a bug, and MaxSelectable exists precisely to keep the
//	search bounded. No heuristic fallback is attempted.
//
// Errors (checked in this order before any distance work):
//
//   - ErrCountExceedsPool: m >= pool size.
//   - ErrCountInfeasible: m > MaxSelectable (10).
//   - ErrCountTooSmall: m <= 1.
//
// Selected trajectories are returned in their original relative order;
// the pool itself is never mutated.
package optimal
