// Package design is the orchestrator tying the sampling stages into one
// pipeline: candidate trajectories (plain or grouped) → optional
// optimal-subset selection → one stacked design matrix, optionally
// rescaled to the factor bounds and written out.
//
// Pipeline:
//
//	param.Space ──▶ trajectory.BuildMany ─┐
//	                groups.BuildMany ─────┤ (one of the two)
//	                                      ▼
//	                optimal.Select (when requested)
//	                                      ▼
//	                matrix.VStack ──▶ unscaled design in [0,1]
//	                                      ▼
//	                param.ScaleInPlace ─▶ param.WriteMatrix
//
// Every configuration error — grid geometry, optimizer range, group
// structure — surfaces from New, before any sampling work begins; a
// constructed Morris cannot fail for configuration reasons.
//
// Reproducibility: New derives a single *rand.Rand from Options.Seed
// (seed 0 ⇒ fixed default stream) and all draws flow through it, so one
// seed fully determines the design. A Morris value is not safe for
// concurrent use — the RNG stream is stateful.
package design
