// Package morris generates experimental designs for Morris' "Elementary
// Effects" global sensitivity screening — structured one-at-a-time (OAT)
// sample trajectories over a bounded, discretized parameter space.
//
// 🚀 What is morris?
//
//	A deterministic, in-memory design generator that brings together:
//		• OAT trajectories: randomized base point + one perturbation per factor
//		• Factor groups: trajectories over groups of factors (Campolongo 2007)
//		• Optimal subsets: brute-force selection of the most spread-out trajectories
//		• Parameter files: plain-text factor/bounds and group definitions
//		• Output: scientific-notation design matrices, rescaled to factor bounds
//
// ✨ Why choose morris?
//
//   - Reproducible – a single seeded RNG drives every draw; same seed, same design
//   - Strict sentinels – configuration errors surface before any sampling begins
//   - Pure Go – no cgo, dense matrices in flat slices
//   - Honest limits – the optimal-subset search is brute force and says so
//
// Under the hood, everything is organized into focused subpackages:
//
//	matrix/     — row-major dense matrices (trajectories, stacked designs)
//	param/      — parameter space, file parsing, bounds rescaling, output
//	trajectory/ — randomized OAT trajectory construction
//	groups/     — factor-group membership and grouped trajectories
//	optimal/    — combinatorial optimal-trajectory selection
//	design/     — the orchestrator tying the stages together
//	cmd/morris  — command-line front end
//
// Quick sketch of one trajectory (3 factors, 4 grid levels, jump 2):
//
//	row 0:  (1/3,   0, 2/3)   ← random base point
//	row 1:  (1/3, 2/3, 2/3)   ← factor 2 stepped by +2/3
//	row 2:  (  1, 2/3, 2/3)   ← factor 1 stepped by +2/3
//	row 3:  (  1, 2/3,   0)   ← factor 3 stepped by −2/3
//
// Each generated point is meant to be fed to the model under study; the
// elementary-effect statistics themselves are computed downstream and are
// out of scope here.
//
//	go get github.com/katalvlaran/morris
package morris
