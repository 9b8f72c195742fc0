// Package matrix provides the dense linear-algebra primitives the design
// generator works on: a row-major float64 matrix with bounds-checked
// accessors, cheap row views, and vertical stacking.
//
// What:
//
//   - Dense — a rows×cols matrix stored in one flat slice.
//   - Row views expose a trajectory point without copying.
//   - VStack concatenates trajectories into one stacked design matrix.
//
// Why:
//
//   - Trajectories are small dense matrices; flat storage keeps the
//     per-point arithmetic cache friendly.
//   - The optimizer's pairwise-distance table reuses the same type.
//
// Errors:
//
//   - ErrBadShape: requested dimensions are non-positive.
//   - ErrOutOfRange: a row or column index is outside valid bounds.
//   - ErrDimensionMismatch: operands disagree on shape (e.g. VStack).
//   - ErrNilMatrix: a nil *Dense was passed where a matrix is required.
//
// All errors are package-level sentinels; match them with errors.Is.
// Methods never panic on user input.
package matrix
