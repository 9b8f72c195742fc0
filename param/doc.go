// Package param models the parameter space a Morris design is drawn over
// and owns the plain-text formats at the boundary of the generator.
//
// What:
//
//   - Space — ordered factor names plus (low, high) bounds, read-only
//     after construction.
//   - ParseParams / LoadParams — one factor per row: name, lower, upper
//     (whitespace or comma delimited; '#' starts a comment).
//   - ScaleInPlace — per-column affine map of a [0,1] design onto the
//     factor bounds.
//   - WriteMatrix — scientific-notation text output, one sample point
//     per line, configurable delimiter and precision.
//
// Errors:
//
//   - ErrShapeMismatch: names and bounds differ in length, or empty space.
//   - ErrBadBound: a factor's lower bound is not strictly below its upper.
//   - ErrDuplicateName / ErrEmptyName: factor naming violations.
//   - ErrBadRow: a file row does not have the expected field layout.
//
// Sentinels are matched with errors.Is; parse errors wrap the sentinel
// with the offending line number.
package param
