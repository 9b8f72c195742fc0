// Package groups builds Morris trajectories over factor *groups*: every
// factor belongs to exactly one group, and one trajectory step moves all
// members of one group together by the same ±Δ.
//
// What:
//
//   - Definition — one parsed group-file row: a group name plus its
//     member factor names.
//   - Membership — the binary (num_vars × num_groups) membership matrix,
//     column order fixed by each group's first appearance; every row
//     sums to exactly 1.
//   - Build / BuildMany — grouped OAT trajectories of shape
//     (num_groups+1) × num_vars, structurally identical to ungrouped
//     trajectories so downstream stages need no special casing.
//
// Geometry:
//
//	The walk happens in group space (k = num_groups effective
//	dimensions) and each group-space step is expanded to factor space
//	through the membership matrix: all members of the perturbed group
//	move by the same signed Δ, while each factor keeps its own randomly
//	drawn base value.
//
// Errors:
//
//   - ErrUnknownFactor: a group file references a name absent from the
//     parameter space.
//   - ErrMembership: a factor belongs to zero groups or to more than one.
//   - ErrNoGroups / ErrEmptyGroup / ErrDuplicateGroup: structural
//     group-file violations.
package groups
