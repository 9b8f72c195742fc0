package groups

import (
	"fmt"

	"github.com/katalvlaran/morris/matrix"
	"github.com/katalvlaran/morris/param"
)

// Membership is the validated binary membership matrix of a grouped
// design: one row per factor, one column per group, exactly one 1 per
// row. Read-only after NewMembership returns.
type Membership struct {
	names   []string // group names in column order (first appearance)
	groupOf []int    // factor position -> group column
	members [][]int  // group column -> factor positions, ascending
}

// NewMembership builds the membership mapping from parsed definitions.
// Column order is the order of first appearance in defs; row index is
// the factor's position in the parameter space.
//
// Contracts:
//   - space non-nil and defs non-empty, else ErrNoGroups.
//   - every definition named and non-empty, else ErrEmptyGroup;
//     names unique, else ErrDuplicateGroup.
//   - every member name present in space, else ErrUnknownFactor.
//   - every factor covered exactly once, else ErrMembership.
//
// Complexity: O(num_vars + total members).
func NewMembership(space *param.Space, defs []Definition) (*Membership, error) {
	if space == nil || len(defs) == 0 {
		return nil, ErrNoGroups
	}

	var (
		numVars = space.NumVars()
		m       = &Membership{
			names:   make([]string, 0, len(defs)),
			groupOf: make([]int, numVars),
			members: make([][]int, 0, len(defs)),
		}
		seen = make(map[string]struct{}, len(defs))
	)
	for i := range m.groupOf {
		m.groupOf[i] = -1 // not yet assigned
	}

	for _, def := range defs {
		if def.Name == "" || len(def.Members) == 0 {
			return nil, fmt.Errorf("group %q: %w", def.Name, ErrEmptyGroup)
		}
		if _, dup := seen[def.Name]; dup {
			return nil, fmt.Errorf("group %q: %w", def.Name, ErrDuplicateGroup)
		}
		seen[def.Name] = struct{}{}

		col := len(m.names)
		m.names = append(m.names, def.Name)
		m.members = append(m.members, nil)
		for _, name := range def.Members {
			f, err := space.Index(name)
			if err != nil {
				return nil, fmt.Errorf("group %q member %q: %w", def.Name, name, ErrUnknownFactor)
			}
			if m.groupOf[f] != -1 {
				return nil, fmt.Errorf("factor %q: %w", name, ErrMembership)
			}
			m.groupOf[f] = col
			m.members[col] = append(m.members[col], f)
		}
	}

	// Every factor must have been claimed by some group.
	for f, col := range m.groupOf {
		if col == -1 {
			return nil, fmt.Errorf("factor %q: %w", space.Name(f), ErrMembership)
		}
	}

	return m, nil
}

// NumVars returns the number of factors (membership rows).
func (m *Membership) NumVars() int { return len(m.groupOf) }

// NumGroups returns the number of groups (membership columns).
func (m *Membership) NumGroups() int { return len(m.names) }

// Names returns a copy of the group names in column order.
func (m *Membership) Names() []string {
	out := make([]string, len(m.names))
	copy(out, m.names)

	return out
}

// GroupOf returns the group column of factor f, or -1 when f is out of
// range.
func (m *Membership) GroupOf(f int) int {
	if f < 0 || f >= len(m.groupOf) {
		return -1
	}

	return m.groupOf[f]
}

// Members returns a copy of the factor positions in group column c,
// ascending, or nil when c is out of range.
func (m *Membership) Members(c int) []int {
	if c < 0 || c >= len(m.members) {
		return nil
	}
	out := make([]int, len(m.members[c]))
	copy(out, m.members[c])

	return out
}

// Matrix materializes the binary (num_vars × num_groups) membership
// matrix G: G[f][c] = 1 iff factor f belongs to group c. Every row sums
// to exactly 1 by construction. The result is freshly allocated.
//
// Complexity: O(num_vars · num_groups).
func (m *Membership) Matrix() (*matrix.Dense, error) {
	g, err := matrix.NewDense(m.NumVars(), m.NumGroups())
	if err != nil {
		return nil, err
	}
	for f, col := range m.groupOf {
		if err = g.Set(f, col, 1); err != nil {
			return nil, err
		}
	}

	return g, nil
}
