package groups

import "errors"

// Definition is one parsed group-file row.
type Definition struct {
	// Name labels the group; must be unique across definitions.
	Name string

	// Members lists the factor names belonging to the group.
	Members []string
}

var (
	// ErrUnknownFactor flags a member name absent from the parameter space.
	ErrUnknownFactor = errors.New("groups: group file references unknown parameter")

	// ErrMembership flags a factor belonging to zero or multiple groups.
	ErrMembership = errors.New("groups: every factor must belong to exactly one group")

	// ErrNoGroups flags an empty definition list.
	ErrNoGroups = errors.New("groups: at least one group is required")

	// ErrEmptyGroup flags a group without members or without a name.
	ErrEmptyGroup = errors.New("groups: group must have a name and at least one member")

	// ErrDuplicateGroup flags two definitions sharing one group name.
	ErrDuplicateGroup = errors.New("groups: duplicate group name")

	// ErrBadRow flags a malformed group-file row.
	ErrBadRow = errors.New("groups: malformed group row, want: name member...")
)
