package groups

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/katalvlaran/morris/param"
)

// ParseDefinitions reads a group file: one group per row, first field
// the group name, remaining fields its member factor names. Delimiters,
// comments, and blank-line handling match the parameter-file format
// (param.SplitRow).
//
// Structural validation against a parameter space happens later, in
// NewMembership; ParseDefinitions only enforces the row shape.
//
// Complexity: O(total input size).
func ParseDefinitions(r io.Reader) ([]Definition, error) {
	var defs []Definition

	sc := bufio.NewScanner(r)
	line := 0 // 1-based line counter for error context
	for sc.Scan() {
		line++
		fields := param.SplitRow(sc.Text())
		if fields == nil {
			continue
		}
		if len(fields) < 2 {
			return nil, fmt.Errorf("line %d: got %d fields: %w", line, len(fields), ErrBadRow)
		}
		defs = append(defs, Definition{Name: fields[0], Members: fields[1:]})
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("groups: read: %w", err)
	}
	if len(defs) == 0 {
		return nil, ErrNoGroups
	}

	return defs, nil
}

// LoadDefinitions opens path and delegates to ParseDefinitions.
func LoadDefinitions(path string) ([]Definition, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("groups: open %s: %w", path, err)
	}
	defer f.Close()

	return ParseDefinitions(f)
}
