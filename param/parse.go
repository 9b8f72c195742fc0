package param

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// ParseParams reads a parameter file: one factor per row, fields
// "name lower upper", delimited by whitespace and/or commas. Blank
// lines and lines starting with '#' are skipped. Row order defines
// factor index order.
//
// Errors: ErrBadRow (field count or numeric parse failure, wrapped with
// the 1-based line number), plus Space construction sentinels.
//
// Complexity: O(total input size).
func ParseParams(r io.Reader) (*Space, error) {
	var (
		names  []string
		bounds []Bound
	)

	sc := bufio.NewScanner(r)
	line := 0 // 1-based line counter for error context
	for sc.Scan() {
		line++
		fields := SplitRow(sc.Text())
		if fields == nil {
			continue // blank or comment
		}
		if len(fields) != 3 {
			return nil, fmt.Errorf("line %d: got %d fields: %w", line, len(fields), ErrBadRow)
		}
		low, err := strconv.ParseFloat(fields[1], 64)
		if err != nil {
			return nil, fmt.Errorf("line %d: lower bound %q: %w", line, fields[1], ErrBadRow)
		}
		high, err := strconv.ParseFloat(fields[2], 64)
		if err != nil {
			return nil, fmt.Errorf("line %d: upper bound %q: %w", line, fields[2], ErrBadRow)
		}
		names = append(names, fields[0])
		bounds = append(bounds, Bound{Low: low, High: high})
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("param: read: %w", err)
	}

	return NewSpace(names, bounds)
}

// LoadParams opens path and delegates to ParseParams.
func LoadParams(path string) (*Space, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("param: open %s: %w", path, err)
	}
	defer f.Close()

	return ParseParams(f)
}

// SplitRow tokenizes one file row, treating commas as whitespace and
// dropping trailing '#' comments. Returns nil for rows with no fields.
// The group-file parser in package groups shares this tokenization so
// both boundary formats accept the same delimiters.
func SplitRow(s string) []string {
	if i := strings.IndexByte(s, '#'); i >= 0 {
		s = s[:i]
	}
	s = strings.ReplaceAll(s, ",", " ")
	fields := strings.Fields(s)
	if len(fields) == 0 {
		return nil
	}

	return fields
}
