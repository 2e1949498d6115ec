package dyckpath

import (
	"fmt"
	"slices"
	"strconv"
	"strings"
)

// Path is the height sequence of a Dyck path: entry i counts the boxes strictly
// above-and-to-the-right of row i. Paths are treated as immutable values;
// every constructor in this package hands out a fresh slice.
type Path []int

// NewPath copies entries into a Path and checks the Dyck-path constraints.
// Returns ErrInvalidPath (wrapped with the offending sequence) on failure.
func NewPath(entries ...int) (Path, error) {
	if !IsDyckPath(entries) {
		return nil, fmt.Errorf("NewPath(%v): %w", entries, ErrInvalidPath)
	}

	return Path(slices.Clone(entries)), nil
}

// IsDyckPath reports whether path is a valid Dyck path:
//   - every entry is ≥ 0,
//   - path[i] < path[i+1]+2 for every adjacent pair,
//   - the last entry is 0 (the empty sequence is valid).
//
// It never fails; malformed input yields false.
// Complexity: O(n).
func IsDyckPath(path []int) bool {
	for i, entry := range path {
		// 1) heights are counts of boxes, never negative
		if entry < 0 {
			return false
		}
		// 2) step bound toward the next row
		if i+1 < len(path) && entry >= path[i+1]+2 {
			return false
		}
	}
	// 3) the path must come back to the baseline on its last row
	return len(path) == 0 || path[len(path)-1] == 0
}

// IsPrimitive reports whether path never returns to the baseline before its
// last row, i.e. the first 0 sits at the final index (or path is empty).
// It does not check Dyck-ness; combine with IsDyckPath when needed.
func IsPrimitive(path []int) bool {
	if len(path) == 0 {
		return true
	}

	return slices.Index(path, 0) == len(path)-1
}

// Len returns the number of rows of p.
func (p Path) Len() int { return len(p) }

// Sum returns the total number of boxes under p (its area).
func (p Path) Sum() int {
	total := 0
	for _, entry := range p {
		total += entry
	}

	return total
}

// Clone returns an independent copy of p.
func (p Path) Clone() Path {
	return Path(slices.Clone([]int(p)))
}

// Equal reports whether p and q hold the same entries.
func (p Path) Equal(q Path) bool {
	return slices.Equal(p, q)
}

// Key returns the canonical textual key of p, e.g. "2,1,0".
// The empty path has the empty key. Keys are used for memoization and as the
// lookup key for tables indexed by path.
func (p Path) Key() string {
	var sb strings.Builder
	for i, entry := range p {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(strconv.Itoa(entry))
	}

	return sb.String()
}

// String renders p as a tuple, e.g. "(2, 1, 0)".
func (p Path) String() string {
	parts := make([]string, len(p))
	for i, entry := range p {
		parts[i] = strconv.Itoa(entry)
	}
	if len(p) == 1 {
		return "(" + parts[0] + ",)"
	}

	return "(" + strings.Join(parts, ", ") + ")"
}

// Compare orders paths lexicographically, a shorter prefix first.
// Returns -1, 0 or +1.
func Compare(a, b Path) int {
	return slices.Compare(a, b)
}

// ParsePath reads a path written as comma- or space-separated integers,
// optionally wrapped in parentheses or brackets: "2,1,0", "(2, 1, 0)",
// "[2 1 0]", "(0,)". An empty body yields the empty path.
// ParsePath checks syntax only; use IsDyckPath or NewPath to validate.
func ParsePath(s string) (Path, error) {
	body := strings.TrimSpace(s)
	// 1) strip one level of matching brackets
	if n := len(body); n >= 2 {
		if (body[0] == '(' && body[n-1] == ')') || (body[0] == '[' && body[n-1] == ']') {
			body = body[1 : n-1]
		}
	}
	// 2) split on commas and whitespace, dropping empty fields ("(0,)")
	fields := strings.FieldsFunc(body, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t' || r == '\n'
	})
	path := make(Path, 0, len(fields))
	for _, f := range fields {
		v, err := strconv.Atoi(f)
		if err != nil {
			return nil, fmt.Errorf("ParsePath(%q): field %q: %w", s, f, ErrParsePath)
		}
		path = append(path, v)
	}

	return path, nil
}
