package dyckpath

import (
	"cmp"
	"iter"
	"slices"
	"strconv"
	"strings"
)

// Box is a unit cell under a path, identified by the pair of rows it spans.
// A box derived from a path always satisfies I < J.
type Box struct {
	I int // lower row index
	J int // higher row index
}

// String renders b as "(I,J)".
func (b Box) String() string {
	return "(" + strconv.Itoa(b.I) + "," + strconv.Itoa(b.J) + ")"
}

// compareBoxes orders boxes by I, then J.
func compareBoxes(a, b Box) int {
	if c := cmp.Compare(a.I, b.I); c != 0 {
		return c
	}

	return cmp.Compare(a.J, b.J)
}

// BoxSet is an immutable set of boxes. The zero value is the empty set.
// Elements are kept sorted by (I, J) so iteration, Key and Equal are
// deterministic; membership is O(1).
type BoxSet struct {
	boxes []Box            // sorted, de-duplicated
	index map[Box]struct{} // membership
}

// NewBoxSet builds a set from boxes; duplicates collapse.
// Complexity: O(k log k) for k input boxes.
func NewBoxSet(boxes ...Box) BoxSet {
	if len(boxes) == 0 {
		return BoxSet{}
	}
	sorted := slices.Clone(boxes)
	slices.SortFunc(sorted, compareBoxes)
	sorted = slices.Compact(sorted)

	index := make(map[Box]struct{}, len(sorted))
	for _, b := range sorted {
		index[b] = struct{}{}
	}

	return BoxSet{boxes: sorted, index: index}
}

// Len returns the number of boxes in s.
func (s BoxSet) Len() int { return len(s.boxes) }

// Contains reports whether b is a member of s.
func (s BoxSet) Contains(b Box) bool {
	_, ok := s.index[b]
	return ok
}

// Boxes returns the members of s in (I, J) order. The slice is a copy.
func (s BoxSet) Boxes() []Box {
	return slices.Clone(s.boxes)
}

// All yields the members of s in (I, J) order.
func (s BoxSet) All() iter.Seq[Box] {
	return func(yield func(Box) bool) {
		for _, b := range s.boxes {
			if !yield(b) {
				return
			}
		}
	}
}

// Equal reports whether s and t hold exactly the same boxes.
func (s BoxSet) Equal(t BoxSet) bool {
	return slices.Equal(s.boxes, t.boxes)
}

// Disjoint reports whether s and t share no box.
func (s BoxSet) Disjoint(t BoxSet) bool {
	small, large := s, t
	if small.Len() > large.Len() {
		small, large = large, small
	}
	for _, b := range small.boxes {
		if large.Contains(b) {
			return false
		}
	}

	return true
}

// Union returns a new set holding the boxes of s and t.
func (s BoxSet) Union(t BoxSet) BoxSet {
	merged := make([]Box, 0, s.Len()+t.Len())
	merged = append(merged, s.boxes...)
	merged = append(merged, t.boxes...)

	return NewBoxSet(merged...)
}

// Key returns a canonical string for s, e.g. "0-1;0-2;1-2".
// Two sets have the same key iff they are Equal.
func (s BoxSet) Key() string {
	var sb strings.Builder
	for i, b := range s.boxes {
		if i > 0 {
			sb.WriteByte(';')
		}
		sb.WriteString(strconv.Itoa(b.I))
		sb.WriteByte('-')
		sb.WriteString(strconv.Itoa(b.J))
	}

	return sb.String()
}

// String renders s as "{(0,1), (1,2)}".
func (s BoxSet) String() string {
	parts := make([]string, len(s.boxes))
	for i, b := range s.boxes {
		parts[i] = b.String()
	}

	return "{" + strings.Join(parts, ", ") + "}"
}

// BoxesUnderPath returns the set of boxes under path: for every row i with
// k = path[i] it emits (i, j) for j in i+1..i+k. Box (i, j) exists iff row i
// reaches column j. For every Dyck path p, the result has p.Sum() members.
//
// BoxesUnderPath is pure and does not memoize; use a BoxCache when the same
// paths are queried repeatedly.
func BoxesUnderPath(path []int) BoxSet {
	boxes := make([]Box, 0, len(path))
	for i, k := range path {
		for j := i + 1; j <= i+k; j++ {
			boxes = append(boxes, Box{I: i, J: j})
		}
	}

	return NewBoxSet(boxes...)
}
