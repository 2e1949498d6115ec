package orientation

import (
	"fmt"
	"strconv"

	"github.com/katalvlaran/dyck/dyckpath"
)

// MaxSize bounds the row count N accepted by Path, Validate and
// IsOrientation; N is untrusted input and sizes the reconstructed path.
const MaxSize = 1 << 10

// Orientation assigns a direction to every box under a length-N Dyck path:
// Ascents hold the boxes read as i→j, Descents the boxes read as j→i.
//
// Orientation is a value: its BoxSets are immutable, equality is structural
// (Equal, Key) and two orientations built from the same boxes compare equal
// regardless of input order.
type Orientation struct {
	N        int             // number of rows
	Ascents  dyckpath.BoxSet // boxes (i,j) oriented i→j
	Descents dyckpath.BoxSet // boxes (i,j) oriented j→i
}

// New builds an Orientation from box lists; duplicates collapse.
// New does not validate; call Validate or IsOrientation.
func New(n int, ascents, descents []dyckpath.Box) Orientation {
	return Orientation{
		N:        n,
		Ascents:  dyckpath.NewBoxSet(ascents...),
		Descents: dyckpath.NewBoxSet(descents...),
	}
}

// Key returns a canonical string such that o.Key() == p.Key() iff o.Equal(p).
func (o Orientation) Key() string {
	return strconv.Itoa(o.N) + "|" + o.Ascents.Key() + "|" + o.Descents.Key()
}

// Equal reports structural equality.
func (o Orientation) Equal(p Orientation) bool {
	return o.N == p.N && o.Ascents.Equal(p.Ascents) && o.Descents.Equal(p.Descents)
}

// String renders o as "(n, {ascents}, {descents})".
func (o Orientation) String() string {
	return fmt.Sprintf("(%d, %s, %s)", o.N, o.Ascents, o.Descents)
}

// Path reconstructs the underlying path: entry i counts the boxes, ascending
// or descending, whose lower row is i. Returns ErrNegativeSize,
// ErrSizeTooLarge or ErrIndexOutOfRange when the boxes cannot be counted;
// the result is not checked for Dyck-ness.
//
// For every orientation returned by AllOrientations(p), Path() equals p.
func (o Orientation) Path() (dyckpath.Path, error) {
	if o.N < 0 {
		return nil, fmt.Errorf("Path: n=%d: %w", o.N, ErrNegativeSize)
	}
	if o.N > MaxSize {
		return nil, fmt.Errorf("Path: n=%d > %d: %w", o.N, MaxSize, ErrSizeTooLarge)
	}
	path := make(dyckpath.Path, o.N)
	for _, set := range []dyckpath.BoxSet{o.Ascents, o.Descents} {
		for b := range set.All() {
			if b.I < 0 || b.I >= o.N {
				return nil, fmt.Errorf("Path: box %v with n=%d: %w", b, o.N, ErrIndexOutOfRange)
			}
			path[b.I]++
		}
	}

	return path, nil
}
