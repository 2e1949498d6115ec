package dyckpath_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/dyck/dyckpath"
)

// TestIsDyckPath covers the step bound, negativity and the trailing zero.
func TestIsDyckPath(t *testing.T) {
	cases := []struct {
		name string
		path []int
		want bool
	}{
		{"empty", []int{}, true},
		{"nil", nil, true},
		{"single zero", []int{0}, true},
		{"single one", []int{1}, false},
		{"flat", []int{0, 0, 0}, true},
		{"first box", []int{1, 0, 0}, true},
		{"middle box", []int{0, 1, 0}, true},
		{"two boxes", []int{1, 1, 0}, true},
		{"staircase", []int{2, 1, 0}, true},
		{"rise too steep", []int{1, 2, 0}, false},
		{"drop by two", []int{2, 0, 0}, false},
		{"negative entry", []int{0, -1, 0}, false},
		{"no trailing zero", []int{1, 1, 1}, false},
		{"long valid", []int{1, 3, 2, 2, 1, 0}, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, dyckpath.IsDyckPath(tc.path))
		})
	}
}

// TestIsPrimitive checks that only the last row may touch the baseline.
func TestIsPrimitive(t *testing.T) {
	assert.True(t, dyckpath.IsPrimitive(nil))
	assert.True(t, dyckpath.IsPrimitive([]int{0}))
	assert.False(t, dyckpath.IsPrimitive([]int{0, 0, 0}))
	assert.False(t, dyckpath.IsPrimitive([]int{1, 0, 0}))
	assert.False(t, dyckpath.IsPrimitive([]int{0, 1, 0}))
	assert.True(t, dyckpath.IsPrimitive([]int{1, 1, 0}))
	assert.True(t, dyckpath.IsPrimitive([]int{2, 1, 0}))
	// no zero at all: not primitive, Dyck-ness is not its concern
	assert.False(t, dyckpath.IsPrimitive([]int{1, 1}))
}

// TestNewPath verifies validation and defensive copying.
func TestNewPath(t *testing.T) {
	src := []int{2, 1, 0}
	p, err := dyckpath.NewPath(src...)
	require.NoError(t, err)
	src[0] = 9
	assert.Equal(t, dyckpath.Path{2, 1, 0}, p, "NewPath must copy its input")

	_, err = dyckpath.NewPath(1, 2, 0)
	assert.True(t, errors.Is(err, dyckpath.ErrInvalidPath))
}

// TestPath_KeyStringSum exercises the textual forms and the area.
func TestPath_KeyStringSum(t *testing.T) {
	p := dyckpath.Path{1, 3, 2, 2, 1, 0}
	assert.Equal(t, "1,3,2,2,1,0", p.Key())
	assert.Equal(t, "(1, 3, 2, 2, 1, 0)", p.String())
	assert.Equal(t, 9, p.Sum())
	assert.Equal(t, 6, p.Len())

	assert.Equal(t, "", dyckpath.Path{}.Key())
	assert.Equal(t, "()", dyckpath.Path{}.String())
	assert.Equal(t, "(0,)", dyckpath.Path{0}.String())

	c := p.Clone()
	c[0] = 0
	assert.Equal(t, 1, p[0], "Clone must not alias")
	assert.True(t, p.Equal(dyckpath.Path{1, 3, 2, 2, 1, 0}))
}

// TestParsePath accepts the documented spellings and rejects garbage.
func TestParsePath(t *testing.T) {
	for _, in := range []string{"2,1,0", "(2, 1, 0)", "[2 1 0]", " 2 ,1, 0 "} {
		p, err := dyckpath.ParsePath(in)
		require.NoError(t, err, in)
		assert.Equal(t, dyckpath.Path{2, 1, 0}, p, in)
	}

	p, err := dyckpath.ParsePath("(0,)")
	require.NoError(t, err)
	assert.Equal(t, dyckpath.Path{0}, p)

	p, err = dyckpath.ParsePath("()")
	require.NoError(t, err)
	assert.Empty(t, p)

	_, err = dyckpath.ParsePath("1,x,0")
	assert.ErrorIs(t, err, dyckpath.ErrParsePath)
}

// TestCompare orders lexicographically with shorter prefixes first.
func TestCompare(t *testing.T) {
	assert.Equal(t, -1, dyckpath.Compare(dyckpath.Path{0, 0, 0}, dyckpath.Path{0, 1, 0}))
	assert.Equal(t, 1, dyckpath.Compare(dyckpath.Path{2, 1, 0}, dyckpath.Path{1, 1, 0}))
	assert.Equal(t, 0, dyckpath.Compare(dyckpath.Path{1, 0}, dyckpath.Path{1, 0}))
	assert.Equal(t, -1, dyckpath.Compare(dyckpath.Path{0}, dyckpath.Path{0, 0}))
}
