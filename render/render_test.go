package render_test

import (
	"strings"
	"testing"

	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/dyck/dyckpath"
	"github.com/katalvlaran/dyck/orientation"
	"github.com/katalvlaran/dyck/render"
)

// lines joins rows with newlines for readable expectations.
func lines(rows ...string) string { return strings.Join(rows, "\n") }

// TestPathASCII pins the reference drawings.
func TestPathASCII(t *testing.T) {
	cases := []struct {
		path dyckpath.Path
		want string
	}{
		{dyckpath.Path{0, 0, 0}, `/\/\/\`},
		{dyckpath.Path{1, 0, 0}, lines(` /\`, `/\/\/\`)},
		{dyckpath.Path{0, 1, 0}, lines(`   /\`, `/\/\/\`)},
		{dyckpath.Path{1, 1, 0}, lines(` /\/\`, `/\/\/\`)},
		{dyckpath.Path{2, 1, 0}, lines(`  /\`, ` /\/\`, `/\/\/\`)},
		{dyckpath.Path{1, 3, 2, 2, 1, 0}, lines(
			`     /\`,
			`    /\/\/\`,
			` /\/\/\/\/\`,
			`/\/\/\/\/\/\`)},
		{dyckpath.Path{}, ""},
	}
	for _, tc := range cases {
		got, err := render.PathASCII(tc.path)
		require.NoError(t, err)
		assert.Equal(t, tc.want, got, "path %v", tc.path)
	}
}

// TestPathASCII_Invalid fails fast.
func TestPathASCII_Invalid(t *testing.T) {
	_, err := render.PathASCII(dyckpath.Path{1, 2, 0})
	assert.ErrorIs(t, err, render.ErrInvalidPath)
}

// TestOrientationASCII_Plain draws ascents and descents distinctly.
func TestOrientationASCII_Plain(t *testing.T) {
	// (2,1,0) with ascent (0,1) and descents (0,2),(1,2)
	o := orientation.New(3,
		[]dyckpath.Box{{I: 0, J: 1}},
		[]dyckpath.Box{{I: 0, J: 2}, {I: 1, J: 2}})
	got, err := render.OrientationASCII(o)
	require.NoError(t, err)
	assert.Equal(t, lines(`  \/`, ` /\\/`, `/\/\/\`), got)
}

// TestOrientationASCII_Example draws the reference orientation.
func TestOrientationASCII_Example(t *testing.T) {
	got, err := render.OrientationASCII(orientation.Example())
	require.NoError(t, err)
	// height 1: (0,1)d (1,2)d (2,3)a (3,4)a (4,5)a
	// height 2: (1,3)d (2,4)a (3,5)a
	// height 3: (1,4)a
	assert.Equal(t, lines(
		`     /\`,
		`    \//\/\`,
		` \/\//\/\/\`,
		`/\/\/\/\/\/\`), got)
}

// TestOrientationASCII_Colored emits ANSI sequences only with a profile.
func TestOrientationASCII_Colored(t *testing.T) {
	o := orientation.Example()
	plain, err := render.OrientationASCII(o)
	require.NoError(t, err)
	assert.NotContains(t, plain, "\x1b[")

	colored, err := render.OrientationASCII(o, render.WithProfile(termenv.ANSI), render.WithColors("2", ""))
	require.NoError(t, err)
	assert.Contains(t, colored, "\x1b[")
	assert.Contains(t, colored, "32m") // ascents green
	assert.Contains(t, colored, "34m") // descents keep the default blue
}

// TestOrientationASCII_Invalid rejects a cyclic orientation.
func TestOrientationASCII_Invalid(t *testing.T) {
	cyclic := orientation.New(3,
		[]dyckpath.Box{{I: 0, J: 1}, {I: 1, J: 2}},
		[]dyckpath.Box{{I: 0, J: 2}})
	_, err := render.OrientationASCII(cyclic)
	assert.ErrorIs(t, err, render.ErrInvalidOrientation)
	assert.ErrorIs(t, err, orientation.ErrThreeCycle)

	_, err = render.LevelsText(cyclic)
	assert.ErrorIs(t, err, render.ErrInvalidOrientation)
}

// TestLevelsText groups rows by level.
func TestLevelsText(t *testing.T) {
	got, err := render.LevelsText(orientation.Example())
	require.NoError(t, err)
	assert.Equal(t, lines("4: 5", "3: 0 4", "2: 1", "1: 3", "0: 2"), got)

	got, err = render.LevelsText(orientation.Orientation{N: 0})
	require.NoError(t, err)
	assert.Equal(t, "", got)
}
