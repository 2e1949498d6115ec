package render

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/muesli/termenv"

	"github.com/katalvlaran/dyck/dyckpath"
	"github.com/katalvlaran/dyck/orientation"
)

// Glyphs of the grid; every cell is two characters wide.
const (
	glyphUp    = `/\`
	glyphDown  = `\/`
	glyphBlank = "  "
)

// cell is one grid position before styling.
type cell struct {
	glyph string
	color string // termenv color spec, empty for unstyled
}

// PathASCII returns the ascii art of path: the row at height h starts with
// h spaces and shows "/\" for every entry ≥ h; rows are printed top first,
// trailing blanks trimmed. The empty path renders as "".
func PathASCII(path dyckpath.Path) (string, error) {
	if !dyckpath.IsDyckPath(path) {
		return "", fmt.Errorf("PathASCII(%v): %w", path, ErrInvalidPath)
	}

	return draw(path, DefaultOptions(), func(int, int) cell {
		return cell{glyph: glyphUp}
	}), nil
}

// OrientationASCII draws o on the grid of its path: the base row shows the
// rows themselves, the box (i, i+h) at height h is "/\" when ascending and
// "\/" when descending.
func OrientationASCII(o orientation.Orientation, opts ...Option) (string, error) {
	if err := orientation.Validate(o); err != nil {
		return "", fmt.Errorf("OrientationASCII: %w: %w", ErrInvalidOrientation, err)
	}
	options := DefaultOptions()
	for _, opt := range opts {
		opt(&options)
	}
	path, err := o.Path()
	if err != nil {
		return "", fmt.Errorf("OrientationASCII: %w: %w", ErrInvalidOrientation, err)
	}

	return draw(path, options, func(i, h int) cell {
		if h == 0 {
			return cell{glyph: glyphUp}
		}
		if o.Ascents.Contains(dyckpath.Box{I: i, J: i + h}) {
			return cell{glyph: glyphUp, color: options.AscentColor}
		}
		return cell{glyph: glyphDown, color: options.DescentColor}
	}), nil
}

// draw lays out the grid of path and styles filled cells through at(i, h).
func draw(path dyckpath.Path, options Options, at func(i, h int) cell) string {
	if len(path) == 0 {
		return ""
	}
	top := slices.Max(path)
	rows := make([]string, 0, top+1)
	for h := top; h >= 0; h-- {
		// 1) collect cells, remembering the last filled one for trimming
		cells := make([]cell, len(path))
		last := -1
		for i, entry := range path {
			if entry >= h {
				cells[i] = at(i, h)
				last = i
			} else {
				cells[i] = cell{glyph: glyphBlank}
			}
		}
		// 2) indent and emit up to the last filled cell
		var sb strings.Builder
		sb.WriteString(strings.Repeat(" ", h))
		for _, c := range cells[:last+1] {
			sb.WriteString(style(options.Profile, c))
		}
		rows = append(rows, sb.String())
	}

	return strings.Join(rows, "\n")
}

// style applies the cell color under profile p.
func style(p termenv.Profile, c cell) string {
	if c.color == "" {
		return c.glyph
	}

	return p.String(c.glyph).Foreground(p.Color(c.color)).String()
}

// LevelsText lists the rows of o by drawing level, highest level first:
//
//	3: 0 4
//	2: 1
//
// Levels come from the longest directed path ending at each row.
func LevelsText(o orientation.Orientation) (string, error) {
	if err := orientation.Validate(o); err != nil {
		return "", fmt.Errorf("LevelsText: %w: %w", ErrInvalidOrientation, err)
	}
	levels, err := o.Levels()
	if err != nil {
		return "", fmt.Errorf("LevelsText: %w: %w", ErrInvalidOrientation, err)
	}
	if len(levels) == 0 {
		return "", nil
	}

	byLevel := make([][]string, slices.Max(levels)+1)
	for row, l := range levels {
		byLevel[l] = append(byLevel[l], strconv.Itoa(row))
	}
	lines := make([]string, 0, len(byLevel))
	for l := len(byLevel) - 1; l >= 0; l-- {
		lines = append(lines, strconv.Itoa(l)+": "+strings.Join(byLevel[l], " "))
	}

	return strings.Join(lines, "\n"), nil
}
