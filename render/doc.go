// Package render draws Dyck paths and their orientations as text.
//
// It is a consumer of packages dyckpath and orientation: every entry point
// validates its input first and fails fast with ErrInvalidPath or
// ErrInvalidOrientation instead of drawing garbage. Inputs are never mutated.
//
// Path layout, one "/\" per box, rows of boxes stacked by height:
//
//	  /\
//	 /\/\
//	/\/\/\       PathASCII((2,1,0))
//
// OrientationASCII uses the same grid and draws ascending boxes as "/\" and
// descending boxes as "\/"; with a color profile (termenv) ascents are red
// and descents blue.
package render
