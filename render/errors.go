package render

import "errors"

var (
	// ErrInvalidPath indicates the input is not a Dyck path.
	ErrInvalidPath = errors.New("render: invalid path")

	// ErrInvalidOrientation indicates the input is not a valid acyclic orientation.
	ErrInvalidOrientation = errors.New("render: invalid orientation")
)
