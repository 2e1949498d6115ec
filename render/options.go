package render

import "github.com/muesli/termenv"

// Option configures the renderer.
type Option func(*Options)

// Options holds the styling settings.
type Options struct {
	// Profile selects the color capability; termenv.Ascii disables styling.
	Profile termenv.Profile
	// AscentColor and DescentColor are termenv color specs ("1", "#ff0000").
	AscentColor  string
	DescentColor string
}

// DefaultOptions returns plain output with red ascents and blue descents
// once a color profile is chosen.
func DefaultOptions() Options {
	return Options{
		Profile:      termenv.Ascii,
		AscentColor:  "1",
		DescentColor: "4",
	}
}

// WithProfile returns an Option selecting the color profile.
func WithProfile(p termenv.Profile) Option {
	return func(o *Options) {
		o.Profile = p
	}
}

// WithColors returns an Option overriding the ascent and descent colors.
// Empty strings keep the current values.
func WithColors(ascent, descent string) Option {
	return func(o *Options) {
		if ascent != "" {
			o.AscentColor = ascent
		}
		if descent != "" {
			o.DescentColor = descent
		}
	}
}
