package orientation

import "github.com/katalvlaran/dyck/dyckpath"

// Option configures Validate and AllOrientations.
type Option func(*Options)

// Options holds the shared settings.
type Options struct {
	// Cache memoizes BoxesUnderPath. Nil means compute on every call.
	Cache *dyckpath.BoxCache

	// OnOrientation, if non-nil, is invoked by AllOrientations once per
	// ordering with the induced orientation and whether it was new.
	OnOrientation func(o Orientation, fresh bool)
}

// DefaultOptions returns Options with no cache and no hooks.
func DefaultOptions() Options {
	return Options{Cache: nil, OnOrientation: nil}
}

// WithBoxCache returns an Option that routes box derivation through c.
// Passing nil has no effect.
func WithBoxCache(c *dyckpath.BoxCache) Option {
	return func(o *Options) {
		if c != nil {
			o.Cache = c
		}
	}
}

// WithOnOrientation returns an Option that installs fn as a per-ordering hook.
// Panics on nil: a hook option without a hook is a programming error.
func WithOnOrientation(fn func(o Orientation, fresh bool)) Option {
	if fn == nil {
		panic("orientation: WithOnOrientation(nil)")
	}
	return func(o *Options) {
		o.OnOrientation = fn
	}
}

// resolve applies opts over the defaults.
func resolve(opts []Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return o
}

// boxes derives the boxes of path, through the cache when one is set.
func (o Options) boxes(path []int) dyckpath.BoxSet {
	if o.Cache != nil {
		return o.Cache.Boxes(path)
	}

	return dyckpath.BoxesUnderPath(path)
}
