package loader

import "errors"

var (
	// ErrMalformedLine indicates a token that is not a non-negative integer.
	ErrMalformedLine = errors.New("loader: malformed line")

	// ErrBadHeader indicates an unparsable legacy header value.
	ErrBadHeader = errors.New("loader: bad legacy header")
)

// Instance is a parsed input file.
type Instance struct {
	// Subsets is the ordered subset collection.
	Subsets [][]int

	// Legacy reports whether the first two lines look like a legacy header.
	Legacy bool

	// HeaderStripped reports whether the legacy header was removed.
	HeaderStripped bool

	// MaxElement is the legacy header's largest element ID, or -1.
	MaxElement int

	// DeclaredSets is the legacy header's subset count, or -1.
	DeclaredSets int
}

// Option configures Load.
type Option func(*Options)

// Options holds loader settings.
type Options struct {
	// ForceNewFormat keeps a sniffed legacy header as ordinary subsets.
	ForceNewFormat bool
}

// DefaultOptions returns Options with legacy header stripping enabled.
func DefaultOptions() Options {
	return Options{ForceNewFormat: false}
}

// WithForceNewFormat disables legacy header stripping.
func WithForceNewFormat() Option {
	return func(o *Options) {
		o.ForceNewFormat = true
	}
}
