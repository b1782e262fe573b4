package lazyseg

import "errors"

var (
	// ErrInvalidConfig signals an invalid tree configuration.
	ErrInvalidConfig = errors.New("lazyseg: invalid configuration")
	// ErrInvalidSize signals a request for a tree without leaves.
	ErrInvalidSize = errors.New("lazyseg: tree size must be at least 1")
	// ErrInvalidRange signals a range [l, r) with l < 0, l > r or r > Len().
	ErrInvalidRange = errors.New("lazyseg: invalid range")
	// ErrInvariant signals a broken structural invariant, found by Check.
	ErrInvariant = errors.New("lazyseg: invariant violated")
)
