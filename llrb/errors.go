package llrb

import "errors"

var (
	// ErrInvalidConfig signals an invalid tree configuration.
	ErrInvalidConfig = errors.New("llrb: invalid configuration")
	// ErrIndexOutOfBounds signals an invalid position.
	ErrIndexOutOfBounds = errors.New("llrb: index out of bounds")
	// ErrStaleIndex signals use of an index whose node has been removed.
	ErrStaleIndex = errors.New("llrb: stale index")
	// ErrForeignIndex signals an index used with a tree it does not belong to.
	ErrForeignIndex = errors.New("llrb: index belongs to a different tree")
	// ErrCompare wraps errors returned by a key comparator.
	ErrCompare = errors.New("llrb: key comparison failed")
	// ErrHibernated signals use of a tree which is currently hibernated.
	ErrHibernated = errors.New("llrb: tree is hibernated")
	// ErrCorrupted signals a violated tree invariant.
	ErrCorrupted = errors.New("llrb: tree invariant violated")
)
