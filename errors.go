package fenwick

import "errors"

var (
	// ErrInvalidCapacity is returned when a tree is constructed with a
	// non-positive number of elements.
	ErrInvalidCapacity = errors.New("fenwick: invalid capacity")

	// ErrIndexOutOfRange is returned by operations given an index outside
	// of the tree. The tree is left unchanged.
	ErrIndexOutOfRange = errors.New("fenwick: index out of range")
)
