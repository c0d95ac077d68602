package models

import "errors"

// Inventory model errors. All of them are validation failures: they are
// returned before any state change or I/O.
var (
	// ErrDuplicateName indicates that the name collides with an existing area or item
	ErrDuplicateName = errors.New("name already exists")

	// ErrIndexOutOfRange indicates that an area or item index does not exist
	ErrIndexOutOfRange = errors.New("index out of range")

	// ErrInvalidReassign indicates an invalid destination for moving a removed area's quantities
	ErrInvalidReassign = errors.New("invalid reassign destination")

	// ErrInvalidThreshold indicates a negative or non-finite threshold
	ErrInvalidThreshold = errors.New("threshold must be a non-negative number")

	// ErrMalformedState indicates a document that violates the matrix invariant
	ErrMalformedState = errors.New("malformed inventory state")
)
