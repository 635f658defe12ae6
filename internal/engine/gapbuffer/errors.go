package gapbuffer

import "errors"

// Errors returned by gap buffer operations. All of them signal contract
// violations by the caller, not recoverable runtime conditions.
var (
	// ErrInvalidConfiguration indicates a configured gap size of 1 or less.
	ErrInvalidConfiguration = errors.New("gap size must be greater than 1")

	// ErrInvalidArgument indicates a negative count passed to a movement
	// or deletion operation.
	ErrInvalidArgument = errors.New("count must not be negative")

	// ErrOutOfBounds indicates indexing or slicing outside the content.
	ErrOutOfBounds = errors.New("position out of range")
)
