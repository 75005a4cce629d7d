package assembly

import "errors"

var (
	// ErrNilRecord is returned when a nil symbol record reaches the builder.
	ErrNilRecord = errors.New("assembly: nil symbol record")
	// ErrNilResult is returned by repositories asked to store a nil result.
	ErrNilResult = errors.New("assembly: nil result")
	// ErrEmptyAssemblyID is returned when a result has no assembly id.
	ErrEmptyAssemblyID = errors.New("assembly: empty assembly id")
	// ErrNotFound is returned when a stored result does not exist.
	ErrNotFound = errors.New("assembly: result not found")
)
