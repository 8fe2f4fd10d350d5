package boundary

import (
	"errors"
	"fmt"
)

var (
	// ErrNilGrid indicates a nil ID grid.
	ErrNilGrid = errors.New("boundary: id grid is nil")
	// ErrMalformedBoundary indicates a ring that could not be closed.
	ErrMalformedBoundary = errors.New("boundary: malformed boundary")
)

// BasinError ties a tracing failure to the region it happened in.
type BasinError struct {
	ID  int32
	Err error
}

func (e *BasinError) Error() string {
	return fmt.Sprintf("boundary: id %d: %v", e.ID, e.Err)
}

func (e *BasinError) Unwrap() error {
	return e.Err
}
