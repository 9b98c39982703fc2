package life

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidSize indicates a non-positive field dimension.
	ErrInvalidSize = errors.New("life: width and height must be positive")

	// ErrOutOfBounds indicates coordinates outside the field.
	ErrOutOfBounds = errors.New("life: coordinates out of bounds")
)

// BoundsError is the panic value raised when a cell is addressed outside the
// field. It unwraps to ErrOutOfBounds.
type BoundsError struct {
	X, Y          int
	Width, Height int
}

func (e *BoundsError) Error() string {
	return fmt.Sprintf("life: cell (%d,%d) outside %dx%d field", e.X, e.Y, e.Width, e.Height)
}

func (e *BoundsError) Unwrap() error {
	return ErrOutOfBounds
}
