package core

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidDimensions = errors.New("width and height must be positive")
	ErrMissingRows       = errors.New("not enough rows for declared height")
	ErrRowTooShort       = errors.New("row shorter than declared width")
	ErrOutOfBounds       = errors.New("position outside the grid")
	ErrUnknownGlyph      = errors.New("glyph does not denote an agent")
)

// WrapGridError adds row context to an error raised while building a grid
func WrapGridError(row int, err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("grid row %d: %w", row, err)
}

// WrapDimensionError adds the declared size to a dimension error
func WrapDimensionError(width, height int, err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("grid %dx%d: %w", width, height, err)
}
