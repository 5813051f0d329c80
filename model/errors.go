package model

import "github.com/pkg/errors"

var (
	// ErrDuplicatePosition is returned when two live cells claim one coordinate.
	ErrDuplicatePosition = errors.New("duplicate live cell position")
	// ErrOutOfBounds is returned when a position lies outside the grid.
	ErrOutOfBounds = errors.New("position out of bounds")
	// ErrInvalidSize is returned for grids with a non-positive dimension.
	ErrInvalidSize = errors.New("invalid grid size")
)
