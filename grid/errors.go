package grid

import "errors"

var (
	// ErrTooFewPoints indicates a mesh of fewer than MinPoints was requested.
	ErrTooFewPoints = errors.New("grid: mesh needs at least two points")
	// ErrInvalidBounds indicates xmin >= xmax.
	ErrInvalidBounds = errors.New("grid: xmin must be strictly below xmax")
	// ErrNonFinite indicates a NaN or ±Inf bound.
	ErrNonFinite = errors.New("grid: bounds must be finite")
)
