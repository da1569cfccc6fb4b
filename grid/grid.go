package grid

import (
	"fmt"
	"math"
)

// MinPoints is the smallest mesh size a 3-point stencil can operate on.
const MinPoints = 2

// Grid is a uniform 1D coordinate mesh.
//
// Points holds the n coordinates in ascending order; Dx is the constant
// spacing between consecutive points. Treat both fields as read-only:
// every consumer in this module shares the same backing slice.
type Grid struct {
	Points []float64
	Dx     float64
}

// Uniform returns n evenly spaced coordinates covering [xmin, xmax]
// inclusive, with spacing dx = (xmax-xmin)/(n-1).
//
// Errors: ErrNonFinite, ErrTooFewPoints, ErrInvalidBounds.
// Complexity: O(n) time and memory.
func Uniform(xmin, xmax float64, n int) (Grid, error) {
	if !isFinite(xmin) || !isFinite(xmax) {
		return Grid{}, fmt.Errorf("bounds [%v, %v]: %w", xmin, xmax, ErrNonFinite)
	}
	if n < MinPoints {
		return Grid{}, fmt.Errorf("n=%d: %w", n, ErrTooFewPoints)
	}
	if xmin >= xmax {
		return Grid{}, fmt.Errorf("[%g, %g]: %w", xmin, xmax, ErrInvalidBounds)
	}

	dx := (xmax - xmin) / float64(n-1)
	pts := make([]float64, n)
	for i := range pts {
		pts[i] = xmin + float64(i)*dx
	}
	// Pin the last coordinate so the closed interval is covered exactly,
	// independent of accumulated rounding.
	pts[n-1] = xmax

	return Grid{Points: pts, Dx: dx}, nil
}

// Len returns the number of mesh points.
func (g Grid) Len() int { return len(g.Points) }

// Min returns the first (smallest) coordinate.
func (g Grid) Min() float64 { return g.Points[0] }

// Max returns the last (largest) coordinate.
func (g Grid) Max() float64 { return g.Points[len(g.Points)-1] }

// isFinite reports whether v is neither NaN nor ±Inf.
func isFinite(v float64) bool { return !math.IsNaN(v) && !math.IsInf(v, 0) }
