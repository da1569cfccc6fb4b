package potential

import (
	"math"

	"github.com/katalvlaran/qwell/schrodinger"
)

// DefaultCubic is the textbook anharmonic perturbation strength.
const DefaultCubic = 0.05

// Harmonic returns V(x) = x².
func Harmonic() schrodinger.Potential {
	return func(x []float64, _ any) []float64 {
		v := make([]float64, len(x))
		for i, xi := range x {
			v[i] = xi * xi
		}

		return v
	}
}

// Anharmonic returns V(x) = x² + cubic·x³.
func Anharmonic(cubic float64) schrodinger.Potential {
	return func(x []float64, _ any) []float64 {
		v := make([]float64, len(x))
		for i, xi := range x {
			v[i] = xi*xi + cubic*xi*xi*xi
		}

		return v
	}
}

// SquareWell returns a finite well: 0 for |x| <= halfWidth, depth outside.
func SquareWell(depth, halfWidth float64) schrodinger.Potential {
	return func(x []float64, _ any) []float64 {
		v := make([]float64, len(x))
		for i, xi := range x {
			if math.Abs(xi) > halfWidth {
				v[i] = depth
			}
		}

		return v
	}
}
