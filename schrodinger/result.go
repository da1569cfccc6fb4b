package schrodinger

import (
	"fmt"

	"github.com/katalvlaran/qwell/grid"
)

// Result is the complete output of one solve. It is a plain value
// holder: the core keeps no state between calls and callers own the
// slices exclusively.
type Result struct {
	// Energies holds the k lowest eigenvalues, ascending.
	Energies []float64
	// Waves holds the matching wavefunctions: Waves[i] is ψ_i sampled on
	// the mesh, L²-normalized, paired with Energies[i].
	Waves [][]float64
	// Grid is the mesh the solve ran on.
	Grid grid.Grid
}

// States returns the number of computed eigenpairs.
func (r *Result) States() int { return len(r.Energies) }

// Density returns the probability density |ψ_i|² per mesh point.
//
// Errors: ErrStateIndex.
func (r *Result) Density(i int) ([]float64, error) {
	if i < 0 || i >= len(r.Waves) {
		return nil, fmt.Errorf("Density(%d) of %d states: %w", i, len(r.Waves), ErrStateIndex)
	}
	d := make([]float64, len(r.Waves[i]))
	for j, p := range r.Waves[i] {
		d[j] = p * p
	}

	return d, nil
}
