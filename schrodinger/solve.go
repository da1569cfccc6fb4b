package schrodinger

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/integrate"

	"github.com/katalvlaran/qwell/eigen"
	"github.com/katalvlaran/qwell/grid"
	"github.com/katalvlaran/qwell/hamiltonian"
)

// Potential maps the mesh coordinates (plus an opaque parameter payload)
// to a potential-energy value per point. It must be pure: return exactly
// len(x) finite values and mutate neither x nor params.
type Potential func(x []float64, params any) []float64

// phaseTol picks the first significant wave entry when fixing the
// global sign. The global phase is physically meaningless; pinning it
// keeps repeated solves comparable.
const phaseTol = 1e-8

// Solve computes the k lowest bound states of a particle in the
// potential v on an n-point uniform mesh over [xmin, xmax], under the
// ħ=1, m=1/2 convention of the 3-point stencil. Hard walls are implicit
// at the domain edges.
//
// The returned energies are ascending; each wave is L²-normalized on
// the mesh (trapezoidal quadrature) and paired with its energy. params
// is forwarded to v unmodified.
//
// Errors: ErrInvalidDomain, ErrInvalidEigenCount, ErrNilPotential,
// ErrPotentialLength, ErrNonFinitePotential, ErrNoConvergence.
func Solve(xmin, xmax float64, n int, v Potential, params any, k int, opts ...Option) (*Result, error) {
	if v == nil {
		return nil, fmt.Errorf("Solve: %w", ErrNilPotential)
	}

	// Stage 1: mesh.
	g, err := grid.Uniform(xmin, xmax, n)
	if err != nil {
		return nil, fmt.Errorf("Solve: %v: %w", err, ErrInvalidDomain)
	}
	if k <= 0 || k >= n {
		return nil, fmt.Errorf("Solve: k=%d with %d grid points: %w", k, n, ErrInvalidEigenCount)
	}

	// Stage 2: potential evaluation (finiteness is vetted by Assemble).
	vals := v(g.Points, params)
	if len(vals) != n {
		return nil, fmt.Errorf("Solve: potential returned %d values for %d points: %w",
			len(vals), n, ErrPotentialLength)
	}

	// Stage 3: assembly, DOK build frozen to CSR.
	h, err := hamiltonian.Assemble(g, vals)
	if err != nil {
		return nil, fmt.Errorf("Solve: %w", err)
	}

	// Stage 4: partial eigensolve, ascending by contract.
	o := gatherOptions(opts...)
	energies, waves, err := eigen.Lanczos(h, k, o.eigenOptions())
	if err != nil {
		return nil, fmt.Errorf("Solve: %w", err)
	}

	// Stage 5: physical normalization, ∫|ψ|²dx = 1 per wave.
	for _, psi := range waves {
		normalizeWave(g, psi)
	}

	return &Result{Energies: energies, Waves: waves, Grid: g}, nil
}

// normalizeWave rescales psi in place to unit probability on the mesh
// and pins the global sign so the first significant entry is positive.
func normalizeWave(g grid.Grid, psi []float64) {
	dens := make([]float64, len(psi))
	for i, p := range psi {
		dens[i] = p * p
	}
	total := integrate.Trapezoidal(g.Points, dens)
	floats.Scale(1/math.Sqrt(total), psi)

	for _, p := range psi {
		if math.Abs(p) > phaseTol {
			if p < 0 {
				floats.Scale(-1, psi)
			}

			break
		}
	}
}
