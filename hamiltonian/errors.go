package hamiltonian

import "errors"

var (
	// ErrPotentialLength indicates the potential vector does not match the mesh size.
	ErrPotentialLength = errors.New("hamiltonian: potential length does not match grid")
	// ErrNonFinitePotential indicates a NaN or ±Inf potential value on the mesh.
	ErrNonFinitePotential = errors.New("hamiltonian: potential is not finite on the grid")
)
