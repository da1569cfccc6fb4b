// SPDX-License-Identifier: MIT
// Package schrodinger: sentinel error set of the Solve facade.
// Facade-level failures get their own sentinels; failures that originate
// in an inner package are re-exported as aliases so errors.Is matches at
// either level without double-wrapping.
package schrodinger

import (
	"errors"

	"github.com/katalvlaran/qwell/eigen"
	"github.com/katalvlaran/qwell/hamiltonian"
)

var (
	// ErrInvalidDomain indicates xmin >= xmax, non-finite bounds, or n < 2.
	ErrInvalidDomain = errors.New("schrodinger: invalid domain")
	// ErrNilPotential indicates a nil potential callback.
	ErrNilPotential = errors.New("schrodinger: potential function is nil")
	// ErrStateIndex indicates a Result state index outside [0, k).
	ErrStateIndex = errors.New("schrodinger: state index out of range")
)

// ErrInvalidEigenCount indicates k <= 0 or k >= n.
// Alias of the eigensolver sentinel; errors.Is matches both names.
var ErrInvalidEigenCount = eigen.ErrInvalidCount

// ErrNoConvergence indicates the eigensolver ran out of iteration budget.
// Alias of eigen.ErrNotConverged.
var ErrNoConvergence = eigen.ErrNotConverged

// ErrNonFinitePotential indicates a NaN or ±Inf potential value on the mesh.
// Alias of the assembler sentinel.
var ErrNonFinitePotential = hamiltonian.ErrNonFinitePotential

// ErrPotentialLength indicates the callback returned a wrong-sized vector.
// Alias of the assembler sentinel.
var ErrPotentialLength = hamiltonian.ErrPotentialLength
