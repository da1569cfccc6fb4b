// Package hamiltonian assembles the discretized 1D Schrödinger operator
//
//	H = -d²/dx² + V(x)
//
// on a uniform mesh, using the standard 3-point second-derivative stencil
// under the ħ=1, m=1/2 convention (so the kinetic prefactor is exactly 1).
//
// What:
//
//   - Assemble builds the n×n operator with diagonal 2/dx² + V[i] and
//     both adjacent off-diagonals -1/dx².
//   - Construction goes through a mutable sparse.DOK and is frozen into a
//     sparse.CSR before being returned; the compressed form is part of the
//     contract, since every downstream eigensolve lives on matvec speed.
//   - The matrix is exactly symmetric by construction for finite V.
//   - Hard-wall boundaries are implicit: the stencil is simply truncated
//     at both domain edges, which pins ψ to zero beyond the mesh.
//
// Complexity:
//
//   - Assemble: O(n log n) time (freeze sort), O(n) memory, 3n-2 nonzeros.
//
// Errors:
//
//   - ErrPotentialLength: len(V) differs from the mesh size.
//   - ErrNonFinitePotential: some V[i] is NaN or ±Inf.
package hamiltonian
