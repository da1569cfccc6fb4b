// Package qwell solves the one-dimensional time-independent Schrödinger
// equation for arbitrary bound potentials on a uniform grid.
//
// 🚀 What is qwell?
//
//	A pure-Go numerical library that discretizes Hψ = Eψ with the classic
//	3-point finite-difference stencil and extracts the lowest bound states
//	with a sparse Lanczos eigensolver:
//		• Grid: uniform 1D meshes with exact endpoint coverage
//		• Sparse: DOK builder → frozen CSR kernels for fast matvec
//		• Hamiltonian: tridiagonal kinetic operator + diagonal potential
//		• Eigen: symmetric Lanczos with full reorthogonalization
//		• Schrödinger: a single Solve facade returning L²-normalized,
//		  ascending-sorted eigenpairs
//		• Potential: stock wells (harmonic, anharmonic, square)
//
// ✨ Why choose qwell?
//
//   - Beginner-friendly – one Solve call from domain to energy levels
//   - Rock-solid guarantees – sentinel errors, deterministic solves
//   - Pure functions – no ambient side effects, safe concurrent calls
//   - Extensible – any caller-supplied potential, tunable solver options
//
// Everything is organized under focused subpackages:
//
//	grid/        — uniform 1D coordinate meshes
//	sparse/      — DOK (mutable) and CSR (frozen) sparse matrices
//	hamiltonian/ — finite-difference Hamiltonian assembly
//	eigen/       — partial symmetric eigensolver (Lanczos)
//	schrodinger/ — the Solve facade and result types
//	potential/   — ready-made potential functions
//
// Quick example:
//
//	V := potential.Harmonic()
//	res, err := schrodinger.Solve(-10, 10, 500, V, nil, 5)
//	if err != nil { ... }
//	fmt.Println(res.Energies) // ≈ [1, 3, 5, 7, 9] under ħ=1, m=1/2
//
// Dive into examples/ and the per-package doc.go files for walkthroughs.
//
//	go get github.com/katalvlaran/qwell
package qwell
