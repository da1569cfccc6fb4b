// Package schrodinger exposes the single high-level operation of this
// module: solve the 1D time-independent Schrödinger equation for a
// caller-supplied potential and return the lowest bound states.
//
// 🚀 What does Solve do?
//
//	One pure, stateless transform
//
//	  (xmin, xmax, n, potential, params, k) → (energies, waves, grid)
//
//	executed as: uniform mesh → potential evaluation → sparse Hamiltonian
//	assembly (DOK build, CSR freeze) → partial Lanczos eigensolve →
//	trapezoidal L² normalization. Energies come back ascending with wave
//	columns paired; waves satisfy ∫|ψ|²dx = 1 on the mesh.
//
// ✨ Guarantees:
//
//   - No ambient side effects: no printing, no plotting, no globals.
//     Reporting and plotting live in downstream consumers (see cmd/qwell
//     and examples/).
//   - Either a complete, normalized eigenpair set or an error — never a
//     partial result.
//   - Concurrent independent calls are safe: every call owns its grid,
//     potential vector and operator.
//   - Deterministic: identical inputs (including WithSeed) reproduce the
//     result bit for bit.
//
// ⚙️ Usage:
//
//	V := func(x []float64, params any) []float64 {
//	  v := make([]float64, len(x))
//	  for i, xi := range x { v[i] = xi * xi }
//	  return v
//	}
//	res, err := schrodinger.Solve(-10, 10, 500, V, nil, 5)
//	if err != nil { ... }
//	fmt.Println(res.Energies) // ≈ [1 3 5 7 9] (ħ=1, m=1/2)
//
// Errors (all surfaced immediately, none retried internally):
//
//   - ErrInvalidDomain: xmin >= xmax, non-finite bounds, or n < 2.
//   - ErrInvalidEigenCount: k <= 0 or k >= n.
//   - ErrNilPotential / ErrPotentialLength: malformed potential callback.
//   - ErrNonFinitePotential: NaN/±Inf potential value on the mesh.
//   - ErrNoConvergence: the eigensolver exhausted its iteration budget
//     (only reachable with a caller-restricted WithMaxIterations budget).
//
// A note on confinement: an asymmetric potential such as x² + 0.05·x³ is
// non-confining on one side for large |x|; choosing a domain where the
// implicit hard walls remain physical is the caller's responsibility.
// The core validates finiteness only.
package schrodinger
