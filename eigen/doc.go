// Package eigen extracts the k algebraically smallest eigenpairs of a
// large, sparse, real-symmetric operator.
//
// 🚀 How?
//
//	Symmetric Lanczos with full reorthogonalization: the operator is only
//	touched through matrix-vector products, the growing Krylov basis is
//	kept orthonormal, and the small tridiagonal projection is diagonalized
//	with gonum's dense symmetric eigensolver at fixed check intervals.
//	A Ritz pair is accepted once its residual estimate drops below the
//	tolerance; if the budget reaches the operator dimension the projection
//	is exact and the solve finishes unconditionally.
//
// ✨ Key properties:
//
//   - Matrix-free: anything implementing Operator (Dims + MulVec) works;
//     sparse.CSR from this module is the intended producer.
//   - Real arithmetic throughout: a symmetric operator has a real
//     spectrum, so there is no imaginary residue to discard — what a
//     general complex solver would coerce away is here a guarantee.
//   - Sorted contract: eigenvalues return ascending with eigenvector
//     columns reordered to match, so no caller ever re-sorts.
//   - Deterministic: the start vector comes from a seeded source
//     (Options.Seed); identical inputs give identical output.
//   - Breakdown-safe: an invariant subspace smaller than k triggers a
//     restart with a fresh direction orthogonal to everything found.
//
// Performance:
//
//   - Time:   O(m·nnz + m²·n) for m Lanczos steps on an n-dim operator.
//   - Memory: O(m·n) for the orthonormal basis.
//
// Errors:
//
//   - ErrNilOperator, ErrNonSquare: malformed operator.
//   - ErrInvalidCount: k < 1 or k >= n (a partial solver cannot return
//     the full spectrum).
//   - ErrNotConverged: iteration budget exhausted before k residuals
//     passed the tolerance. Retry policy belongs to the caller.
package eigen
