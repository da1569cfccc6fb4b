// SPDX-License-Identifier: MIT
// Package sparse provides the two sparse-matrix representations used by
// the solver pipeline: a mutable DOK builder and a frozen CSR form.
//
// What:
//
//   - DOK (dictionary of keys) stores entries in a map keyed by (row, col).
//     Cheap to mutate, useless for arithmetic. Build phase only.
//   - CSR (compressed sparse row) stores the same entries in three flat
//     slices sorted by row then column. Cheap matrix-vector products,
//     immutable after construction.
//   - (*DOK).ToCSR freezes a builder into the compute form; this split of
//     "cheap to mutate" vs "cheap to compute with" is deliberate and every
//     solver-facing consumer receives only the frozen form.
//
// Why:
//
//   - Discretized 1D operators have O(n) nonzeros out of O(n²) cells;
//     a dense matrix wastes both memory and matvec time.
//   - Iterative eigensolvers reduce to repeated y = A·x; CSR makes that
//     a single O(nnz) pass with  deterministic accumulation order.
//
// Complexity:
//
//   - DOK Set/Add/At: O(1) expected.
//   - ToCSR: O(nnz log nnz) (per-row column sort).
//   - CSR MulVec: O(nnz). CSR At: O(log nnz(row)).
//
// Errors:
//
//   - ErrBadShape: non-positive dimensions requested.
//   - ErrOutOfRange: row/column index outside the matrix.
//   - ErrDimensionMismatch: vector lengths incompatible with the matrix.
//   - ErrNonFinite: NaN or ±Inf value rejected at ingestion.
package sparse
