// SPDX-License-Identifier: MIT
package sparse

import (
	"fmt"
	"math"
	"sort"
)

// CSR is a compressed-sparse-row matrix: the frozen, compute-optimized
// counterpart of DOK. All fields are private and never mutated after
// ToCSR returns, so a CSR is safe for concurrent readers.
type CSR struct {
	rows, cols int
	rowPtr     []int     // len rows+1; row i occupies val[rowPtr[i]:rowPtr[i+1]]
	colInd     []int     // column index per stored entry, ascending within a row
	val        []float64 // stored entries
}

// Dims returns the matrix dimensions (rows, cols).
func (m *CSR) Dims() (int, int) { return m.rows, m.cols }

// NNZ returns the number of stored entries.
func (m *CSR) NNZ() int { return len(m.val) }

// At returns the entry at (i, j); absent entries read as 0.
//
// Errors: ErrOutOfRange.
// Complexity: O(log nnz(row i)) via binary search.
func (m *CSR) At(i, j int) (float64, error) {
	if i < 0 || i >= m.rows || j < 0 || j >= m.cols {
		return 0, fmt.Errorf("index (%d,%d) in %dx%d: %w", i, j, m.rows, m.cols, ErrOutOfRange)
	}
	lo, hi := m.rowPtr[i], m.rowPtr[i+1]
	p := lo + sort.SearchInts(m.colInd[lo:hi], j)
	if p < hi && m.colInd[p] == j {
		return m.val[p], nil
	}

	return 0, nil
}

// MulVec computes dst = A·x, overwriting dst.
// dst and x must not alias.
//
// Errors: ErrDimensionMismatch when len(x) != cols or len(dst) != rows.
// Complexity: O(nnz), deterministic accumulation order (row-major,
// ascending columns).
func (m *CSR) MulVec(dst, x []float64) error {
	if len(x) != m.cols {
		return fmt.Errorf("MulVec: len(x)=%d, cols=%d: %w", len(x), m.cols, ErrDimensionMismatch)
	}
	if len(dst) != m.rows {
		return fmt.Errorf("MulVec: len(dst)=%d, rows=%d: %w", len(dst), m.rows, ErrDimensionMismatch)
	}

	for i := 0; i < m.rows; i++ {
		sum := 0.0
		for p := m.rowPtr[i]; p < m.rowPtr[i+1]; p++ {
			sum += m.val[p] * x[m.colInd[p]]
		}
		dst[i] = sum
	}

	return nil
}

// IsSymmetric reports whether |A[i,j]-A[j,i]| <= tol for every stored
// entry. Non-square matrices are never symmetric.
//
// Complexity: O(nnz log nnz).
func (m *CSR) IsSymmetric(tol float64) bool {
	if m.rows != m.cols {
		return false
	}
	for i := 0; i < m.rows; i++ {
		for p := m.rowPtr[i]; p < m.rowPtr[i+1]; p++ {
			mirror, err := m.At(m.colInd[p], i)
			if err != nil || math.Abs(m.val[p]-mirror) > tol {
				return false
			}
		}
	}

	return true
}
