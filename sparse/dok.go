// SPDX-License-Identifier: MIT
package sparse

import (
	"fmt"
	"math"
	"sort"
)

// key addresses one stored entry. Ints keep the key compact and hash-friendly.
type key struct {
	row, col int
}

// DOK is a dictionary-of-keys sparse matrix: a mutable builder optimized
// for incremental element insertion, not for arithmetic. Freeze it with
// ToCSR before handing it to any numerical routine.
//
// The zero value is not usable; construct with NewDOK.
type DOK struct {
	rows, cols int
	data       map[key]float64
}

// NewDOK returns an empty r×c builder.
//
// Errors: ErrBadShape when r <= 0 or c <= 0.
func NewDOK(r, c int) (*DOK, error) {
	if r <= 0 || c <= 0 {
		return nil, fmt.Errorf("NewDOK(%d,%d): %w", r, c, ErrBadShape)
	}

	return &DOK{rows: r, cols: c, data: make(map[key]float64)}, nil
}

// Dims returns the matrix dimensions (rows, cols).
func (m *DOK) Dims() (int, int) { return m.rows, m.cols }

// NNZ returns the number of explicitly stored entries.
func (m *DOK) NNZ() int { return len(m.data) }

// At returns the entry at (i, j); absent entries read as 0.
//
// Errors: ErrOutOfRange.
func (m *DOK) At(i, j int) (float64, error) {
	if err := m.check(i, j); err != nil {
		return 0, err
	}

	return m.data[key{i, j}], nil
}

// Set stores v at (i, j), overwriting any previous entry. Storing an
// exact 0 removes the entry so NNZ stays tight.
//
// Errors: ErrOutOfRange, ErrNonFinite.
func (m *DOK) Set(i, j int, v float64) error {
	if err := m.check(i, j); err != nil {
		return err
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return fmt.Errorf("Set(%d,%d)=%v: %w", i, j, v, ErrNonFinite)
	}
	if v == 0 {
		delete(m.data, key{i, j})

		return nil
	}
	m.data[key{i, j}] = v

	return nil
}

// Add accumulates v into the entry at (i, j).
//
// Errors: ErrOutOfRange, ErrNonFinite.
func (m *DOK) Add(i, j int, v float64) error {
	if err := m.check(i, j); err != nil {
		return err
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return fmt.Errorf("Add(%d,%d)+=%v: %w", i, j, v, ErrNonFinite)
	}
	m.data[key{i, j}] += v

	return nil
}

// ToCSR freezes the builder into an immutable compressed-sparse-row
// matrix. Entries within each row are sorted by column, so the result
// is fully deterministic regardless of map iteration order.
//
// Complexity: O(nnz log nnz) time, O(nnz) memory.
func (m *DOK) ToCSR() *CSR {
	// Bucket entries per row, then order each bucket by column.
	type entry struct {
		col int
		val float64
	}
	buckets := make([][]entry, m.rows)
	for k, v := range m.data {
		buckets[k.row] = append(buckets[k.row], entry{col: k.col, val: v})
	}

	nnz := len(m.data)
	csr := &CSR{
		rows:   m.rows,
		cols:   m.cols,
		rowPtr: make([]int, m.rows+1),
		colInd: make([]int, 0, nnz),
		val:    make([]float64, 0, nnz),
	}
	for i, bucket := range buckets {
		sort.Slice(bucket, func(a, b int) bool { return bucket[a].col < bucket[b].col })
		for _, e := range bucket {
			csr.colInd = append(csr.colInd, e.col)
			csr.val = append(csr.val, e.val)
		}
		csr.rowPtr[i+1] = len(csr.val)
	}

	return csr
}

// check validates that (i, j) addresses a cell inside the matrix.
func (m *DOK) check(i, j int) error {
	if i < 0 || i >= m.rows || j < 0 || j >= m.cols {
		return fmt.Errorf("index (%d,%d) in %dx%d: %w", i, j, m.rows, m.cols, ErrOutOfRange)
	}

	return nil
}
