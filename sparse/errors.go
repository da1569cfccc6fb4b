// SPDX-License-Identifier: MIT
package sparse

import "errors"

var (
	// ErrBadShape is returned when a matrix with non-positive dimensions is requested.
	ErrBadShape = errors.New("sparse: invalid shape")
	// ErrOutOfRange indicates a row or column index outside the matrix bounds.
	ErrOutOfRange = errors.New("sparse: index out of range")
	// ErrDimensionMismatch indicates vector lengths incompatible with the matrix.
	ErrDimensionMismatch = errors.New("sparse: dimension mismatch")
	// ErrNonFinite indicates a NaN or ±Inf value where a finite entry is required.
	ErrNonFinite = errors.New("sparse: NaN or Inf encountered")
)
