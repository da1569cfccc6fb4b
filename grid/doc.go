// Package grid builds uniform one-dimensional coordinate meshes for
// finite-difference discretizations.
//
// What:
//
//   - Grid holds n evenly spaced points covering [xmin, xmax] inclusive
//     and the derived spacing Dx = (xmax-xmin)/(n-1).
//   - The final point is set to xmax exactly rather than accumulated,
//     so the mesh always covers the closed interval.
//   - A Grid is immutable by convention: build once, read everywhere.
//
// Why:
//
//   - Finite-difference stencils: the 3-point second derivative needs a
//     constant spacing and its square.
//   - Quadrature: trapezoidal integrals over the same mesh.
//
// Complexity:
//
//   - Uniform: O(n) time, O(n) memory.
//   - Len/Min/Max: O(1).
//
// Errors:
//
//   - ErrTooFewPoints: fewer than two mesh points requested.
//   - ErrInvalidBounds: xmin is not strictly below xmax.
//   - ErrNonFinite: a bound is NaN or ±Inf.
package grid
