// Package potential provides ready-made potential functions for the
// schrodinger.Solve facade.
//
// What:
//
//   - Harmonic: V(x) = x², the exactly solvable reference well
//     (spectrum 2n+1 under the ħ=1, m=1/2 stencil convention).
//   - Anharmonic: V(x) = x² + c·x³, the classic perturbed oscillator.
//     Note it is non-confining on one side for large |x|; pick a domain
//     where the implicit hard walls stay physical.
//   - SquareWell: a finite well of given depth and half-width.
//
// Why:
//
//   - Demos and regression tests need shared, deterministic wells.
//   - Callers writing their own potentials can copy the closure shape.
//
// All constructors return pure closures: they read their captured
// constants, ignore the opaque params payload, and never mutate the
// mesh slice.
package potential
