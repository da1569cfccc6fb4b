// SPDX-License-Identifier: MIT
// Package schrodinger: functional configuration for the Solve facade.
// Defaults live in constants; WithX constructors validate strictly and
// panic only on nonsensical values (programmer error, never data).
package schrodinger

import (
	"math"

	"github.com/katalvlaran/qwell/eigen"
)

// DEFAULTS - single source of truth for zero-value behavior.
const (
	// DefaultTolerance is the relative residual tolerance handed to the
	// eigensolver.
	DefaultTolerance = 1e-10

	// DefaultSeed seeds the eigensolver start vector. Fixed so repeated
	// solves with identical inputs are reproducible.
	DefaultSeed int64 = 1

	// DefaultMaxIterations of 0 delegates the budget choice to the
	// eigensolver ("up to the operator dimension", always convergent).
	DefaultMaxIterations = 0
)

// Internal panic messages (no magic strings).
const (
	panicMaxIterInvalid   = "schrodinger: WithMaxIterations: budget must be positive"
	panicToleranceInvalid = "schrodinger: WithTolerance: tol must be finite and positive"
)

// Option mutates internal solve options. Safe to apply repeatedly.
type Option func(*options)

// options stores the effective configuration after applying setters.
// Unexported to prevent external mutation; Solve accepts ...Option.
type options struct {
	maxIter int
	tol     float64
	seed    int64
}

// defaultOptions mirrors the Default* constants.
func defaultOptions() options {
	return options{maxIter: DefaultMaxIterations, tol: DefaultTolerance, seed: DefaultSeed}
}

// gatherOptions folds setters over the defaults.
func gatherOptions(opts ...Option) options {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return o
}

// eigenOptions translates facade options into the eigensolver's form.
func (o options) eigenOptions() eigen.Options {
	return eigen.Options{MaxIter: o.maxIter, Tol: o.tol, Seed: o.seed}
}

// WithMaxIterations caps the eigensolver's Lanczos step budget.
// A starved budget can surface ErrNoConvergence; the default (0) lets
// the solver grow the basis to the operator dimension, which always
// converges. Panics if m <= 0.
func WithMaxIterations(m int) Option {
	if m <= 0 {
		panic(panicMaxIterInvalid)
	}

	return func(o *options) { o.maxIter = m }
}

// WithTolerance sets the relative residual tolerance for accepting an
// eigenpair. Panics if tol is not finite and positive.
func WithTolerance(tol float64) Option {
	if tol <= 0 || math.IsNaN(tol) || math.IsInf(tol, 0) {
		panic(panicToleranceInvalid)
	}

	return func(o *options) { o.tol = tol }
}

// WithSeed fixes the eigensolver start-vector seed. Different seeds give
// the same physics but may differ in the last floating-point digits.
func WithSeed(seed int64) Option {
	return func(o *options) { o.seed = seed }
}
