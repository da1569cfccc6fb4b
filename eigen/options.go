// Package eigen: solver configuration with documented defaults.
package eigen

// Solver defaults - single source of truth for zero-value behavior.
const (
	// DefaultTol is the relative residual tolerance for accepting a Ritz pair.
	DefaultTol = 1e-10

	// DefaultSeed seeds the start-vector source; fixed for determinism.
	DefaultSeed = 1

	// checkInterval is the Lanczos step stride between Ritz extractions.
	// Extraction costs O(m³) on the m×m projection, so checking every
	// step would dominate; every 20th keeps the overhead marginal.
	checkInterval = 20
)

// Options configures a Lanczos solve.
//
// Fields:
//   - MaxIter — Lanczos step budget. 0 (or negative) means "up to the
//     operator dimension n", at which point the projection is exact and
//     convergence is unconditional. Smaller budgets trade certainty for
//     time and may end in ErrNotConverged.
//   - Tol     — relative residual tolerance; 0 means DefaultTol.
//   - Seed    — start-vector seed; identical seeds reproduce solves bit
//     for bit.
type Options struct {
	MaxIter int
	Tol     float64
	Seed    int64
}

// DefaultOptions returns the documented defaults.
func DefaultOptions() Options {
	return Options{MaxIter: 0, Tol: DefaultTol, Seed: DefaultSeed}
}
