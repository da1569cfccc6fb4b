package eigen

import (
	"fmt"
	"math"
	"math/rand"
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// Operator is the minimal surface Lanczos needs: dimensions and a
// matrix-vector product. MulVec must overwrite dst with A·x.
// sparse.CSR satisfies this interface.
type Operator interface {
	Dims() (r, c int)
	MulVec(dst, x []float64) error
}

// breakdownTol flags an invariant subspace: the candidate basis vector
// collapsed relative to the running operator scale.
const breakdownTol = 1e-13

// startVectorFloor rejects degenerate random draws during (re)starts.
const startVectorFloor = 1e-8

// Lanczos returns the k algebraically smallest eigenpairs of op, sorted
// ascending, with unit-norm eigenvectors paired column-for-column.
//
// The method builds an orthonormal Krylov basis one matvec per step,
// keeps it orthonormal by full reorthogonalization, and accepts the
// bottom k Ritz pairs of the tridiagonal projection once each residual
// estimate |β·s| falls below Tol (relative to the Ritz value). With the
// default budget the basis may grow to the full dimension, where the
// projection is exact, so the default configuration always converges.
//
// Errors: ErrNilOperator, ErrNonSquare, ErrInvalidCount, ErrNotConverged,
// plus any error surfaced by op.MulVec.
func Lanczos(op Operator, k int, opts Options) ([]float64, [][]float64, error) {
	if op == nil {
		return nil, nil, ErrNilOperator
	}
	n, c := op.Dims()
	if n != c {
		return nil, nil, fmt.Errorf("Lanczos: operator is %dx%d: %w", n, c, ErrNonSquare)
	}
	if k < 1 || k >= n {
		return nil, nil, fmt.Errorf("Lanczos: k=%d for dimension %d: %w", k, n, ErrInvalidCount)
	}

	tol := opts.Tol
	if tol <= 0 {
		tol = DefaultTol
	}
	maxIter := opts.MaxIter
	if maxIter <= 0 || maxIter > n {
		maxIter = n
	}

	rng := rand.New(rand.NewSource(opts.Seed))
	basis := make([][]float64, 0, maxIter)
	alpha := make([]float64, 0, maxIter)
	beta := make([]float64, 0, maxIter) // beta[j] couples basis[j] and basis[j+1]
	w := make([]float64, n)

	v, err := startVector(rng, n, nil)
	if err != nil {
		return nil, nil, err
	}

	scale := 1.0 // running magnitude estimate, keeps breakdown detection relative
	for m := 1; m <= maxIter; m++ {
		basis = append(basis, v)

		// One matvec per step: w = A·v, then remove the tridiagonal terms.
		if err = op.MulVec(w, v); err != nil {
			return nil, nil, fmt.Errorf("Lanczos: matvec at step %d: %w", m, err)
		}
		if m >= 2 {
			floats.AddScaled(w, -beta[m-2], basis[m-2])
		}
		a := floats.Dot(w, v)
		alpha = append(alpha, a)
		floats.AddScaled(w, -a, v)

		// Full reorthogonalization. Plain Lanczos loses orthogonality as
		// Ritz values converge, which manifests as spurious eigenvalue
		// copies; re-projecting against the whole basis prevents that.
		reorthogonalize(w, basis)
		b := floats.Norm(w, 2)

		scale = math.Max(scale, math.Abs(a)+math.Abs(b))
		lucky := b <= breakdownTol*scale
		atEnd := m == maxIter

		if m >= k && (atEnd || lucky || m%checkInterval == 0) {
			vals, vecsT, bottom, rErr := ritzPairs(alpha, beta)
			if rErr != nil {
				return nil, nil, rErr
			}
			// m == n means the basis spans the full space: the projection
			// is similar to A and the pairs are exact. A lucky breakdown
			// with m >= k pins an invariant subspace, same conclusion.
			if lucky || m == n || converged(vals, bottom, b, tol, k) {
				outVals, outVecs := extract(basis, vals, vecsT, k, n)

				return outVals, outVecs, nil
			}
		}

		if lucky {
			// Invariant subspace smaller than k states: continue in a fresh
			// direction orthogonal to everything found so far.
			v, err = startVector(rng, n, basis)
			if err != nil {
				return nil, nil, err
			}
			beta = append(beta, 0)

			continue
		}
		if atEnd {
			break
		}

		next := make([]float64, n)
		copy(next, w)
		floats.Scale(1/b, next)
		beta = append(beta, b)
		v = next
	}

	return nil, nil, fmt.Errorf("Lanczos: %d pairs within %d steps: %w", k, maxIter, ErrNotConverged)
}

// startVector draws a random unit vector orthogonal to basis.
func startVector(rng *rand.Rand, n int, basis [][]float64) ([]float64, error) {
	const maxDraws = 32
	for attempt := 0; attempt < maxDraws; attempt++ {
		v := make([]float64, n)
		for i := range v {
			v[i] = rng.NormFloat64()
		}
		reorthogonalize(v, basis)
		if nrm := floats.Norm(v, 2); nrm > startVectorFloor {
			floats.Scale(1/nrm, v)

			return v, nil
		}
	}

	return nil, fmt.Errorf("Lanczos: degenerate start vector: %w", ErrNotConverged)
}

// reorthogonalize removes the basis components from w.
// Two modified-Gram-Schmidt passes keep orthogonality at machine level.
func reorthogonalize(w []float64, basis [][]float64) {
	for pass := 0; pass < 2; pass++ {
		for _, u := range basis {
			floats.AddScaled(w, -floats.Dot(w, u), u)
		}
	}
}

// ritzPairs diagonalizes the m×m tridiagonal projection T(alpha, beta).
// Returns the Ritz values ascending, the projection eigenvectors, and
// their bottom-row entries (the residual weights).
func ritzPairs(alpha, beta []float64) ([]float64, *mat.Dense, []float64, error) {
	m := len(alpha)
	t := mat.NewSymDense(m, nil)
	for i, a := range alpha {
		t.SetSym(i, i, a)
	}
	for i, b := range beta {
		t.SetSym(i, i+1, b)
	}

	var es mat.EigenSym
	if ok := es.Factorize(t, true); !ok {
		return nil, nil, nil, fmt.Errorf("Lanczos: projection eigensolve failed: %w", ErrNotConverged)
	}
	vals := es.Values(nil) // ascending by gonum contract

	var vecsT mat.Dense
	es.VectorsTo(&vecsT)
	bottom := make([]float64, m)
	for i := 0; i < m; i++ {
		bottom[i] = vecsT.At(m-1, i)
	}

	return vals, &vecsT, bottom, nil
}

// converged reports whether the k smallest Ritz pairs all meet the
// relative residual bound ||A·x - θ·x|| = β·|s_bottom| <= tol·max(|θ|, 1).
func converged(vals, bottom []float64, b, tol float64, k int) bool {
	for i := 0; i < k; i++ {
		if b*math.Abs(bottom[i]) > tol*math.Max(math.Abs(vals[i]), 1) {
			return false
		}
	}

	return true
}

// extract lifts the k smallest Ritz vectors back to R^n, normalizes them,
// and enforces the ascending-sorted pairing contract.
func extract(basis [][]float64, vals []float64, vecsT *mat.Dense, k, n int) ([]float64, [][]float64) {
	m := len(basis)

	// vals arrive ascending; keep an explicit pairing sort so the contract
	// never silently depends on the projection solver's ordering.
	idx := make([]int, k)
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(a, b int) bool { return vals[idx[a]] < vals[idx[b]] })

	outVals := make([]float64, k)
	outVecs := make([][]float64, k)
	for out, i := range idx {
		outVals[out] = vals[i]
		x := make([]float64, n)
		for j := 0; j < m; j++ {
			floats.AddScaled(x, vecsT.At(j, i), basis[j])
		}
		if nrm := floats.Norm(x, 2); nrm > 0 {
			floats.Scale(1/nrm, x)
		}
		outVecs[out] = x
	}

	return outVals, outVecs
}
