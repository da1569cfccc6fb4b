package eigen_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/qwell/eigen"
	"github.com/katalvlaran/qwell/sparse"
)

// denseOp is a test-only Operator backed by a full [][]float64.
type denseOp struct {
	a [][]float64
}

func (d denseOp) Dims() (int, int) { return len(d.a), len(d.a[0]) }

func (d denseOp) MulVec(dst, x []float64) error {
	for i, row := range d.a {
		sum := 0.0
		for j, v := range row {
			sum += v * x[j]
		}
		dst[i] = sum
	}

	return nil
}

// freeParticle builds the n×n second-difference matrix (dx=1), whose
// spectrum is known in closed form: 2 - 2cos(jπ/(n+1)), j = 1..n.
func freeParticle(t *testing.T, n int) *sparse.CSR {
	t.Helper()
	m, err := sparse.NewDOK(n, n)
	require.NoError(t, err)
	for i := 0; i < n; i++ {
		require.NoError(t, m.Set(i, i, 2))
	}
	for i := 0; i < n-1; i++ {
		require.NoError(t, m.Set(i, i+1, -1))
		require.NoError(t, m.Set(i+1, i, -1))
	}

	return m.ToCSR()
}

//----------------------------------------------------------------------------//
// Validation
//----------------------------------------------------------------------------//

// TestLanczos_Errors exercises the input guards.
func TestLanczos_Errors(t *testing.T) {
	a := freeParticle(t, 10)
	opts := eigen.DefaultOptions()

	_, _, err := eigen.Lanczos(nil, 1, opts)
	require.ErrorIs(t, err, eigen.ErrNilOperator)

	rect, err := sparse.NewDOK(3, 4)
	require.NoError(t, err)
	_, _, err = eigen.Lanczos(rect.ToCSR(), 1, opts)
	require.ErrorIs(t, err, eigen.ErrNonSquare)

	for _, k := range []int{0, -1, 10, 11} {
		_, _, err = eigen.Lanczos(a, k, opts)
		require.ErrorIs(t, err, eigen.ErrInvalidCount, "k=%d", k)
	}
}

// TestLanczos_BudgetExhausted forces ErrNotConverged with a starved budget.
func TestLanczos_BudgetExhausted(t *testing.T) {
	a := freeParticle(t, 400)
	opts := eigen.DefaultOptions()
	opts.MaxIter = 5
	opts.Tol = 1e-14

	_, _, err := eigen.Lanczos(a, 4, opts)
	require.ErrorIs(t, err, eigen.ErrNotConverged)
}

//----------------------------------------------------------------------------//
// Spectra
//----------------------------------------------------------------------------//

// TestLanczos_FreeParticle compares against the closed-form spectrum.
func TestLanczos_FreeParticle(t *testing.T) {
	const (
		n = 200
		k = 6
	)
	a := freeParticle(t, n)

	vals, vecs, err := eigen.Lanczos(a, k, eigen.DefaultOptions())
	require.NoError(t, err)
	require.Len(t, vals, k)
	require.Len(t, vecs, k)

	for j := 0; j < k; j++ {
		want := 2 - 2*math.Cos(float64(j+1)*math.Pi/float64(n+1))
		require.InDelta(t, want, vals[j], 1e-8, "eigenvalue %d", j)
		require.Len(t, vecs[j], n)
	}
}

// TestLanczos_Diagonal recovers the smallest entries of a diagonal matrix.
func TestLanczos_Diagonal(t *testing.T) {
	diag := []float64{7, -3, 11, 0.5, 4, -8, 2}
	n := len(diag)
	a := make([][]float64, n)
	for i := range a {
		a[i] = make([]float64, n)
		a[i][i] = diag[i]
	}

	vals, vecs, err := eigen.Lanczos(denseOp{a: a}, 3, eigen.DefaultOptions())
	require.NoError(t, err)
	require.InDeltaSlice(t, []float64{-8, -3, 0.5}, vals, 1e-9)

	// Each eigenvector should be (up to sign) a coordinate axis.
	axes := []int{5, 1, 3}
	for j, want := range axes {
		for i, vi := range vecs[j] {
			expect := 0.0
			if i == want {
				expect = 1.0
			}
			require.InDelta(t, expect, math.Abs(vi), 1e-7, "vector %d entry %d", j, i)
		}
	}
}

// TestLanczos_Restart hits the breakdown-restart path via the identity,
// where the very first step always produces an invariant subspace.
func TestLanczos_Restart(t *testing.T) {
	const n = 5
	a := make([][]float64, n)
	for i := range a {
		a[i] = make([]float64, n)
		a[i][i] = 1
	}

	vals, vecs, err := eigen.Lanczos(denseOp{a: a}, 2, eigen.DefaultOptions())
	require.NoError(t, err)
	require.InDeltaSlice(t, []float64{1, 1}, vals, 1e-10)
	require.Len(t, vecs, 2)
}

//----------------------------------------------------------------------------//
// Contract properties
//----------------------------------------------------------------------------//

// TestLanczos_SortedAndOrthonormal checks the ascending contract and
// the unit-norm / pairwise-orthogonality of returned vectors.
func TestLanczos_SortedAndOrthonormal(t *testing.T) {
	const (
		n = 150
		k = 5
	)
	a := freeParticle(t, n)
	vals, vecs, err := eigen.Lanczos(a, k, eigen.DefaultOptions())
	require.NoError(t, err)

	for i := 1; i < k; i++ {
		require.LessOrEqual(t, vals[i-1], vals[i], "ascending order at %d", i)
	}
	dst := make([]float64, n)
	for i := 0; i < k; i++ {
		// Unit norm.
		require.InDelta(t, 1.0, dot(vecs[i], vecs[i]), 1e-10)
		// Residual ||A·x - λ·x|| small.
		require.NoError(t, a.MulVec(dst, vecs[i]))
		res := 0.0
		for j := range dst {
			r := dst[j] - vals[i]*vecs[i][j]
			res += r * r
		}
		require.Less(t, math.Sqrt(res), 1e-7, "residual of pair %d", i)
		// Pairwise orthogonality.
		for j := 0; j < i; j++ {
			require.InDelta(t, 0.0, dot(vecs[i], vecs[j]), 1e-8)
		}
	}
}

// TestLanczos_Determinism verifies bit-identical repeat solves.
func TestLanczos_Determinism(t *testing.T) {
	a := freeParticle(t, 120)
	opts := eigen.DefaultOptions()

	v1, x1, err := eigen.Lanczos(a, 4, opts)
	require.NoError(t, err)
	v2, x2, err := eigen.Lanczos(a, 4, opts)
	require.NoError(t, err)

	require.Equal(t, v1, v2)
	require.Equal(t, x1, x2)
}

func dot(a, b []float64) float64 {
	s := 0.0
	for i := range a {
		s += a[i] * b[i]
	}

	return s
}
