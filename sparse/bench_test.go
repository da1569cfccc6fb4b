package sparse_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/qwell/sparse"
)

// BenchmarkCSR_MulVec measures the matvec kernel on a 100k-point
// tridiagonal operator, the shape every 1D solve produces.
func BenchmarkCSR_MulVec(b *testing.B) {
	const n = 100_000
	m, err := sparse.NewDOK(n, n)
	if err != nil {
		b.Fatalf("setup NewDOK failed: %v", err)
	}
	for i := 0; i < n; i++ {
		_ = m.Set(i, i, 2)
	}
	for i := 0; i < n-1; i++ {
		_ = m.Set(i, i+1, -1)
		_ = m.Set(i+1, i, -1)
	}
	a := m.ToCSR()

	rng := rand.New(rand.NewSource(42))
	x := make([]float64, n)
	for i := range x {
		x[i] = rng.NormFloat64()
	}
	dst := make([]float64, n)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = a.MulVec(dst, x)
	}
}

// BenchmarkDOK_ToCSR measures the freeze step alone.
func BenchmarkDOK_ToCSR(b *testing.B) {
	const n = 100_000
	m, err := sparse.NewDOK(n, n)
	if err != nil {
		b.Fatalf("setup NewDOK failed: %v", err)
	}
	for i := 0; i < n; i++ {
		_ = m.Set(i, i, 2)
	}
	for i := 0; i < n-1; i++ {
		_ = m.Set(i, i+1, -1)
		_ = m.Set(i+1, i, -1)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = m.ToCSR()
	}
}
