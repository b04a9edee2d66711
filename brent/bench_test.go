package brent_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/geonum/brent"
)

// benchmarkFindRoot runs FindRoot with the given function and bracket.
// It resets the timer before entering the loop and fails on errors.
func benchmarkFindRoot(b *testing.B, f brent.Func, lo, hi, tol float64) {
	b.ResetTimer() // ignore setup time
	for i := 0; i < b.N; i++ {
		if _, err := brent.FindRoot(f, lo, hi, tol); err != nil {
			b.Fatalf("FindRoot failed: %v", err)
		}
	}
}

// BenchmarkFindRoot_Quadratic benchmarks the cheap, well-behaved case.
func BenchmarkFindRoot_Quadratic(b *testing.B) {
	f := brent.FuncOf(func(x float64) float64 { return x*x - 2 })
	benchmarkFindRoot(b, f, 0, 2, 1e-12)
}

// BenchmarkFindRoot_Transcendental benchmarks a transcendental residual.
func BenchmarkFindRoot_Transcendental(b *testing.B) {
	f := brent.FuncOf(func(x float64) float64 { return math.Cos(x) - x })
	benchmarkFindRoot(b, f, 0, 1, 1e-12)
}

// BenchmarkMinimize_Parabola benchmarks minimization on a parabola.
func BenchmarkMinimize_Parabola(b *testing.B) {
	f := brent.FuncOf(func(x float64) float64 { return (x - 3) * (x - 3) })
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := brent.Minimize(f, 0, 3, 6, 1e-8); err != nil {
			b.Fatalf("Minimize failed: %v", err)
		}
	}
}
