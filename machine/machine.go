package machine

import (
	"math"
	"sync"
)

// Constants is the immutable snapshot of the host's floating-point
// limits, computed once per process at first use.
//
// Fields:
//   - Radix            — base of the floating representation (≥ 2)
//   - Epsilon          — machine epsilon: smallest eps with 1+eps ≠ 1
//   - DefaultPrecision — √Epsilon, the default comparison precision
type Constants struct {
	Radix            int
	Epsilon          float64
	DefaultPrecision float64
}

var (
	once   sync.Once
	limits Constants
)

// probe computes the radix and machine epsilon empirically.
//
// Radix: double an accumulator until adding 1 no longer registers
// (round-off has revealed the base), then try increments 1, 2, 3, …
// until one perturbs the stored sum — the smallest such increment is
// the radix.
//
// Epsilon: divide a trial value by the radix starting from 1.0 until
// 1+trial collapses to 1; the last trial before that point is machine
// epsilon.
func probe() {
	acc := 1.0
	for (acc+1.0)-acc == 1.0 {
		acc += acc
	}
	inc := 1.0
	for (acc+inc)-acc == 0.0 {
		inc++
	}
	radix := inc

	eps := 1.0
	for 1.0+eps != 1.0 {
		eps /= radix
	}
	eps *= radix

	limits = Constants{
		Radix:            int(radix),
		Epsilon:          eps,
		DefaultPrecision: math.Sqrt(eps),
	}
}

// Current returns the Constants snapshot, probing it on first call.
// Safe for concurrent use; the result is stable for the process.
func Current() Constants {
	once.Do(probe)

	return limits
}

// Radix returns the base of the host's floating-point representation.
func Radix() int { return Current().Radix }

// Epsilon returns the machine epsilon of float64 arithmetic on the host.
func Epsilon() float64 { return Current().Epsilon }

// DefaultPrecision returns √Epsilon, the precision ApproxEqual uses.
func DefaultPrecision() float64 { return Current().DefaultPrecision }

// ApproxEqual reports whether a and b are equal to within
// DefaultPrecision. See ApproxEqualTol for the comparison rule.
func ApproxEqual(a, b float64) bool {
	return ApproxEqualTol(a, b, Current().DefaultPrecision)
}

// ApproxEqualTol reports whether a and b are equal to within precision.
// Both values smaller in magnitude than precision compare equal (a
// near-zero escape hatch where a relative test degenerates); otherwise
// the test is relative: |a−b| < precision·max(|a|,|b|).
func ApproxEqualTol(a, b, precision float64) bool {
	m := math.Max(math.Abs(a), math.Abs(b))
	if m < precision {
		return true
	}

	return math.Abs(a-b) < precision*m
}

// ApproxZero reports whether |a| < DefaultPrecision.
func ApproxZero(a float64) bool {
	return math.Abs(a) < Current().DefaultPrecision
}
