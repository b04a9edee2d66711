// Package machine determines the floating-point limits of the host
// empirically — radix and machine epsilon are probed at first use
// rather than read from compiled-in constants — and builds the
// tolerant comparisons that the solver and interpolation packages
// derive their convergence tests from.
//
// 🚀 What does machine provide?
//
//   - Radix()            — the base of the hardware's floating representation
//   - Epsilon()          — the smallest eps with 1+eps distinguishable from 1
//   - DefaultPrecision() — √eps, the library-wide default comparison precision
//   - ApproxEqual / ApproxEqualTol / ApproxZero — relative comparisons
//     with a near-zero escape hatch
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/geonum/machine"
//
//	if machine.ApproxEqual(got, want) {
//	  // equal to within √eps, relative
//	}
//
// The probe runs once per process (sync.Once); repeated calls return
// the same Constants snapshot. Duplicate computation would be
// deterministic anyway, so concurrent first use is safe.
package machine
