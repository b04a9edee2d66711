// Package brent finds roots and extrema of a caller-supplied scalar
// function without derivatives, using Brent's method: fast local
// interpolation steps guarded by a fallback that is guaranteed to
// converge.
//
// 🚀 What does brent provide?
//
//   - FindRoot(f, a, b, tol)     — zero of f inside a sign-changing
//     bracket [a, b]; inverse-quadratic / secant steps with bisection
//     as the safety net
//   - Minimize(f, a, b, c, tol)  — minimum of f inside a bracketing
//     triple with f(b) ≤ f(a), f(b) ≤ f(c); parabolic steps with
//     golden-section as the safety net
//   - Maximize(f, a, b, c, tol)  — minimization of the negated function
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/geonum/brent"
//
//	f := brent.FuncOf(func(x float64) float64 { return x*x - 2 })
//	root, err := brent.FindRoot(f, 0, 2, 1e-9)
//	if err != nil {
//	  // ErrInvalidBracket, ErrMaxIterations, or the function's own error
//	}
//
// Contracts:
//   - The supplied Func may be called at repeated and non-monotonic
//     abscissas; repeated calls at the same x must return the same value.
//   - Any error returned by the Func aborts the solve and is surfaced
//     unchanged — never wrapped, never retried.
//   - Every entry point is bounded by an iteration cap (default 100);
//     exhausting it is ErrMaxIterations, not a silent best-effort return.
//
// The solvers hold no state between calls and are safe for concurrent
// use, provided each call owns its Func.
//
// Complexity: O(iterations) function evaluations, O(1) memory.
package brent
