// Package brent - Brent root finding.
//
// FindRoot combines bisection with linear (secant) and inverse
// quadratic interpolation, after Brent (1973) as presented by
// Forsythe, Malcolm & Moler. At every step the solver operates on
// three abscissas:
//
//	b — the latest and best approximation to the root
//	a — the previous approximation
//	c — an approximation such that f(b) and f(c) have opposite signs,
//	    i.e. b and c confine the root, and |f(b)| ≤ |f(c)|
//
// An interpolated step (inverse quadratic when a, b, c are distinct,
// secant otherwise) is accepted only when it lands inside (b, c) away
// from the boundaries and shrinks at least half of the step taken two
// iterations earlier; otherwise the step is a bisection of (b, c).
package brent

import (
	"fmt"
	"math"

	"github.com/katalvlaran/geonum/machine"
)

// FindRoot locates a zero of f inside [a, b] to within tol, using
// DefaultOptions. See FindRootOpt.
func FindRoot(f Func, a, b, tol float64) (float64, error) {
	return FindRootOpt(f, a, b, tol, DefaultOptions())
}

// FindRootOpt locates a zero of f inside [a, b] to within tol.
//
// Contracts:
//   - f(a) and f(b) must have opposite signs; otherwise ErrInvalidBracket.
//   - tol ≥ 0; the effective tolerance additionally includes the
//     relative term 2·eps·|x|, so tol=0 converges to machine precision.
//
// Errors: ErrNilFunc, ErrInvalidBracket, ErrMaxIterations, or any
// error returned by f (surfaced unchanged).
//
// Complexity: superlinear near a simple root; never worse than
// bisection, bounded by opts.MaxIterations evaluations.
func FindRootOpt(f Func, a, b, tol float64, opts Options) (float64, error) {
	if f == nil {
		return 0, ErrNilFunc
	}

	fa, err := f.Evaluate(a)
	if err != nil {
		return 0, err
	}
	fb, err := f.Evaluate(b)
	if err != nil {
		return 0, err
	}

	// An endpoint may already be the root.
	if fa == 0 {
		return a, nil
	}
	if fb == 0 {
		return b, nil
	}
	if (fa > 0) == (fb > 0) {
		return 0, fmt.Errorf("%w: f(%g) and f(%g) have the same sign", ErrInvalidBracket, a, b)
	}

	var (
		eps    = machine.Epsilon()
		c, fc  = b, fb
		d, e   float64 // current step and the step before the previous one
		p, q   float64 // interpolation numerator / denominator
		r, s   float64
		xm     float64 // half the bracket width
		tolAct float64
	)

	for it := 0; it < opts.iterCap(); it++ {
		// Re-establish the bracket: c must oppose b in sign.
		if (fb > 0) == (fc > 0) {
			c, fc = a, fa
			d = b - a
			e = d
		}
		// b must be the best approximation so far.
		if math.Abs(fc) < math.Abs(fb) {
			a, b, c = b, c, b
			fa, fb, fc = fb, fc, fb
		}

		// Combined absolute + relative convergence test.
		tolAct = 2*eps*math.Abs(b) + tol/2
		xm = (c - b) / 2
		if math.Abs(xm) <= tolAct || fb == 0 {
			return b, nil
		}

		if math.Abs(e) >= tolAct && math.Abs(fa) > math.Abs(fb) {
			// Attempt interpolation.
			s = fb / fa
			if a == c {
				// Secant step: only two distinct points remain.
				p = 2 * xm * s
				q = 1 - s
			} else {
				// Inverse quadratic through (a, fa), (b, fb), (c, fc).
				q = fa / fc
				r = fb / fc
				p = s * (2*xm*q*(q-r) - (b-a)*(r-1))
				q = (q - 1) * (r - 1) * (s - 1)
			}
			if p > 0 {
				q = -q
			}
			p = math.Abs(p)

			// Accept only in-bracket steps that beat half the step
			// before the previous one; otherwise bisect.
			if 2*p < math.Min(3*xm*q-math.Abs(tolAct*q), math.Abs(e*q)) {
				e = d
				d = p / q
			} else {
				d = xm
				e = d
			}
		} else {
			d = xm
			e = d
		}

		a, fa = b, fb
		if math.Abs(d) > tolAct {
			b += d
		} else {
			// Never step by less than the tolerance.
			b += math.Copysign(tolAct, xm)
		}
		fb, err = f.Evaluate(b)
		if err != nil {
			return 0, err
		}
	}

	return 0, ErrMaxIterations
}
