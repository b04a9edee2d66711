// Package brent - Brent minimization and maximization.
//
// Minimize refines a bracketing triple (a, b, c) by parabolic
// interpolation through the three lowest points seen so far, falling
// back to a golden-section step (ratio (3−√5)/2 into the larger
// sub-interval) whenever the parabola's vertex leaves the bracket or
// fails to halve the step taken two iterations earlier.
package brent

import (
	"fmt"
	"math"

	"github.com/katalvlaran/geonum/machine"
)

// Minimize locates a minimum of f inside the bracketing triple
// (a, b, c) to within tol, using DefaultOptions. See MinimizeOpt.
func Minimize(f Func, a, b, c, tol float64) (float64, error) {
	return MinimizeOpt(f, a, b, c, tol, DefaultOptions())
}

// Maximize locates a maximum of f inside the bracketing triple
// (a, b, c), defined as minimizing the negation of f. The bracket
// precondition is f(b) ≥ f(a) and f(b) ≥ f(c).
func Maximize(f Func, a, b, c, tol float64) (float64, error) {
	if f == nil {
		return 0, ErrNilFunc
	}

	return MinimizeOpt(negated{inner: f}, a, b, c, tol, DefaultOptions())
}

// MinimizeOpt locates a minimum of f inside the bracketing triple
// (a, b, c) to within tol.
//
// Contracts:
//   - b must lie strictly between a and c, with f(b) ≤ f(a) and
//     f(b) ≤ f(c); otherwise ErrInvalidBracket.
//   - Termination: bracket width ≤ tol·|x| + 2·eps around the current
//     best x, so tol is a relative tolerance on the abscissa.
//
// Errors: ErrNilFunc, ErrInvalidBracket, ErrMaxIterations, or any
// error returned by f (surfaced unchanged).
func MinimizeOpt(f Func, a, b, c, tol float64, opts Options) (float64, error) {
	if f == nil {
		return 0, ErrNilFunc
	}
	if (b <= a) == (b <= c) {
		return 0, fmt.Errorf("%w: %g does not lie between %g and %g", ErrInvalidBracket, b, a, c)
	}

	fa, err := f.Evaluate(a)
	if err != nil {
		return 0, err
	}
	fb, err := f.Evaluate(b)
	if err != nil {
		return 0, err
	}
	fc, err := f.Evaluate(c)
	if err != nil {
		return 0, err
	}
	if fb > fa || fb > fc {
		return 0, fmt.Errorf("%w: f(%g) is not the lowest of the triple", ErrInvalidBracket, b)
	}

	// golden is the section ratio (3−√5)/2 ≈ 0.381966.
	var (
		golden = (3 - math.Sqrt(5)) / 2
		zeps   = 2 * machine.Epsilon()

		lo = math.Min(a, c)
		hi = math.Max(a, c)

		x, w, v    = b, b, b  // best, second best, previous second best
		fx, fw, fv = fb, fb, fb
		d, e       float64 // current step and the step before the previous one
	)

	for it := 0; it < opts.iterCap(); it++ {
		xm := (lo + hi) / 2
		tol1 := tol*math.Abs(x) + zeps
		tol2 := 2 * tol1

		// Done when the bracket has shrunk to twice the tolerance
		// around x.
		if math.Abs(x-xm) <= tol2-(hi-lo)/2 {
			return x, nil
		}

		if math.Abs(e) > tol1 {
			// Fit a parabola through (x, fx), (w, fw), (v, fv).
			r := (x - w) * (fx - fv)
			q := (x - v) * (fx - fw)
			p := (x-v)*q - (x-w)*r
			q = 2 * (q - r)
			if q > 0 {
				p = -p
			}
			q = math.Abs(q)
			prev := e
			e = d

			// The vertex step p/q must stay strictly inside (lo, hi)
			// and beat half the step before the previous one.
			if math.Abs(p) >= math.Abs(q*prev/2) || p <= q*(lo-x) || p >= q*(hi-x) {
				if x >= xm {
					e = lo - x
				} else {
					e = hi - x
				}
				d = golden * e
			} else {
				d = p / q
				u := x + d
				if u-lo < tol2 || hi-u < tol2 {
					d = math.Copysign(tol1, xm-x)
				}
			}
		} else {
			// Golden-section step into the larger sub-interval.
			if x >= xm {
				e = lo - x
			} else {
				e = hi - x
			}
			d = golden * e
		}

		// Never evaluate closer than tol1 to x.
		var u float64
		if math.Abs(d) >= tol1 {
			u = x + d
		} else {
			u = x + math.Copysign(tol1, d)
		}
		fu, err := f.Evaluate(u)
		if err != nil {
			return 0, err
		}

		// Shrink the bracket around the better of x and u, and demote
		// the bookkeeping points.
		if fu <= fx {
			if u >= x {
				lo = x
			} else {
				hi = x
			}
			v, w, x = w, x, u
			fv, fw, fx = fw, fx, fu
		} else {
			if u < x {
				lo = u
			} else {
				hi = u
			}
			if fu <= fw || w == x {
				v, w = w, u
				fv, fw = fw, fu
			} else if fu <= fv || v == x || v == w {
				v, fv = u, fu
			}
		}
	}

	return 0, ErrMaxIterations
}
