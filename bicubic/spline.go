// Package bicubic - natural cubic spline internals.
//
// A natural cubic spline through knots (xs[i], vals[i]) is fully
// determined by the second derivatives y2[i] at the knots: continuity
// of value, first and second derivative at the interior knots yields a
// tridiagonal linear system, and the natural boundary condition pins
// y2 to zero at both ends. The system is solved directly by the Thomas
// algorithm in O(n); no iteration is involved.
package bicubic

import "sort"

// fitNatural fills y2 with the knot second derivatives of the natural
// cubic spline through (xs, vals). len(y2) == len(xs) == len(vals) ≥ 4
// and xs strictly increasing are guaranteed by the surface validation.
func fitNatural(xs, vals, y2 []float64) {
	n := len(xs)
	y2[0], y2[n-1] = 0, 0

	// Tridiagonal system over the interior knots only.
	sub := make([]float64, n-2)
	diag := make([]float64, n-2)
	sup := make([]float64, n-2)
	rhs := make([]float64, n-2)
	for i := range rhs {
		j := i + 1 // j indexes into xs and vals
		sub[i] = (xs[j] - xs[j-1]) / 6
		diag[i] = (xs[j+1] - xs[j-1]) / 3
		sup[i] = (xs[j+1] - xs[j]) / 6
		rhs[i] = (vals[j+1]-vals[j])/(xs[j+1]-xs[j]) -
			(vals[j]-vals[j-1])/(xs[j]-xs[j-1])
	}

	triDiag(sub, diag, sup, rhs, y2[1:n-1])
}

// triDiag solves the tridiagonal system
//
//	| diag0 sup0  ..          |   | out0 |   | rhs0 |
//	| sub1  diag1 sup1 ..     |   | out1 |   | rhs1 |
//	| ..                      | * | ..   | = | ..   |
//	| ..         subN  diagN  |   | outN |   | rhsN |
//
// in place into out. The spline systems built above are strictly
// diagonally dominant, so elimination never hits a zero pivot.
func triDiag(sub, diag, sup, rhs, out []float64) {
	tmp := make([]float64, len(sub))

	pivot := diag[0]
	out[0] = rhs[0] / pivot
	for i := 1; i < len(out); i++ {
		tmp[i] = sup[i-1] / pivot
		pivot = diag[i] - sub[i]*tmp[i]
		out[i] = (rhs[i] - sub[i]*out[i-1]) / pivot
	}
	for i := len(out) - 2; i >= 0; i-- {
		out[i] -= tmp[i+1] * out[i+1]
	}
}

// evalCubic evaluates the spline piece over [xs[i], xs[i+1]] at x,
// returning value, first and second derivative. The piece is written
// in coefficient form over dx = x − xs[i]:
//
//	f(x)   = a·dx³ + b·dx² + c·dx + d
//	f′(x)  = 3a·dx² + 2b·dx + c
//	f″(x)  = 6a·dx + 2b
func evalCubic(xs, vals, y2 []float64, i int, x float64) (val, d1, d2 float64) {
	h := xs[i+1] - xs[i]
	dx := x - xs[i]

	a := (y2[i+1] - y2[i]) / (6 * h)
	b := y2[i] / 2
	c := (vals[i+1]-vals[i])/h - h*(y2[i]/3+y2[i+1]/6)
	d := vals[i]

	val = a*dx*dx*dx + b*dx*dx + c*dx + d
	d1 = 3*a*dx*dx + 2*b*dx + c
	d2 = 6*a*dx + 2*b

	return val, d1, d2
}

// searchBracket returns the index i of the interval [xs[i], xs[i+1]]
// containing x, clamped so that the last knot maps onto the final
// interval. x inside the envelope is guaranteed by the caller.
func searchBracket(xs []float64, x float64) int {
	i := sort.SearchFloat64s(xs, x)
	if i > 0 {
		i--
	}
	if i > len(xs)-2 {
		i = len(xs) - 2
	}

	return i
}
