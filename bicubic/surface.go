// Package bicubic - the Surface type and its query operations.
package bicubic

import (
	"fmt"

	"github.com/katalvlaran/geonum/machine"
)

// Surface interpolates a rectangular grid of samples with nested
// natural cubic splines. values[i][j] is the sample at (xs[i], ys[j]).
//
// The surface borrows the caller's slices: they are never copied and
// never mutated. See the package documentation for the aliasing
// contract and the concurrency caveat.
type Surface struct {
	xs     []float64
	ys     []float64
	values [][]float64

	// y2cols caches the y-direction fit of every x-column. The fits
	// depend only on the grid, so they survive across queries and are
	// dropped on Rebind.
	y2cols [][]float64

	// Scratch for the x-direction pass, reused across queries.
	samples []float64
	x2      []float64

	lastX   float64
	last    Result
	queried bool
}

// New constructs a Surface over the caller's grids.
//
// Contracts:
//   - xs and ys strictly increasing, each with at least MinAxisLen
//     knots; adjacent knots closer than machine.DefaultPrecision
//     (relative) are rejected as not distinct.
//   - values must hold exactly len(xs) rows of len(ys) samples.
//
// Errors: ErrGridTooSmall, ErrNotIncreasing, ErrShapeMismatch.
func New(xs, ys []float64, values [][]float64) (*Surface, error) {
	if err := validate(xs, ys, values); err != nil {
		return nil, err
	}

	s := &Surface{}
	s.bind(xs, ys, values)

	return s, nil
}

// Rebind replaces all three grid references wholesale, under the same
// contracts as New. On error the surface keeps its previous grids and
// cached state untouched.
func (s *Surface) Rebind(xs, ys []float64, values [][]float64) error {
	if err := validate(xs, ys, values); err != nil {
		return err
	}

	s.bind(xs, ys, values)
	s.queried = false

	return nil
}

// bind installs validated grids and resizes the cache and scratch.
func (s *Surface) bind(xs, ys []float64, values [][]float64) {
	s.xs, s.ys, s.values = xs, ys, values
	s.y2cols = nil
	s.samples = make([]float64, len(xs))
	s.x2 = make([]float64, len(xs))
}

// validate checks the grid contracts shared by New and Rebind.
func validate(xs, ys []float64, values [][]float64) error {
	if len(xs) < MinAxisLen || len(ys) < MinAxisLen {
		return fmt.Errorf("%w: got %d×%d", ErrGridTooSmall, len(xs), len(ys))
	}
	for _, axis := range [][]float64{xs, ys} {
		for i := 0; i+1 < len(axis); i++ {
			if axis[i+1] <= axis[i] || machine.ApproxEqual(axis[i], axis[i+1]) {
				return fmt.Errorf("%w: knots %g and %g", ErrNotIncreasing, axis[i], axis[i+1])
			}
		}
	}
	if len(values) != len(xs) {
		return fmt.Errorf("%w: %d rows for %d x-knots", ErrShapeMismatch, len(values), len(xs))
	}
	for i, col := range values {
		if len(col) != len(ys) {
			return fmt.Errorf("%w: row %d has %d samples for %d y-knots", ErrShapeMismatch, i, len(col), len(ys))
		}
	}

	return nil
}

// Interpolate evaluates the surface at (x, y), returning the value and
// its first and second derivative along x.
//
// Algorithm: every x-column's natural spline along y (cached) is
// evaluated at y, giving one intermediate sample per column; a second
// natural spline across those samples is fitted and evaluated at x.
// Each fit is a direct O(n) tridiagonal solve.
//
// A successful query updates the last-result registers read by
// LastValue, LastDeriv, LastDeriv2 and InterpolateNewY.
//
// Errors: ErrOutOfRange for (x, y) outside the grid envelope,
// including non-finite coordinates.
func (s *Surface) Interpolate(x, y float64) (Result, error) {
	if !(x >= s.xs[0] && x <= s.xs[len(s.xs)-1]) {
		return Result{}, fmt.Errorf("%w: x=%g outside [%g, %g]", ErrOutOfRange, x, s.xs[0], s.xs[len(s.xs)-1])
	}
	if !s.IsYBracketed(y) {
		return Result{}, fmt.Errorf("%w: y=%g outside [%g, %g]", ErrOutOfRange, y, s.ys[0], s.ys[len(s.ys)-1])
	}

	s.fitColumns()

	// y-direction pass: one intermediate sample per x-column.
	yi := searchBracket(s.ys, y)
	for i := range s.xs {
		v, _, _ := evalCubic(s.ys, s.values[i], s.y2cols[i], yi, y)
		s.samples[i] = v
	}

	// x-direction pass: fit across the samples, evaluate at x.
	fitNatural(s.xs, s.samples, s.x2)
	xi := searchBracket(s.xs, x)
	val, d1, d2 := evalCubic(s.xs, s.samples, s.x2, xi, x)

	s.lastX = x
	s.last = Result{Value: val, Deriv: d1, Deriv2: d2}
	s.queried = true

	return s.last, nil
}

// InterpolateNewY re-evaluates the surface at the x of the previous
// successful query and a new y. Only the y-direction evaluations and
// the x-direction fit are redone; the cached column fits are reused.
// The result is identical to a fresh Interpolate at the same x.
//
// Errors: ErrNoQuery before any successful query; ErrOutOfRange as
// for Interpolate.
func (s *Surface) InterpolateNewY(y float64) (Result, error) {
	if !s.queried {
		return Result{}, ErrNoQuery
	}

	return s.Interpolate(s.lastX, y)
}

// IsYBracketed reports whether y lies inside the grid's y-envelope,
// inclusive at both endpoints. Non-finite y is never bracketed.
func (s *Surface) IsYBracketed(y float64) bool {
	return y >= s.ys[0] && y <= s.ys[len(s.ys)-1]
}

// fitColumns computes the per-column y-direction fits once per grid.
func (s *Surface) fitColumns() {
	if s.y2cols != nil {
		return
	}

	s.y2cols = make([][]float64, len(s.xs))
	for i := range s.xs {
		s.y2cols[i] = make([]float64, len(s.ys))
		fitNatural(s.ys, s.values[i], s.y2cols[i])
	}
}

// LastValue returns the value of the most recent successful query.
// ErrNoQuery before the first one.
func (s *Surface) LastValue() (float64, error) {
	if !s.queried {
		return 0, ErrNoQuery
	}

	return s.last.Value, nil
}

// LastDeriv returns ∂value/∂x of the most recent successful query.
// ErrNoQuery before the first one.
func (s *Surface) LastDeriv() (float64, error) {
	if !s.queried {
		return 0, ErrNoQuery
	}

	return s.last.Deriv, nil
}

// LastDeriv2 returns ∂²value/∂x² of the most recent successful query.
// ErrNoQuery before the first one.
func (s *Surface) LastDeriv2() (float64, error) {
	if !s.queried {
		return 0, ErrNoQuery
	}

	return s.last.Deriv2, nil
}
