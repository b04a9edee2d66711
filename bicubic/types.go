// Package bicubic defines the result type and sentinel errors for the
// bicubic subpackage of github.com/katalvlaran/geonum.
package bicubic

import "errors"

// Sentinel errors for surface construction and queries.
var (
	// ErrGridTooSmall indicates an axis with fewer than MinAxisLen knots.
	ErrGridTooSmall = errors.New("bicubic: each axis needs at least four knots")
	// ErrNotIncreasing indicates an axis that is not strictly increasing.
	ErrNotIncreasing = errors.New("bicubic: axis values must be strictly increasing")
	// ErrShapeMismatch indicates the values grid does not have exactly
	// len(xs) rows of len(ys) samples.
	ErrShapeMismatch = errors.New("bicubic: values shape must match the axes")
	// ErrOutOfRange indicates a query point outside the grid envelope.
	ErrOutOfRange = errors.New("bicubic: query point outside the grid")
	// ErrNoQuery indicates an accessor or re-evaluation was invoked
	// before any successful query.
	ErrNoQuery = errors.New("bicubic: no successful query yet")
)

// MinAxisLen is the minimum number of knots per axis. A cubic fit
// needs four points to constrain all its coefficients.
const MinAxisLen = 4

// Result is one interpolation outcome: the surface value at (x, y)
// and its first and second derivative with respect to x.
type Result struct {
	Value  float64
	Deriv  float64
	Deriv2 float64
}
