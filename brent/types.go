// Package brent defines the scalar-function capability, options, and
// sentinel errors for the brent subpackage of github.com/katalvlaran/geonum.
package brent

import "errors"

// Sentinel errors for brent solvers.
var (
	// ErrNilFunc indicates a nil Func was supplied.
	ErrNilFunc = errors.New("brent: scalar function must be non-nil")
	// ErrInvalidBracket indicates the caller-supplied bracket fails its
	// precondition: no sign change for FindRoot, or the middle point of a
	// minimization triple is not the lowest.
	ErrInvalidBracket = errors.New("brent: bracket does not satisfy its precondition")
	// ErrMaxIterations indicates the iteration budget was exhausted
	// before the tolerance was met.
	ErrMaxIterations = errors.New("brent: maximum iterations exceeded without convergence")
)

// DefaultMaxIterations bounds the refinement loop of every solver.
const DefaultMaxIterations = 100

// Func is the scalar-function capability a caller implements to supply
// f(x). Evaluate returns an error when f is undefined at x; the solver
// aborts and surfaces that error unchanged.
//
// Callers of this capability assume nothing beyond determinism:
// repeated calls at the same x return the same value. The solver may
// evaluate at non-monotonic, possibly repeated abscissas.
type Func interface {
	Evaluate(x float64) (float64, error)
}

// FuncOf adapts a plain closure that cannot fail into a Func.
func FuncOf(f func(x float64) float64) Func {
	return closureFunc(f)
}

type closureFunc func(x float64) float64

func (f closureFunc) Evaluate(x float64) (float64, error) {
	return f(x), nil
}

// negated flips the sign of an inner Func so that Maximize can reuse
// the minimization loop. Evaluation errors pass through untouched.
type negated struct {
	inner Func
}

func (n negated) Evaluate(x float64) (float64, error) {
	v, err := n.inner.Evaluate(x)
	if err != nil {
		return 0, err
	}

	return -v, nil
}

// Options contains tunable parameters for the solvers.
type Options struct {
	// MaxIterations caps the refinement loop; exhaustion is
	// ErrMaxIterations. Values < 1 fall back to DefaultMaxIterations.
	MaxIterations int
}

// DefaultOptions returns an Options with MaxIterations=DefaultMaxIterations.
func DefaultOptions() Options {
	return Options{MaxIterations: DefaultMaxIterations}
}

// iterCap returns the effective iteration bound.
func (o Options) iterCap() int {
	if o.MaxIterations < 1 {
		return DefaultMaxIterations
	}

	return o.MaxIterations
}
