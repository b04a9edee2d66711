// Package bicubic interpolates a smooth surface through a rectangular
// 2-D grid of samples using nested natural cubic splines, returning
// the value together with its first and second derivative along x at
// any point inside the grid.
//
// 🚀 How does it work?
//
//	Given x-abscissas, y-abscissas and a values grid (values[i][j] is
//	the sample at (xs[i], ys[j])):
//	  1. Each x-column gets a natural cubic spline fitted along y
//	     (second derivative pinned to zero at both ends) — these fits
//	     depend only on the grid and are cached across queries.
//	  2. Evaluating every column spline at the query y yields one
//	     intermediate sample per column.
//	  3. A second natural spline across those x-samples is fitted and
//	     evaluated (with derivatives) at the query x.
//
//	Each per-axis fit is a direct O(n) tridiagonal solve — no iteration.
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/geonum/bicubic"
//
//	s, err := bicubic.New(xs, ys, values)
//	res, err := s.Interpolate(40.84, 70.0)   // res.Value, res.Deriv, res.Deriv2
//	res, err = s.InterpolateNewY(75.0)       // same x, cheaper re-evaluation
//
// Aliasing contract:
//
//	The surface borrows the caller's slices — it never copies and never
//	mutates them. The grids must outlive the surface and must not be
//	mutated while a query is in flight; violating this is a data race
//	with undefined numerical results. Rebind replaces all three
//	references wholesale.
//
// A Surface is not safe for concurrent queries: the cached column fits
// and the last-result registers are shared mutable state. Give each
// goroutine its own Surface over the same grids.
//
// Complexity: O(n·m) for the first query on a grid, O(n·m) worst case
// after that (column evaluation dominates); memory O(n·m) for the
// cached column fits.
package bicubic
