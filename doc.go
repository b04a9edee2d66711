// Package geonum is the numerical core shared by our geophysical-model
// tooling: derivative-free 1-D solvers and smooth 2-D surface
// interpolation over caller-supplied grids.
//
// 🚀 What is geonum?
//
//	A small, deterministic library that brings together:
//		• machine/  — empirical floating-point limits (radix, epsilon)
//		  and the tolerant comparisons every convergence test derives from
//		• brent/    — Brent-style root finding, minimization and
//		  maximization of a caller-supplied scalar function
//		• bicubic/  — natural-bicubic-spline surface interpolation with
//		  value, ∂/∂x and ∂²/∂x² at any point inside the grid
//
// ✨ Why choose geonum?
//
//   - Guaranteed convergence – fast interpolation steps with bisection /
//     golden-section fallbacks, bounded by an explicit iteration cap
//   - No surprises – strict sentinel errors, no logging, no globals
//     beyond the once-computed machine constants
//   - Pure Go – no cgo, no hidden deps
//   - Grid-friendly – surfaces borrow caller grids, never copy them,
//     and re-evaluate cheaply when only one coordinate moves
//
// Quick example — calibrate a model parameter against a target:
//
//	f := brent.FuncOf(func(x float64) float64 { return x*x - 2 })
//	root, err := brent.FindRoot(f, 0, 2, 1e-9) // ≈ √2
//
// Dive into each subpackage's doc.go for algorithms, contracts and
// complexity notes.
//
//	go get github.com/katalvlaran/geonum
package geonum
