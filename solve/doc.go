// Package solve finds roots of nonlinear equations and systems by delegating to gonum.
//
// The root of F is sought as the minimizer of ½‖F(x)‖² using gonum/optimize. With the
// default BFGS method the gradient Jᵀ·F is assembled from a central finite-difference
// Jacobian (gonum/diff/fd); NelderMead needs no derivatives.
//
// Three entry points cover the usual shapes:
//
//	solve.Scalar(f, x0)                     // f: float64 -> float64
//	solve.Root(F, x0)                       // F: []float64 -> []float64
//	solve.RootWithParams(F, x0, params)     // F(x, params) with fixed params
//
// Every call returns the location, the residual vector there and a success flag.
// The search is local: a different starting point may reach a different root, or none.
package solve
