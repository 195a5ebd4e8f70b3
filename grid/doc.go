// Package grid approximates roots of scalar functions by grid search.
//
// A grid search evaluates f at evenly spaced points of a half-open interval
// [start, stop) and picks the point whose |f| is smallest:
//
//	res, err := grid.FindRoot(func(x float64) float64 { return 0.25*x*x + x - 1 }, -10, 5, 0.01)
//	// res.Root ≈ -4.83, res.Residual ≈ 0.002225, res.Index == 517
//
// The approach is slow but hard to fool, and its accuracy is bounded by the step.
// Callers that need a tighter estimate re-run the search on a narrower window
// around the previous answer (Refine).
//
// Design goals:
//   - Pure: no package state, no output. Diagnostics go through WithObserver.
//   - Deterministic: ties resolve to the lowest index, also with WithWorkers.
//   - Explicit failures: every error carries the received start/stop/step and
//     matches one of the package sentinels (errors.Is).
//
// The residual is always returned so callers can judge solution quality. When two
// roots may sit close together, FindRoots reports one approximation per sign change.
package grid
