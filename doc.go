// Package rootfind approximates roots of equations.
//
// The repository is organized as a progression, from the most transparent method to
// delegating to a numerical library:
//
//   - grid: brute-force grid search on [start, stop), reporting the residual f(x)
//     with every answer, plus refinement and one-root-per-crossing scans
//   - solve: local solvers for scalar equations and nonlinear systems (gonum/optimize)
//
// Grid search is foolproof but its accuracy is bounded by the step. The solvers take far
// fewer evaluations but depend on the starting point and may report no root.
//
// Package rootfind See subpackages:
//   - grid, solve: library packages
//   - internal/catalog: the named demonstration problems
//   - internal/config: layered settings (defaults, YAML file, environment, flags)
//   - cmd/rootfind: CLI with grid, solve, demo and list commands
package rootfind
