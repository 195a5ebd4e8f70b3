// Command rootfind approximates roots of equations.
//
// Subcommands:
//
//	rootfind grid PROBLEM --start=A --stop=B --step=H   grid search on [A, B)
//	rootfind solve PROBLEM [--x0=...] [--params=...]    local numerical solver
//	rootfind demo                                       the full walkthrough
//	rootfind list                                       registered problems
//
// Reports are YAML on stdout (or --out FILE). Logs go to stderr through logrus; at
// --log-level=debug the grid search logs every (x, f(x)) it evaluates. `grid --table=FILE`
// exports the evaluation table as CSV (x,f_x) for plotting elsewhere.
//
// Settings come from flags, ROOTFIND_* environment variables and an optional --config
// YAML file, in that order of precedence.
//
// Exit codes: 0 on success, 1 on runtime errors, 2 on usage errors.
package main
