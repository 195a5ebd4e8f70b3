package main

import (
	"math"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

//
// -----------------------------------------------------------------------------
// run(): root and list
// -----------------------------------------------------------------------------

// TestRun_Help verifies running without a subcommand prints help and exits 0.
func TestRun_Help(t *testing.T) {
	t.Parallel()

	code, stdout, _ := runCLI(t)
	assert.Equal(t, exitOK, code)
	assert.Contains(t, stdout, "Available Commands")
	assert.Contains(t, stdout, "grid")
	assert.Contains(t, stdout, "solve")
}

// TestRun_UnknownCommand verifies an unknown subcommand is a usage error.
func TestRun_UnknownCommand(t *testing.T) {
	t.Parallel()

	code, stdout, stderr := runCLI(t, "bogus")
	assert.Equal(t, exitUsage, code)
	assert.Empty(t, stdout)
	assert.Contains(t, stderr, `unknown command "bogus" for "rootfind"`)
	assert.Contains(t, stderr, "Usage:")
}

// TestRun_List verifies the problem listing order and metadata.
func TestRun_List(t *testing.T) {
	t.Parallel()

	code, stdout, stderr := runCLI(t, "list")
	require.Equal(t, exitOK, code, stderr)

	var got []problemEntry
	decodeYAML(t, stdout, &got)

	names := make([]string, 0, len(got))
	for _, p := range got {
		names = append(names, p.Name)
	}
	assert.Equal(t, []string{"logexp", "quadratic", "circle", "cubic3", "cubic3p"}, names)
	assert.Equal(t, "scalar", got[1].Kind)
	assert.Equal(t, []float64{0.25, 1, -1}, got[1].Params)
	assert.Equal(t, 3, got[4].Unknowns)
	assert.Equal(t, []float64{12, 2, 1}, got[4].Params)
}

// TestRun_OutFile verifies --out redirects the report to a file.
func TestRun_OutFile(t *testing.T) {
	t.Parallel()

	p := filepath.Join(t.TempDir(), "list.yaml")
	code, stdout, stderr := runCLI(t, "list", "--out", p)
	require.Equal(t, exitOK, code, stderr)
	assert.Empty(t, stdout)
	assert.Contains(t, stderr, "report written")

	var got []problemEntry
	decodeYAML(t, readFileString(t, p), &got)
	assert.Len(t, got, 5)
}

//
// -----------------------------------------------------------------------------
// run(): grid
// -----------------------------------------------------------------------------

// TestRun_Grid_Quadratic verifies the coarse result, its residual and the refined estimate.
func TestRun_Grid_Quadratic(t *testing.T) {
	t.Parallel()

	code, stdout, stderr := runCLI(t, "grid", "quadratic",
		"--start=-10", "--stop=5", "--step=0.01",
		"--refine=0.01", "--refine-step=0.0001",
	)
	require.Equal(t, exitOK, code, stderr)

	var rep gridReport
	decodeYAML(t, stdout, &rep)
	assert.Equal(t, "quadratic", rep.Problem)
	assert.Equal(t, []float64{0.25, 1, -1}, rep.Params)
	assert.Equal(t, 1500, rep.Points)
	assert.Equal(t, 517, rep.Root.Index)
	assert.InDelta(t, -4.83, rep.Root.X, 1e-9)
	assert.InDelta(t, 0.002225, rep.Root.Residual, 1e-9)
	assert.Empty(t, rep.Roots)

	require.NotNil(t, rep.Refined)
	assert.InDelta(t, -2-2*math.Sqrt2, rep.Refined.X, 1e-4)
	assert.Less(t, math.Abs(rep.Refined.Residual), math.Abs(rep.Root.Residual))
}

// TestRun_Grid_AllAndParams verifies --params and --all report every crossing.
func TestRun_Grid_AllAndParams(t *testing.T) {
	t.Parallel()

	code, stdout, stderr := runCLI(t, "grid", "quadratic",
		"--params=1,0,-4", "--start=-3", "--stop=3", "--step=0.5", "--all",
	)
	require.Equal(t, exitOK, code, stderr)

	var rep gridReport
	decodeYAML(t, stdout, &rep)
	assert.Equal(t, 12, rep.Points)
	assert.Equal(t, rootReport{X: -2, Residual: 0, Index: 2}, rep.Root)
	assert.Equal(t, []rootReport{
		{X: -2, Residual: 0, Index: 2},
		{X: 2, Residual: 0, Index: 10},
	}, rep.Roots)
}

// TestRun_Grid_Table verifies the CSV export.
func TestRun_Grid_Table(t *testing.T) {
	t.Parallel()

	p := filepath.Join(t.TempDir(), "table.csv")
	code, _, stderr := runCLI(t, "grid", "quadratic",
		"--params=1,0,-4", "--start=-1", "--stop=1", "--step=0.5", "--table", p,
	)
	require.Equal(t, exitOK, code, stderr)
	assert.Equal(t, "x,f_x\n-1,-3\n-0.5,-3.75\n0,-4\n0.5,-3.75\n", readFileString(t, p))
	assert.Contains(t, stderr, "table written")
}

// TestRun_Grid_Workers verifies the report does not depend on the worker count.
func TestRun_Grid_Workers(t *testing.T) {
	t.Parallel()

	args := []string{"grid", "logexp", "--start=-1", "--stop=2", "--step=0.01"}

	code, serial, stderr := runCLI(t, args...)
	require.Equal(t, exitOK, code, stderr)

	code, parallel, stderr := runCLI(t, append(args, "--workers=7")...)
	require.Equal(t, exitOK, code, stderr)
	assert.Equal(t, serial, parallel)

	var rep gridReport
	decodeYAML(t, serial, &rep)
	assert.InDelta(t, 1.31, rep.Root.X, 1e-9)
}

// TestRun_Grid_Errors verifies exit codes for usage and runtime errors.
func TestRun_Grid_Errors(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name     string
		args     []string
		wantCode int
		wantErr  string
	}{
		{
			name:     "missing step",
			args:     []string{"grid", "quadratic", "--start=-1", "--stop=1"},
			wantCode: exitUsage,
			wantErr:  "required flag --step not set",
		},
		{
			name:     "no problem",
			args:     []string{"grid", "--start=-1", "--stop=1", "--step=0.1"},
			wantCode: exitUsage,
			wantErr:  "accepts 1 arg(s), received 0",
		},
		{
			name:     "bad float",
			args:     []string{"grid", "quadratic", "--start=abc", "--stop=1", "--step=0.1"},
			wantCode: exitUsage,
			wantErr:  "invalid argument",
		},
		{
			name:     "param count",
			args:     []string{"grid", "quadratic", "--params=1,2", "--start=-1", "--stop=1", "--step=0.1"},
			wantCode: exitUsage,
			wantErr:  `takes 3 params, got 2`,
		},
		{
			name:     "unknown problem",
			args:     []string{"grid", "nope", "--start=-1", "--stop=1", "--step=0.1"},
			wantCode: exitFailure,
			wantErr:  `catalog: missing problem "nope"`,
		},
		{
			name:     "system is not scalar",
			args:     []string{"grid", "circle", "--start=-1", "--stop=1", "--step=0.1"},
			wantCode: exitFailure,
			wantErr:  `missing problem "circle"`,
		},
		{
			name:     "empty range",
			args:     []string{"grid", "quadratic", "--start=1", "--stop=1", "--step=0.1"},
			wantCode: exitFailure,
			wantErr:  "invalid range",
		},
		{
			name:     "step too large",
			args:     []string{"grid", "quadratic", "--start=0", "--stop=1", "--step=2"},
			wantCode: exitFailure,
			wantErr:  "step must be < stop-start",
		},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			code, stdout, stderr := runCLI(t, tc.args...)
			assert.Equal(t, tc.wantCode, code)
			assert.Empty(t, stdout)
			assert.Contains(t, stderr, tc.wantErr)
			if tc.wantCode == exitUsage {
				assert.Contains(t, stderr, "Usage:")
			}
		})
	}
}

//
// -----------------------------------------------------------------------------
// run(): solve
// -----------------------------------------------------------------------------

// TestRun_Solve_Circle verifies the 2x2 system from its default guess.
func TestRun_Solve_Circle(t *testing.T) {
	t.Parallel()

	code, stdout, stderr := runCLI(t, "solve", "circle")
	require.Equal(t, exitOK, code, stderr)

	var rep solveReport
	decodeYAML(t, stdout, &rep)
	assert.Equal(t, "circle", rep.Problem)
	assert.Equal(t, "bfgs", rep.Method)
	assert.Equal(t, []float64{1, 1}, rep.X0)
	assert.True(t, rep.Success, stdout)
	require.Len(t, rep.X, 2)
	assert.InDelta(t, 0.5, rep.X[0], 1e-6)
	assert.InDelta(t, math.Sqrt(3)/2, rep.X[1], 1e-6)
	assert.Contains(t, stderr, "converged")
}

// TestRun_Solve_Scalar verifies a scalar problem goes through the single variable path.
func TestRun_Solve_Scalar(t *testing.T) {
	t.Parallel()

	code, stdout, stderr := runCLI(t, "solve", "logexp", "--x0=1")
	require.Equal(t, exitOK, code, stderr)

	var rep solveReport
	decodeYAML(t, stdout, &rep)
	assert.True(t, rep.Success, stdout)
	require.Len(t, rep.X, 1)
	assert.InDelta(t, 1.3098, rep.X[0], 1e-3)
	assert.LessOrEqual(t, math.Abs(rep.Fun[0]), 1e-8)
}

// TestRun_Solve_NelderMead verifies --method reaches the solver.
func TestRun_Solve_NelderMead(t *testing.T) {
	t.Parallel()

	code, stdout, stderr := runCLI(t, "solve", "quadratic", "--x0=1", "--method=nelder-mead", "--tolerance=1e-6")
	require.Equal(t, exitOK, code, stderr)

	var rep solveReport
	decodeYAML(t, stdout, &rep)
	assert.Equal(t, "nelder-mead", rep.Method)
	assert.True(t, rep.Success, stdout)
	assert.InDelta(t, 2*math.Sqrt2-2, rep.X[0], 1e-4)
}

// TestRun_Solve_Errors verifies bad starting points and params are usage errors.
func TestRun_Solve_Errors(t *testing.T) {
	t.Parallel()

	code, _, stderr := runCLI(t, "solve", "circle", "--x0=1")
	assert.Equal(t, exitUsage, code)
	assert.Contains(t, stderr, `problem "circle" has 2 unknowns, x0 has 1`)

	code, _, stderr = runCLI(t, "solve", "logexp", "--x0=1,2")
	assert.Equal(t, exitUsage, code)
	assert.Contains(t, stderr, `problem "logexp" has 1 unknown, x0 has 2`)

	code, _, stderr = runCLI(t, "solve", "cubic3p", "--params=1")
	assert.Equal(t, exitUsage, code)
	assert.Contains(t, stderr, "takes 3 params, got 1")

	code, _, stderr = runCLI(t, "solve", "nope")
	assert.Equal(t, exitFailure, code)
	assert.Contains(t, stderr, `missing problem "nope"`)

	code, _, stderr = runCLI(t, "solve", "logexp", "--x0=0")
	assert.Equal(t, exitFailure, code)
	assert.Contains(t, stderr, "non-finite residual")
}

//
// -----------------------------------------------------------------------------
// run(): demo
// -----------------------------------------------------------------------------

// TestRun_Demo verifies every walkthrough step reports and the grid steps match known values.
func TestRun_Demo(t *testing.T) {
	t.Parallel()

	code, stdout, stderr := runCLI(t, "demo")
	require.Equal(t, exitOK, code, stderr)

	var rep demoReport
	decodeYAML(t, stdout, &rep)
	require.Len(t, rep.Steps, len(walkthrough()))

	coarse := rep.Steps[0].Grid
	require.NotNil(t, coarse)
	assert.Equal(t, 517, coarse.Root.Index)
	require.Len(t, coarse.Roots, 2)
	assert.InDelta(t, -4.83, coarse.Roots[0].X, 1e-9)
	assert.InDelta(t, 0.83, coarse.Roots[1].X, 1e-9)

	fine := rep.Steps[1].Grid
	require.NotNil(t, fine)
	assert.Equal(t, 10000, fine.Points)
	assert.InDelta(t, 0.8284, fine.Root.X, 1e-9)

	logexp := rep.Steps[2].Grid
	require.NotNil(t, logexp)
	assert.Equal(t, 190, logexp.Points)
	require.NotNil(t, logexp.Refined)
	assert.InDelta(t, 1.3098, logexp.Refined.X, 1e-4)

	for _, s := range rep.Steps[3:] {
		require.NotNil(t, s.Solve, s.Name)
		assert.Len(t, s.Solve.Fun, len(s.Solve.X), s.Name)
	}
	assert.True(t, rep.Steps[3].Solve.Success)
	assert.True(t, rep.Steps[4].Solve.Success)
	assert.Equal(t, []float64{24, 4, 2}, rep.Steps[9].Solve.Params)
}

//
// -----------------------------------------------------------------------------
// run(): configuration and logging
// -----------------------------------------------------------------------------

// TestRun_ConfigFile_DebugLogsEvaluations verifies the observer logs every evaluation at debug level.
func TestRun_ConfigFile_DebugLogsEvaluations(t *testing.T) {
	t.Parallel()

	p := writeTempFile(t, t.TempDir(), "rootfind.yaml", "log_level: debug\nworkers: 2\n")

	code, _, stderr := runCLI(t, "--config", p, "grid", "quadratic", "--start=-1", "--stop=1", "--step=0.5")
	require.Equal(t, exitOK, code, stderr)
	assert.Equal(t, 4, strings.Count(stderr, "msg=evaluated"))
	assert.Contains(t, stderr, "config loaded")
}

// TestRun_DebugLogsRefinedEvaluations verifies the refined search is logged like the coarse one.
func TestRun_DebugLogsRefinedEvaluations(t *testing.T) {
	t.Parallel()

	p := writeTempFile(t, t.TempDir(), "rootfind.yaml", "log_level: debug\n")

	// coarse root 0.5, refined over [0, 1) with step 0.25
	code, _, stderr := runCLI(t, "--config", p, "grid", "quadratic",
		"--start=-1", "--stop=1", "--step=0.5", "--refine=0.5", "--refine-step=0.25")
	require.Equal(t, exitOK, code, stderr)
	assert.Equal(t, 8, strings.Count(stderr, "msg=evaluated"))
	assert.Contains(t, stderr, "refined root")
}

// TestRun_InfoHidesEvaluations verifies the default level does not log evaluations.
func TestRun_InfoHidesEvaluations(t *testing.T) {
	t.Parallel()

	code, _, stderr := runCLI(t, "grid", "quadratic", "--start=-1", "--stop=1", "--step=0.5")
	require.Equal(t, exitOK, code, stderr)
	assert.NotContains(t, stderr, "evaluated")
	assert.Contains(t, stderr, "grid root")
}

// TestRun_BadConfig verifies invalid settings fail before any work.
func TestRun_BadConfig(t *testing.T) {
	t.Parallel()

	code, stdout, stderr := runCLI(t, "list", "--workers=0")
	assert.Equal(t, exitFailure, code)
	assert.Empty(t, stdout)
	assert.Contains(t, stderr, "workers must be > 0")

	code, _, stderr = runCLI(t, "list", "--config", filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Equal(t, exitFailure, code)
	assert.Contains(t, stderr, "config: read")
}

// TestRun_EnvJSONLogs verifies ROOTFIND_LOG_FORMAT switches the formatter.
func TestRun_EnvJSONLogs(t *testing.T) {
	t.Setenv("ROOTFIND_LOG_FORMAT", "json")

	code, _, stderr := runCLI(t, "grid", "quadratic", "--start=-1", "--stop=1", "--step=0.5")
	require.Equal(t, exitOK, code, stderr)
	assert.Contains(t, stderr, `"msg":"grid root"`)
}
