package main

import (
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/sghaida/rootfind/internal/catalog"
	"github.com/sghaida/rootfind/solve"
)

// solveInput describes one solver run. Nil Params or X0 select the problem defaults.
type solveInput struct {
	Problem string
	Params  []float64
	X0      []float64
}

type solveReport struct {
	Problem string    `yaml:"problem"`
	Method  string    `yaml:"method"`
	Params  []float64 `yaml:"params,omitempty"`
	X0      []float64 `yaml:"x0"`

	solve.Result `yaml:",inline"`
}

func newSolveCmd(a *app) *cobra.Command {
	var in solveInput

	cmd := &cobra.Command{
		Use:   "solve PROBLEM",
		Short: "Solve a scalar equation or a system of equations from a starting point",
		Example: "  rootfind solve logexp --x0=1\n" +
			"  rootfind solve cubic3p --params=24,4,2 --x0=0,0,0 --method=nelder-mead",
		Args: exactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			in.Problem = args[0]
			rep, err := a.runSolve(in)
			if err != nil {
				return err
			}
			return a.emit(rep)
		},
	}

	f := cmd.Flags()
	f.Float64SliceVar(&in.Params, "params", nil, "problem parameters, comma separated (defaults when omitted)")
	f.Float64SliceVar(&in.X0, "x0", nil, "starting point, comma separated (problem guess when omitted)")

	return cmd
}

// runSolve resolves the problem as a system first, then as a scalar equation.
func (a *app) runSolve(in solveInput) (solveReport, error) {
	opts := a.cfg.SolveOptions()
	log := a.log.WithFields(logrus.Fields{"problem": in.Problem, "method": a.cfg.Method})

	var (
		rep solveReport
		err error
	)
	sys, sysErr := a.reg.ResolveSystem(in.Problem)
	switch {
	case sysErr == nil:
		rep, err = solveSystem(sys, in, opts)
	case errors.As(sysErr, new(catalog.MissingProblemError)):
		var sc catalog.Scalar
		sc, err = a.reg.ResolveScalar(in.Problem)
		if err == nil {
			rep, err = solveScalar(sc, in, opts)
		}
	default:
		err = sysErr
	}
	if err != nil {
		log.WithError(err).Error("solve failed")
		return solveReport{}, err
	}

	rep.Problem = in.Problem
	rep.Method = a.cfg.Method

	entry := log.WithFields(logrus.Fields{
		"x":           rep.X,
		"fun":         rep.Fun,
		"status":      rep.Status,
		"evaluations": rep.Evaluations,
	})
	if rep.Success {
		entry.Info("converged")
	} else {
		entry.Warn("no root within tolerance")
	}
	return rep, nil
}

func solveSystem(sys catalog.System, in solveInput, opts []solve.Option) (solveReport, error) {
	params, err := sys.CheckParams(in.Params)
	if err != nil {
		return solveReport{}, usageError{err: err}
	}
	x0 := in.X0
	if x0 == nil {
		x0 = sys.Guess
	}
	if len(x0) != sys.Dim {
		return solveReport{}, usageError{err: fmt.Errorf("problem %q has %d unknowns, x0 has %d", sys.Name, sys.Dim, len(x0))}
	}

	res, err := solve.RootWithParams(sys.Fn, x0, params, opts...)
	if err != nil {
		return solveReport{}, err
	}
	return solveReport{Params: params, X0: x0, Result: res}, nil
}

func solveScalar(sc catalog.Scalar, in solveInput, opts []solve.Option) (solveReport, error) {
	params, err := sc.CheckParams(in.Params)
	if err != nil {
		return solveReport{}, usageError{err: err}
	}
	x0 := in.X0
	if x0 == nil {
		x0 = []float64{1}
	}
	if len(x0) != 1 {
		return solveReport{}, usageError{err: fmt.Errorf("problem %q has 1 unknown, x0 has %d", sc.Name, len(x0))}
	}
	fn, err := sc.Bind(params)
	if err != nil {
		return solveReport{}, err
	}

	res, err := solve.Scalar(fn, x0[0], opts...)
	if err != nil {
		return solveReport{}, err
	}
	return solveReport{Params: params, X0: x0, Result: res}, nil
}
