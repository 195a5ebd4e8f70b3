package main

import (
	"github.com/spf13/cobra"
)

// demoStep is one stage of the walkthrough. Exactly one of Grid or Solve is set.
type demoStep struct {
	Name  string
	Grid  *gridInput
	Solve *solveInput
}

type demoResult struct {
	Name  string       `yaml:"name"`
	Grid  *gridReport  `yaml:"grid,omitempty"`
	Solve *solveReport `yaml:"solve,omitempty"`
}

type demoReport struct {
	Steps []demoResult `yaml:"steps"`
}

// walkthrough is the classroom sequence: grid search first, then local solvers on
// single equations, systems and parameterized systems.
func walkthrough() []demoStep {
	return []demoStep{
		{
			Name: "quadratic, coarse grid",
			Grid: &gridInput{Problem: "quadratic", Start: -10, Stop: 5, Step: 0.01, All: true},
		},
		{
			Name: "quadratic, fine grid on [0, 1)",
			Grid: &gridInput{Problem: "quadratic", Start: 0, Stop: 1, Step: 0.0001},
		},
		{
			Name: "logexp, grid",
			Grid: &gridInput{Problem: "logexp", Start: 0.1, Stop: 2, Step: 0.01, RefineWidth: 0.01, RefineStep: 0.0001},
		},
		{
			Name:  "logexp, solver from 1",
			Solve: &solveInput{Problem: "logexp", X0: []float64{1}},
		},
		{
			Name:  "circle, solver from (1, 1)",
			Solve: &solveInput{Problem: "circle", X0: []float64{1, 1}},
		},
		{
			Name:  "cubic3, solver from (1, 1, 1)",
			Solve: &solveInput{Problem: "cubic3", X0: []float64{1, 1, 1}},
		},
		{
			Name:  "cubic3, solver from (0, 0, 0)",
			Solve: &solveInput{Problem: "cubic3", X0: []float64{0, 0, 0}},
		},
		{
			Name:  "cubic3p (12, 2, 1), solver from (1, 1, 1)",
			Solve: &solveInput{Problem: "cubic3p", Params: []float64{12, 2, 1}, X0: []float64{1, 1, 1}},
		},
		{
			Name:  "cubic3p (24, 4, 2), solver from (0, 0, 0)",
			Solve: &solveInput{Problem: "cubic3p", Params: []float64{24, 4, 2}, X0: []float64{0, 0, 0}},
		},
		{
			Name:  "cubic3p (24, 4, 2), solver from a nearby point",
			Solve: &solveInput{Problem: "cubic3p", Params: []float64{24, 4, 2}, X0: []float64{-0.6406658, 1.2471383, 4.8366856}},
		},
	}
}

func newDemoCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Run the walkthrough of grid search and solver examples",
		Args:  exactArgs(0),
		RunE: func(_ *cobra.Command, _ []string) error {
			rep, err := a.runDemo(walkthrough())
			if err != nil {
				return err
			}
			return a.emit(rep)
		},
	}
}

// runDemo executes steps in order and stops at the first error.
func (a *app) runDemo(steps []demoStep) (demoReport, error) {
	var rep demoReport
	for _, s := range steps {
		a.log.WithField("step", s.Name).Info("demo step")

		res := demoResult{Name: s.Name}
		switch {
		case s.Grid != nil:
			g, _, err := a.runGrid(*s.Grid)
			if err != nil {
				return demoReport{}, err
			}
			res.Grid = &g
		case s.Solve != nil:
			r, err := a.runSolve(*s.Solve)
			if err != nil {
				return demoReport{}, err
			}
			res.Solve = &r
		}
		rep.Steps = append(rep.Steps, res)
	}
	return rep, nil
}
