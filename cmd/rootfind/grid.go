package main

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/sghaida/rootfind/grid"
)

// gridInput describes one grid search.
type gridInput struct {
	Problem string
	Params  []float64

	Start, Stop, Step float64

	// RefineWidth > 0 runs a second search of half-width RefineWidth around the first result.
	RefineWidth float64
	RefineStep  float64

	// All also reports one root per sign change.
	All bool
}

type rootReport struct {
	X        float64 `yaml:"x"`
	Residual float64 `yaml:"residual"`
	Index    int     `yaml:"index"`
}

func toRootReport(r grid.Result) rootReport {
	return rootReport{X: r.Root, Residual: r.Residual, Index: r.Index}
}

type gridReport struct {
	Problem string    `yaml:"problem"`
	Params  []float64 `yaml:"params,omitempty"`
	Start   float64   `yaml:"start"`
	Stop    float64   `yaml:"stop"`
	Step    float64   `yaml:"step"`
	Points  int       `yaml:"points"`

	Root    rootReport   `yaml:"root"`
	Refined *rootReport  `yaml:"refined,omitempty"`
	Roots   []rootReport `yaml:"roots,omitempty"`
}

func newGridCmd(a *app) *cobra.Command {
	var (
		in        gridInput
		tablePath string
	)

	cmd := &cobra.Command{
		Use:   "grid PROBLEM",
		Short: "Approximate a root of a scalar problem by evaluating it on a grid",
		Long: "Evaluates PROBLEM at start, start+step, ... below stop and reports the point with the\n" +
			"smallest |f(x)| together with f(x) there, so the quality of the approximation is visible.",
		Example: "  rootfind grid quadratic --start=-10 --stop=5 --step=0.01 --refine=0.01 --refine-step=0.0001\n" +
			"  rootfind grid quadratic --params=1,0,-4 --start=-3 --stop=3 --step=0.5 --all --table=q.csv",
		Args: exactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, name := range []string{"start", "stop", "step"} {
				if !cmd.Flags().Changed(name) {
					return usageError{err: fmt.Errorf("required flag --%s not set", name)}
				}
			}
			in.Problem = args[0]
			rep, tbl, err := a.runGrid(in)
			if err != nil {
				return err
			}
			if tablePath != "" {
				if err := saveTable(tablePath, tbl); err != nil {
					return err
				}
				a.log.WithFields(logrus.Fields{"path": tablePath, "points": tbl.Len()}).Info("table written")
			}
			return a.emit(rep)
		},
	}

	f := cmd.Flags()
	f.Float64Var(&in.Start, "start", 0, "first grid point (inclusive)")
	f.Float64Var(&in.Stop, "stop", 0, "upper bound (exclusive)")
	f.Float64Var(&in.Step, "step", 0, "grid spacing")
	f.Float64SliceVar(&in.Params, "params", nil, "problem parameters, comma separated (defaults when omitted)")
	f.Float64Var(&in.RefineWidth, "refine", 0, "half-width of a second, finer search around the result (0 disables)")
	f.Float64Var(&in.RefineStep, "refine-step", 0, "grid spacing of the refined search (default step/100)")
	f.BoolVar(&in.All, "all", false, "also report one root per sign change")
	f.StringVar(&tablePath, "table", "", "write the (x, f(x)) table as CSV to this file")

	return cmd
}

// runGrid resolves the problem and runs the search described by in.
func (a *app) runGrid(in gridInput) (gridReport, grid.Table, error) {
	p, err := a.reg.ResolveScalar(in.Problem)
	if err != nil {
		return gridReport{}, grid.Table{}, err
	}
	params, err := p.CheckParams(in.Params)
	if err != nil {
		return gridReport{}, grid.Table{}, usageError{err: err}
	}
	fn, err := p.Bind(params)
	if err != nil {
		return gridReport{}, grid.Table{}, err
	}

	log := a.log.WithFields(logrus.Fields{
		"problem": in.Problem,
		"start":   in.Start,
		"stop":    in.Stop,
		"step":    in.Step,
	})

	opts := a.cfg.GridOptions()
	if a.log.IsLevelEnabled(logrus.DebugLevel) {
		opts = append(opts, grid.WithObserver(func(i int, x, fx float64) {
			log.WithFields(logrus.Fields{"i": i, "x": x, "f_x": fx}).Debug("evaluated")
		}))
	}

	tbl, res, err := grid.Scan(fn, in.Start, in.Stop, in.Step, opts...)
	if err != nil {
		log.WithError(err).Error("grid search failed")
		return gridReport{}, grid.Table{}, err
	}
	log.WithFields(logrus.Fields{"x": res.Root, "residual": res.Residual, "index": res.Index}).Info("grid root")

	rep := gridReport{
		Problem: in.Problem,
		Params:  params,
		Start:   in.Start,
		Stop:    in.Stop,
		Step:    in.Step,
		Points:  tbl.Len(),
		Root:    toRootReport(res),
	}

	if in.All {
		for _, r := range tbl.Roots() {
			rep.Roots = append(rep.Roots, toRootReport(r))
		}
	}

	if in.RefineWidth > 0 {
		step := in.RefineStep
		if step <= 0 {
			step = in.Step / 100
		}
		fine, err := grid.Refine(fn, res, in.RefineWidth, step, opts...)
		if err != nil {
			log.WithError(err).Error("refine failed")
			return gridReport{}, grid.Table{}, err
		}
		log.WithFields(logrus.Fields{"x": fine.Root, "residual": fine.Residual}).Info("refined root")
		r := toRootReport(fine)
		rep.Refined = &r
	}

	return rep, tbl, nil
}
