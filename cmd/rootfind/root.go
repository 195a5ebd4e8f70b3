package main

import (
	"fmt"
	"io"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/sghaida/rootfind/internal/catalog"
	"github.com/sghaida/rootfind/internal/config"
)

// app carries what every subcommand needs once flags are parsed.
type app struct {
	stdout io.Writer
	stderr io.Writer

	configPath string
	outPath    string

	cfg config.Config
	log *logrus.Logger
	reg *catalog.Registry
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	a := &app{
		stdout: stdout,
		stderr: stderr,
		reg:    catalog.Default(),
	}

	def := config.Default()

	root := &cobra.Command{
		Use:           "rootfind",
		Short:         "Approximate roots of equations by grid search or numerical solving",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) > 0 {
				return usageError{err: fmt.Errorf("unknown command %q for %q", args[0], cmd.CommandPath())}
			}
			return nil
		},
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}
	root.SetOut(stdout)
	root.SetErr(stderr)
	root.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return usageError{err: err}
	})

	pf := root.PersistentFlags()
	pf.StringVar(&a.configPath, "config", "", "YAML config file")
	pf.StringVarP(&a.outPath, "out", "o", "", "write the report to this file instead of stdout")
	pf.String("log-level", def.LogLevel, "log level (trace, debug, info, warn, error)")
	pf.String("log-format", def.LogFormat, "log format (text or json)")
	pf.Int("workers", def.Workers, "concurrent evaluation workers for grid search")
	pf.String("method", def.Method, "solver method (bfgs or nelder-mead)")
	pf.Float64("tolerance", def.Tolerance, "largest |F_i(x)| accepted as a root")
	pf.Int("max-iterations", def.MaxIterations, "solver iteration cap")

	root.AddCommand(
		newGridCmd(a),
		newSolveCmd(a),
		newDemoCmd(a),
		newListCmd(a),
	)
	return root
}

// setup loads the layered config and builds the logger.
func (a *app) setup(cmd *cobra.Command) error {
	cfg, err := config.Load(a.configPath, cmd.Flags())
	if err != nil {
		return err
	}
	a.cfg = cfg

	l := logrus.New()
	l.SetOutput(a.stderr)
	a.log = cfg.Logger(l)

	a.log.WithFields(logrus.Fields{
		"command": cmd.Name(),
		"workers": cfg.Workers,
		"method":  cfg.Method,
	}).Debug("config loaded")
	return nil
}

// exactArgs is cobra.ExactArgs reporting a usage error.
func exactArgs(n int) cobra.PositionalArgs {
	return func(_ *cobra.Command, args []string) error {
		if len(args) != n {
			return usageError{err: fmt.Errorf("accepts %d arg(s), received %d", n, len(args))}
		}
		return nil
	}
}
