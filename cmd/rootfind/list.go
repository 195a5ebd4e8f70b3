package main

import (
	"github.com/spf13/cobra"
)

type problemEntry struct {
	Name        string    `yaml:"name"`
	Kind        string    `yaml:"kind"`
	Unknowns    int       `yaml:"unknowns"`
	Params      []float64 `yaml:"params,omitempty"`
	Guess       []float64 `yaml:"guess,omitempty"`
	Description string    `yaml:"description"`
}

func newListCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the registered problems",
		Args:  exactArgs(0),
		RunE: func(_ *cobra.Command, _ []string) error {
			return a.emit(a.problems())
		},
	}
}

// problems lists scalar problems first, then systems, each sorted by name.
func (a *app) problems() []problemEntry {
	var out []problemEntry
	for _, name := range a.reg.ScalarNames() {
		s := a.reg.MustScalar(name)
		out = append(out, problemEntry{
			Name:        s.Name,
			Kind:        "scalar",
			Unknowns:    1,
			Params:      s.Params,
			Description: s.Description,
		})
	}
	for _, name := range a.reg.SystemNames() {
		s := a.reg.MustSystem(name)
		out = append(out, problemEntry{
			Name:        s.Name,
			Kind:        "system",
			Unknowns:    s.Dim,
			Params:      s.Params,
			Guess:       s.Guess,
			Description: s.Description,
		})
	}
	return out
}
