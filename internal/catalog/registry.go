package catalog

import (
	"errors"
	"fmt"
	"sort"
	"strconv"

	"github.com/sghaida/rootfind/grid"
	"github.com/sghaida/rootfind/solve"
)

// ErrRegistryPanic is returned if a problem lookup panics internally.
var ErrRegistryPanic = errors.New("catalog: panic during Resolve")

// MissingProblemError is returned when no problem is registered under a name.
type MissingProblemError struct{ Name string }

// Error implements the error interface.
func (e MissingProblemError) Error() string {
	// Example: catalog: missing problem "cubic"
	return "catalog: missing problem " + strconv.Quote(e.Name)
}

// ParamCountError is returned when a problem is bound with the wrong number of parameters.
type ParamCountError struct {
	Name string
	Want int
	Got  int
}

// Error implements the error interface.
func (e ParamCountError) Error() string {
	// Example: catalog: problem "quadratic" takes 3 params, got 2
	return "catalog: problem " + strconv.Quote(e.Name) + " takes " + strconv.Itoa(e.Want) +
		" params, got " + strconv.Itoa(e.Got)
}

// Scalar is a named single-variable function with fixed parameters.
type Scalar struct {
	Name        string
	Description string

	// Params are the defaults used when Bind receives none.
	Params []float64

	Fn func(x float64, params []float64) float64
}

// CheckParams returns a copy of params, or of the defaults when params is nil.
func (s Scalar) CheckParams(params []float64) ([]float64, error) {
	return checkParams(s.Name, s.Params, params)
}

// Bind fixes the parameters and returns a grid.Func. A nil params slice selects the defaults.
func (s Scalar) Bind(params []float64) (grid.Func, error) {
	p, err := s.CheckParams(params)
	if err != nil {
		return nil, err
	}
	fn := s.Fn
	return func(x float64) float64 { return fn(x, p) }, nil
}

// System is a named system of equations with fixed parameters.
type System struct {
	Name        string
	Description string

	// Dim is the number of unknowns.
	Dim int

	// Params are the defaults used when Bind receives none.
	Params []float64

	// Guess is a sensible starting point.
	Guess []float64

	Fn func(x, params []float64) []float64
}

// CheckParams returns a copy of params, or of the defaults when params is nil.
func (s System) CheckParams(params []float64) ([]float64, error) {
	return checkParams(s.Name, s.Params, params)
}

// Bind fixes the parameters and returns a solve.System.
func (s System) Bind(params []float64) (solve.System, error) {
	p, err := s.CheckParams(params)
	if err != nil {
		return nil, err
	}
	fn := s.Fn
	return func(x []float64) []float64 { return fn(x, p) }, nil
}

func checkParams(name string, defaults, params []float64) ([]float64, error) {
	if params == nil {
		return append([]float64(nil), defaults...), nil
	}
	if len(params) != len(defaults) {
		return nil, ParamCountError{Name: name, Want: len(defaults), Got: len(params)}
	}
	return append([]float64(nil), params...), nil
}

// Registry holds problems by name. It is filled at startup and read-only afterwards.
type Registry struct {
	scalars map[string]Scalar
	systems map[string]System
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{scalars: map[string]Scalar{}, systems: map[string]System{}}
}

// ProvideScalar stores s under s.Name and returns the registry for chaining.
func (r *Registry) ProvideScalar(s Scalar) *Registry {
	r.scalars[s.Name] = s
	return r
}

// ProvideSystem stores s under s.Name and returns the registry for chaining.
func (r *Registry) ProvideSystem(s System) *Registry {
	r.systems[s.Name] = s
	return r
}

// Scalar returns the scalar problem registered under name.
func (r *Registry) Scalar(name string) (Scalar, bool) {
	s, ok := r.scalars[name]
	return s, ok
}

// System returns the system registered under name.
func (r *Registry) System(name string) (System, bool) {
	s, ok := r.systems[name]
	return s, ok
}

// MustScalar returns the scalar problem or panics with MissingProblemError.
func (r *Registry) MustScalar(name string) Scalar {
	s, ok := r.Scalar(name)
	if !ok {
		panic(MissingProblemError{Name: name})
	}
	return s
}

// MustSystem returns the system or panics with MissingProblemError.
func (r *Registry) MustSystem(name string) System {
	s, ok := r.System(name)
	if !ok {
		panic(MissingProblemError{Name: name})
	}
	return s
}

// ResolveScalar looks up name and converts panics into errors.
func (r *Registry) ResolveScalar(name string) (s Scalar, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			s = Scalar{}
			err = fmt.Errorf("%w: %v", ErrRegistryPanic, rec)
		}
	}()
	s, ok := r.scalars[name]
	if !ok {
		return Scalar{}, MissingProblemError{Name: name}
	}
	return s, nil
}

// ResolveSystem looks up name and converts panics into errors.
func (r *Registry) ResolveSystem(name string) (s System, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			s = System{}
			err = fmt.Errorf("%w: %v", ErrRegistryPanic, rec)
		}
	}()
	s, ok := r.systems[name]
	if !ok {
		return System{}, MissingProblemError{Name: name}
	}
	return s, nil
}

// ScalarNames returns the registered scalar names, sorted.
func (r *Registry) ScalarNames() []string { return sortedKeys(r.scalars) }

// SystemNames returns the registered system names, sorted.
func (r *Registry) SystemNames() []string { return sortedKeys(r.systems) }

func sortedKeys[V any](m map[string]V) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
