package solve

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/diff/fd"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/optimize"
)

// System is a vector function F whose root is sought: F(x) = 0.
// It must not modify or retain x.
type System func(x []float64) []float64

// ParamSystem is a System that also depends on a fixed parameter vector.
type ParamSystem func(x, params []float64) []float64

// Result is the outcome of a solve.
type Result struct {
	// X is the best location found.
	X []float64 `yaml:"x"`

	// Fun is F(X), the residual vector at X.
	Fun []float64 `yaml:"fun"`

	// Success reports whether every |Fun[i]| is within the tolerance.
	Success bool `yaml:"success"`

	// Status is the gonum termination status.
	Status string `yaml:"status"`

	// Message carries the optimizer error, if it stopped on one.
	Message string `yaml:"message,omitempty"`

	Iterations  int `yaml:"iterations"`
	Evaluations int `yaml:"evaluations"`
}

// Root searches for x with F(x) = 0 starting from x0.
//
// The search minimizes ½‖F(x)‖² with gonum/optimize, so F may have more equations
// than unknowns. Like any local method it is sensitive to x0 and may stop at a
// local minimum with a non-zero residual; Success is false in that case and the
// error is nil. An error is returned only for unusable input or when the
// optimizer could not start.
func Root(f System, x0 []float64, opts ...Option) (Result, error) {
	if f == nil {
		return Result{}, ErrNilSystem
	}
	if len(x0) == 0 {
		return Result{}, ErrEmptyGuess
	}
	o := newOptions(opts)

	start := append([]float64(nil), x0...)
	r := &residual{f: f}
	f0, ok := r.call(start)
	if !ok {
		return Result{}, r.err
	}
	f0 = append([]float64(nil), f0...)
	if len(f0) == 0 {
		return Result{}, ErrEmptyResidual
	}
	if !allFinite(f0) {
		return Result{}, NonFiniteResidualError{X0: start, Fun: f0}
	}
	r.m = len(f0)

	problem := optimize.Problem{Func: r.objective, Status: r.status}

	var method optimize.Method
	switch o.method {
	case NelderMead:
		method = &optimize.NelderMead{}
	default:
		problem.Grad = r.gradient
		method = &optimize.BFGS{}
	}

	settings := &optimize.Settings{
		MajorIterations: o.maxIterations,
		Converger: &optimize.FunctionConverge{
			Relative:   1e-12,
			Iterations: 100,
		},
	}

	res, err := optimize.Minimize(problem, start, settings, method)
	if r.err != nil {
		return Result{}, r.err
	}
	if res == nil {
		return Result{}, fmt.Errorf("solve: %w", err)
	}

	x := append([]float64(nil), res.X...)
	fun := r.eval(x)
	if r.err != nil {
		return Result{}, r.err
	}
	fun = append([]float64(nil), fun...)

	out := Result{
		X:           x,
		Fun:         fun,
		Success:     allFinite(fun) && floats.Norm(fun, math.Inf(1)) <= o.tol,
		Status:      res.Status.String(),
		Iterations:  res.MajorIterations,
		Evaluations: r.evals,
	}
	if err == nil {
		err = res.Status.Err()
	}
	if err != nil {
		out.Message = err.Error()
	}
	return out, nil
}

// RootWithParams is Root for a system with fixed extra parameters.
// params is copied, so the caller may reuse it.
func RootWithParams(f ParamSystem, x0, params []float64, opts ...Option) (Result, error) {
	if f == nil {
		return Result{}, ErrNilSystem
	}
	p := append([]float64(nil), params...)
	return Root(func(x []float64) []float64 { return f(x, p) }, x0, opts...)
}

// Scalar searches for a root of a single-variable function starting from x0.
// The returned X and Fun have one element each.
func Scalar(f func(float64) float64, x0 float64, opts ...Option) (Result, error) {
	if f == nil {
		return Result{}, ErrNilSystem
	}
	return Root(func(x []float64) []float64 { return []float64{f(x[0])} }, []float64{x0}, opts...)
}

// residual adapts a System to the objective and gradient gonum expects.
// Minimize runs evaluations serially (Settings.Concurrent is 0), so no locking.
// The first failure is kept in err; f is not called again after it.
type residual struct {
	f     System
	m     int
	evals int
	err   error
}

// call recovers a panic in f into r.err. Inside Minimize f runs on a gonum worker goroutine.
func (r *residual) call(x []float64) (y []float64, ok bool) {
	if r.err != nil {
		return nil, false
	}
	r.evals++
	defer func() {
		if rec := recover(); rec != nil {
			r.err = EvalPanicError{X: append([]float64(nil), x...), Value: rec}
			y, ok = nil, false
		}
	}()
	return r.f(x), true
}

func (r *residual) eval(x []float64) []float64 {
	y, ok := r.call(x)
	if !ok {
		return nil
	}
	if len(y) != r.m {
		r.err = ResidualDimensionError{Want: r.m, Got: len(y)}
		return nil
	}
	return y
}

// status stops Minimize after the evaluation that recorded a failure.
func (r *residual) status() (optimize.Status, error) {
	if r.err != nil {
		return optimize.Failure, r.err
	}
	return optimize.NotTerminated, nil
}

func (r *residual) objective(x []float64) float64 {
	y := r.eval(x)
	if y == nil {
		return math.NaN()
	}
	return 0.5 * floats.Dot(y, y)
}

func (r *residual) into(dst, x []float64) {
	y := r.eval(x)
	if y == nil {
		fill(dst, math.NaN())
		return
	}
	copy(dst, y)
}

// gradient stores Jᵀ·F(x) into grad, with J from central differences.
func (r *residual) gradient(grad, x []float64) {
	jac := mat.NewDense(r.m, len(x), nil)
	fd.Jacobian(jac, r.into, x, &fd.JacobianSettings{Formula: fd.Central})

	y := r.eval(x)
	if y == nil {
		fill(grad, math.NaN())
		return
	}
	g := mat.NewVecDense(len(grad), grad)
	g.MulVec(jac.T(), mat.NewVecDense(r.m, append([]float64(nil), y...)))
}

func allFinite(v []float64) bool {
	for _, x := range v {
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return false
		}
	}
	return true
}

func fill(v []float64, x float64) {
	for i := range v {
		v[i] = x
	}
}
