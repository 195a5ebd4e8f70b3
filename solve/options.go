package solve

import (
	"fmt"
	"strings"
)

// Method selects the gonum optimization method used to drive ½‖F(x)‖² to zero.
type Method int

const (
	// BFGS uses gradients built from a finite-difference Jacobian.
	BFGS Method = iota
	// NelderMead is derivative free.
	NelderMead
)

// String returns the flag spelling of the method.
func (m Method) String() string {
	switch m {
	case BFGS:
		return "bfgs"
	case NelderMead:
		return "nelder-mead"
	default:
		return fmt.Sprintf("method(%d)", int(m))
	}
}

// ParseMethod parses "bfgs" or "nelder-mead" (case insensitive).
func ParseMethod(s string) (Method, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "bfgs":
		return BFGS, nil
	case "nelder-mead", "neldermead", "nm":
		return NelderMead, nil
	default:
		return 0, fmt.Errorf("solve: unknown method %q (want bfgs or nelder-mead)", s)
	}
}

const (
	// DefaultTolerance is the largest |F_i(x)| accepted as a root.
	DefaultTolerance = 1e-8

	// DefaultMaxIterations caps the major iterations of the optimizer.
	DefaultMaxIterations = 1000
)

// Option configures Root, RootWithParams and Scalar.
type Option func(*options)

type options struct {
	method        Method
	tol           float64
	maxIterations int
}

// WithMethod selects the optimization method.
func WithMethod(m Method) Option {
	return func(o *options) { o.method = m }
}

// WithTolerance sets the success threshold on the infinity norm of the residual.
// Non-positive values are ignored.
func WithTolerance(tol float64) Option {
	return func(o *options) {
		if tol > 0 {
			o.tol = tol
		}
	}
}

// WithMaxIterations caps the optimizer's major iterations. Non-positive values are ignored.
func WithMaxIterations(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.maxIterations = n
		}
	}
}

func newOptions(opts []Option) options {
	o := options{method: BFGS, tol: DefaultTolerance, maxIterations: DefaultMaxIterations}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	return o
}
