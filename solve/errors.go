package solve

import (
	"errors"
	"strconv"
	"strings"
)

var (
	// ErrNilSystem is returned when a nil function is passed to Root, RootWithParams or Scalar.
	ErrNilSystem = errors.New("solve: nil system")

	// ErrEmptyGuess is returned when the initial guess has no components.
	ErrEmptyGuess = errors.New("solve: empty initial guess")

	// ErrEmptyResidual is returned when the system returns no equations.
	ErrEmptyResidual = errors.New("solve: system returned no residuals")

	// ErrNonFiniteResidual matches NonFiniteResidualError.
	ErrNonFiniteResidual = errors.New("solve: non-finite residual at initial guess")

	// ErrResidualDimension matches ResidualDimensionError.
	ErrResidualDimension = errors.New("solve: residual dimension changed")

	// ErrEvalPanic matches EvalPanicError.
	ErrEvalPanic = errors.New("solve: panic during evaluation")
)

// NonFiniteResidualError is returned when F(x0) contains NaN or ±Inf, so no descent
// direction exists from the initial guess.
type NonFiniteResidualError struct {
	X0  []float64
	Fun []float64
}

// Error implements the error interface.
func (e NonFiniteResidualError) Error() string {
	// Example: solve: non-finite residual at initial guess [0] (F=[-Inf])
	return "solve: non-finite residual at initial guess " + vec(e.X0) + " (F=" + vec(e.Fun) + ")"
}

// Is reports whether target is ErrNonFiniteResidual.
func (e NonFiniteResidualError) Is(target error) bool { return target == ErrNonFiniteResidual }

// ResidualDimensionError is returned when the system returns a residual vector whose
// length differs from the one returned at the initial guess.
type ResidualDimensionError struct {
	Want int
	Got  int
}

// Error implements the error interface.
func (e ResidualDimensionError) Error() string {
	return "solve: residual dimension changed from " + strconv.Itoa(e.Want) + " to " + strconv.Itoa(e.Got)
}

// Is reports whether target is ErrResidualDimension.
func (e ResidualDimensionError) Is(target error) bool { return target == ErrResidualDimension }

// EvalPanicError reports a panic raised by the system. The solve stops at the first one.
type EvalPanicError struct {
	X []float64

	// Value is the recovered panic value.
	Value any
}

// Error implements the error interface.
func (e EvalPanicError) Error() string {
	// Example: solve: panic during evaluation at [2.5]: boom
	msg := "solve: panic during evaluation at " + vec(e.X)
	if err, ok := e.Value.(error); ok {
		return msg + ": " + err.Error()
	}
	if s, ok := e.Value.(string); ok {
		return msg + ": " + s
	}
	return msg
}

// Is reports whether target is ErrEvalPanic.
func (e EvalPanicError) Is(target error) bool { return target == ErrEvalPanic }

func vec(v []float64) string {
	parts := make([]string, len(v))
	for i, x := range v {
		parts[i] = strconv.FormatFloat(x, 'g', -1, 64)
	}
	return "[" + strings.Join(parts, " ") + "]"
}
