package grid

import (
	"errors"
	"strconv"
)

var (
	// ErrNilFunc is returned when a nil Func is passed to FindRoot, FindRoots or Evaluate.
	ErrNilFunc = errors.New("grid: nil function")

	// ErrInvalidRange matches InvalidRangeError.
	ErrInvalidRange = errors.New("grid: invalid range")

	// ErrInvalidStep matches InvalidStepError.
	ErrInvalidStep = errors.New("grid: invalid step")

	// ErrEmptyGrid matches EmptyGridError.
	ErrEmptyGrid = errors.New("grid: empty grid")

	// ErrGridTooLarge matches GridTooLargeError.
	ErrGridTooLarge = errors.New("grid: too many grid points")

	// ErrNonFinite matches NonFiniteValueError.
	ErrNonFinite = errors.New("grid: no finite function values")

	// ErrEvalPanic matches EvalPanicError.
	ErrEvalPanic = errors.New("grid: panic during evaluation")
)

func ftoa(v float64) string { return strconv.FormatFloat(v, 'g', -1, 64) }

// InvalidRangeError is returned when start >= stop or either bound is not finite.
type InvalidRangeError struct {
	Start float64
	Stop  float64
}

// Error implements the error interface.
func (e InvalidRangeError) Error() string {
	// Example: grid: invalid range: start 1 must be less than stop 1
	return "grid: invalid range: start " + ftoa(e.Start) + " must be less than stop " + ftoa(e.Stop)
}

// Is reports whether target is ErrInvalidRange.
func (e InvalidRangeError) Is(target error) bool { return target == ErrInvalidRange }

// InvalidStepError is returned when step is not strictly positive, or is too small
// to move from one float to the next anywhere in the range.
type InvalidStepError struct {
	Start float64
	Stop  float64
	Step  float64
}

// Error implements the error interface.
func (e InvalidStepError) Error() string {
	msg := "grid: invalid step " + ftoa(e.Step) + " for range [" + ftoa(e.Start) + ", " + ftoa(e.Stop) + "): "
	if e.Step > 0 {
		// Example: grid: invalid step 1 for range [1e+16, 1.0000000000000004e+16): step is below the float resolution of the range
		return msg + "step is below the float resolution of the range"
	}
	// Example: grid: invalid step 0 for range [-1, 1): step must be > 0
	return msg + "step must be > 0"
}

// Is reports whether target is ErrInvalidStep.
func (e InvalidStepError) Is(target error) bool { return target == ErrInvalidStep }

// EmptyGridError is returned when the range holds no grid point, i.e. step >= stop-start.
type EmptyGridError struct {
	Start float64
	Stop  float64
	Step  float64
}

// Error implements the error interface.
func (e EmptyGridError) Error() string {
	// Example: grid: empty grid for range [0, 1) with step 2: step must be < stop-start
	return "grid: empty grid for range [" + ftoa(e.Start) + ", " + ftoa(e.Stop) + ") with step " + ftoa(e.Step) + ": step must be < stop-start"
}

// Is reports whether target is ErrEmptyGrid or ErrInvalidStep; the step is the
// offending input either way.
func (e EmptyGridError) Is(target error) bool {
	return target == ErrEmptyGrid || target == ErrInvalidStep
}

// GridTooLargeError is returned when the grid would exceed MaxPoints samples.
type GridTooLargeError struct {
	Start float64
	Stop  float64
	Step  float64

	// Points is the number of samples the range and step would produce.
	Points float64
}

// Error implements the error interface.
func (e GridTooLargeError) Error() string {
	return "grid: range [" + ftoa(e.Start) + ", " + ftoa(e.Stop) + ") with step " + ftoa(e.Step) +
		" yields " + ftoa(e.Points) + " points (max " + strconv.Itoa(MaxPoints) + ")"
}

// Is reports whether target is ErrGridTooLarge.
func (e GridTooLargeError) Is(target error) bool { return target == ErrGridTooLarge }

// NonFiniteValueError is returned when f is NaN or ±Inf at every grid point.
type NonFiniteValueError struct {
	Start  float64
	Stop   float64
	Step   float64
	Points int
}

// Error implements the error interface.
func (e NonFiniteValueError) Error() string {
	// Example: grid: f is non-finite at all 20 points of [-1, 1) with step 0.1
	return "grid: f is non-finite at all " + strconv.Itoa(e.Points) + " points of [" +
		ftoa(e.Start) + ", " + ftoa(e.Stop) + ") with step " + ftoa(e.Step)
}

// Is reports whether target is ErrNonFinite.
func (e NonFiniteValueError) Is(target error) bool { return target == ErrNonFinite }

// EvalPanicError reports a panic raised by f while evaluating the grid.
type EvalPanicError struct {
	Index int
	X     float64

	// Value is the recovered panic value.
	Value any
}

// Error implements the error interface.
func (e EvalPanicError) Error() string {
	msg := "grid: panic during evaluation at index " + strconv.Itoa(e.Index) + " (x=" + ftoa(e.X) + ")"
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
