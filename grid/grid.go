package grid

import "math"

// MaxPoints caps the number of samples a single grid may hold.
const MaxPoints = 1 << 26

// snapTolerance is the relative distance below an integer at which (stop-start)/step
// is treated as that integer. It absorbs division noise such as 0.3/0.1 = 2.9999999999999996.
const snapTolerance = 1e-9

// Func is a scalar function under test. It is assumed pure.
type Func func(x float64) float64

// Size returns the number of samples Arange would produce for the given range and step.
//
// It validates in order: range (InvalidRangeError), step sign and resolution (InvalidStepError),
// step against the range width (EmptyGridError) and the MaxPoints cap (GridTooLargeError).
func Size(start, stop, step float64) (int, error) {
	if !finite(start) || !finite(stop) || !(start < stop) {
		return 0, InvalidRangeError{Start: start, Stop: stop}
	}
	if !(step > 0) {
		return 0, InvalidStepError{Start: start, Stop: stop, Step: step}
	}

	// a step below the float spacing at the widest end would repeat samples
	if m := math.Max(math.Abs(start), math.Abs(stop)); step < m-math.Nextafter(m, 0) {
		return 0, InvalidStepError{Start: start, Stop: stop, Step: step}
	}

	span := stop - start
	if step >= span {
		return 0, EmptyGridError{Start: start, Stop: stop, Step: step}
	}

	q := span / step
	if math.IsInf(span, 1) {
		q = stop/step - start/step
	}
	if q > MaxPoints {
		return 0, GridTooLargeError{Start: start, Stop: stop, Step: step, Points: math.Floor(q)}
	}

	n := int(math.Floor(q))
	if c := math.Ceil(q); c > q && c-q < snapTolerance*c {
		n = int(c)
	}
	// rounding in start+i*step may push the last sample onto stop
	for n > 0 && point(start, step, n-1) >= stop {
		n--
	}
	if n == 0 {
		return 0, EmptyGridError{Start: start, Stop: stop, Step: step}
	}
	return n, nil
}

// Arange returns the half-open sample grid x_i = start + i*step covering [start, stop).
//
// Each sample is computed from its index rather than by repeated addition, so errors
// do not accumulate along the grid.
func Arange(start, stop, step float64) ([]float64, error) {
	n, err := Size(start, stop, step)
	if err != nil {
		return nil, err
	}
	xs := make([]float64, n)
	for i := range xs {
		xs[i] = point(start, step, i)
	}
	return xs, nil
}

// point returns start + i*step. When i*step overflows although the sum would not
// (a range wider than MaxFloat64), it is evaluated on halved operands.
func point(start, step float64, i int) float64 {
	x := start + float64(i)*step
	if math.IsInf(x, 0) {
		x = 2 * (start/2 + float64(i)*(step/2))
	}
	return x
}

func finite(v float64) bool { return !math.IsNaN(v) && !math.IsInf(v, 0) }
