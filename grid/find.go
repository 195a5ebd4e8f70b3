package grid

// Result is an approximate root found by grid search.
type Result struct {
	// Root is the grid point with the smallest |f|.
	Root float64

	// Residual is f(Root). Its magnitude tells how good the approximation is.
	Residual float64

	// Index is the position of Root in the sample grid.
	Index int
}

// FindRoot approximates a root of f on [start, stop) by evaluating f at
// start, start+step, ... and returning the sample with the smallest |f|.
//
// Ties go to the first sample in scan order. Non-finite values are skipped;
// if every value is non-finite, FindRoot fails with NonFiniteValueError.
// Accuracy is bounded by step: call Refine around the result for a tighter estimate.
func FindRoot(f Func, start, stop, step float64, opts ...Option) (Result, error) {
	_, res, err := Scan(f, start, stop, step, opts...)
	return res, err
}

// Scan is FindRoot that also returns the evaluation table, e.g. for plotting.
func Scan(f Func, start, stop, step float64, opts ...Option) (Table, Result, error) {
	if f == nil {
		return Table{}, Result{}, ErrNilFunc
	}
	xs, err := Arange(start, stop, step)
	if err != nil {
		return Table{}, Result{}, err
	}
	t, err := evaluateOwned(f, xs, opts)
	if err != nil {
		return Table{}, Result{}, err
	}

	i, ok := t.ArgMinAbs()
	if !ok {
		return Table{}, Result{}, NonFiniteValueError{Start: start, Stop: stop, Step: step, Points: t.Len()}
	}
	return t, Result{Root: t.X[i], Residual: t.Y[i], Index: i}, nil
}

// Refine searches again on [prev.Root-halfWidth, prev.Root+halfWidth) with a finer step.
//
// The returned Index refers to the refined grid.
func Refine(f Func, prev Result, halfWidth, step float64, opts ...Option) (Result, error) {
	return FindRoot(f, prev.Root-halfWidth, prev.Root+halfWidth, step, opts...)
}

// FindRoots returns one approximate root per bracket (sign change or exact zero) on the grid,
// in increasing order of x. Within a bracket the endpoint with the smaller |f| wins,
// the lower one on ties.
//
// A function that never crosses zero on the grid (e.g. x²+1) yields an empty slice
// and a nil error; FindRoot still reports its closest approach.
func FindRoots(f Func, start, stop, step float64, opts ...Option) ([]Result, error) {
	t, _, err := Scan(f, start, stop, step, opts...)
	if err != nil {
		return nil, err
	}

	return t.Roots(), nil
}
