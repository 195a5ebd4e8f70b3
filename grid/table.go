package grid

import (
	"math"

	"golang.org/x/sync/errgroup"
)

// Table is the evaluation table: Y[i] = f(X[i]). Both slices always have the same length.
type Table struct {
	X []float64
	Y []float64
}

// Len returns the number of evaluated grid points.
func (t Table) Len() int { return len(t.X) }

// ArgMinAbs returns the index of the smallest |Y[i]|, skipping non-finite values.
// Ties go to the lowest index. ok is false when no value is finite.
func (t Table) ArgMinAbs() (idx int, ok bool) {
	idx = -1
	best := math.Inf(1)
	for i, y := range t.Y {
		if !finite(y) {
			continue
		}
		if a := math.Abs(y); idx < 0 || a < best {
			idx, best = i, a
		}
	}
	return idx, idx >= 0
}

// Bracket marks a root located between two adjacent grid points.
//
// For an exact zero on the grid LoIndex == HiIndex.
type Bracket struct {
	LoIndex int
	HiIndex int
	Lo      float64
	Hi      float64
}

// Brackets returns every place where Y changes sign between adjacent finite samples,
// plus every exact zero, in increasing index order. Non-finite samples break the
// scan so a pole is never reported as a root.
func (t Table) Brackets() []Bracket {
	var out []Bracket
	prev := -1
	for i, y := range t.Y {
		if !finite(y) {
			prev = -1
			continue
		}
		switch {
		case y == 0:
			out = append(out, Bracket{LoIndex: i, HiIndex: i, Lo: t.X[i], Hi: t.X[i]})
		case prev >= 0 && t.Y[prev]*y < 0:
			out = append(out, Bracket{LoIndex: prev, HiIndex: i, Lo: t.X[prev], Hi: t.X[i]})
		}
		prev = i
	}
	return out
}

// Evaluate computes f at every point of xs.
//
// With WithWorkers(n > 1) the grid is split into contiguous chunks evaluated concurrently;
// each table slot is written by exactly one worker. If f panics, the panic with the
// lowest grid index is returned as an EvalPanicError. The table holds its own copy of xs.
func Evaluate(f Func, xs []float64, opts ...Option) (Table, error) {
	if f == nil {
		return Table{}, ErrNilFunc
	}
	return evaluateOwned(f, append([]float64(nil), xs...), opts)
}

// evaluateOwned is Evaluate for a grid the caller hands over.
func evaluateOwned(f Func, xs []float64, opts []Option) (Table, error) {
	o := newOptions(opts)

	ys := make([]float64, len(xs))
	if err := evaluate(f, xs, ys, o.workers); err != nil {
		return Table{}, err
	}

	if o.observer != nil {
		for i := range xs {
			o.observer(i, xs[i], ys[i])
		}
	}
	return Table{X: xs, Y: ys}, nil
}

func evaluate(f Func, xs, ys []float64, workers int) error {
	n := len(xs)
	if workers <= 1 || n < 2 {
		return evalRange(f, xs, ys, 0, n)
	}
	if workers > n {
		workers = n
	}

	chunk := (n + workers - 1) / workers
	errs := make([]error, 0, workers)
	for lo := 0; lo < n; lo += chunk {
		errs = append(errs, nil)
	}

	var g errgroup.Group
	g.SetLimit(workers)
	for c := range errs {
		c := c
		lo := c * chunk
		hi := min(lo+chunk, n)
		g.Go(func() error {
			errs[c] = evalRange(f, xs, ys, lo, hi)
			return errs[c]
		})
	}
	if err := g.Wait(); err == nil {
		return nil
	}
	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}

func evalRange(f Func, xs, ys []float64, lo, hi int) (err error) {
	i := lo
	defer func() {
		if rec := recover(); rec != nil {
			err = EvalPanicError{Index: i, X: xs[i], Value: rec}
		}
	}()
	for ; i < hi; i++ {
		ys[i] = f(xs[i])
	}
	return nil
}

// Roots reduces each bracket to its endpoint with the smaller |f|, the lower one on ties.
func (t Table) Roots() []Result {
	brackets := t.Brackets()
	out := make([]Result, 0, len(brackets))
	for _, b := range brackets {
		i := b.LoIndex
		if math.Abs(t.Y[b.HiIndex]) < math.Abs(t.Y[i]) {
			i = b.HiIndex
		}
		out = append(out, Result{Root: t.X[i], Residual: t.Y[i], Index: i})
	}
	return out
}
