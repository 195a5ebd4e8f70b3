package grid

// Observer receives every evaluated grid point. It is called in index order after
// the whole grid has been evaluated, never from worker goroutines.
type Observer func(i int, x, fx float64)

// Option configures Evaluate, Scan, FindRoot, FindRoots and Refine.
type Option func(*options)

type options struct {
	observer Observer
	workers  int
}

// WithObserver installs a diagnostic hook. A nil observer is ignored.
func WithObserver(fn Observer) Option {
	return func(o *options) {
		if fn != nil {
			o.observer = fn
		}
	}
}

// WithWorkers evaluates the grid with up to n concurrent workers.
// n <= 1 keeps evaluation sequential.
func WithWorkers(n int) Option {
	return func(o *options) { o.workers = n }
}

func newOptions(opts []Option) options {
	o := options{workers: 1}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	return o
}
