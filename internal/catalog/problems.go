package catalog

import "math"

// Default returns a registry with the walkthrough problems:
//
//	quadratic  a·x² + b·x + c           (a=1/4, b=1, c=-1)
//	logexp     ln(x) - e^(-x)
//	circle     x²+y²=1, x²-y²=-1/2
//	cubic3     x+y+z²=12, x²-y+z=2, 2x-y²+z=1
//	cubic3p    cubic3 with right-hand sides as params (12, 2, 1)
func Default() *Registry {
	return NewRegistry().
		ProvideScalar(Scalar{
			Name:        "quadratic",
			Description: "a*x^2 + b*x + c",
			Params:      []float64{0.25, 1, -1},
			Fn: func(x float64, p []float64) float64 {
				return p[0]*x*x + p[1]*x + p[2]
			},
		}).
		ProvideScalar(Scalar{
			Name:        "logexp",
			Description: "ln(x) - exp(-x)",
			Fn: func(x float64, _ []float64) float64 {
				return math.Log(x) - math.Exp(-x)
			},
		}).
		ProvideSystem(System{
			Name:        "circle",
			Description: "x^2 + y^2 - 1, x^2 - y^2 + 0.5",
			Dim:         2,
			Guess:       []float64{1, 1},
			Fn: func(x, _ []float64) []float64 {
				return []float64{
					x[0]*x[0] + x[1]*x[1] - 1,
					x[0]*x[0] - x[1]*x[1] + 0.5,
				}
			},
		}).
		ProvideSystem(System{
			Name:        "cubic3",
			Description: "x + y + z^2 - 12, x^2 - y + z - 2, 2x - y^2 + z - 1",
			Dim:         3,
			Guess:       []float64{1, 1, 1},
			Fn: func(x, _ []float64) []float64 {
				return cubic3(x, 12, 2, 1)
			},
		}).
		ProvideSystem(System{
			Name:        "cubic3p",
			Description: "x + y + z^2 - p0, x^2 - y + z - p1, 2x - y^2 + z - p2",
			Dim:         3,
			Params:      []float64{12, 2, 1},
			Guess:       []float64{1, 1, 1},
			Fn: func(x, p []float64) []float64 {
				return cubic3(x, p[0], p[1], p[2])
			},
		})
}

func cubic3(x []float64, p0, p1, p2 float64) []float64 {
	return []float64{
		x[0] + x[1] + x[2]*x[2] - p0,
		x[0]*x[0] - x[1] + x[2] - p1,
		2*x[0] - x[1]*x[1] + x[2] - p2,
	}
}
