package curve

import (
	"cmp"
	"slices"

	"github.com/samber/lo"
	"gonum.org/v1/gonum/integrate"
)

// AUC returns the trapezoidal area under points, using x and y to read the
// coordinates. Points are sorted ascending by x first (stable, on a copy).
// Fewer than two points have no area. Duplicate x values add nothing.
func AUC[P any](points []P, x, y func(P) float64) float64 {
	if len(points) < 2 {
		return 0
	}

	sorted := slices.Clone(points)
	slices.SortStableFunc(sorted, func(a, b P) int {
		return cmp.Compare(x(a), x(b))
	})

	xs := lo.Map(sorted, func(p P, _ int) float64 { return x(p) })
	ys := lo.Map(sorted, func(p P, _ int) float64 { return y(p) })
	return integrate.Trapezoidal(xs, ys)
}
