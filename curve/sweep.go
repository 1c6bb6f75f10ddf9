package curve

import "math"

// Sweep bounds shared by the curves.
const (
	MinThreshold = 0.0
	MaxThreshold = 100.0

	ROCStep = 2.0 // 51 ROC thresholds
	PRStep  = 1.0 // 101 PR thresholds
)

// Thresholds returns from, from+step, ... up to and including to. A negative
// step sweeps downward. A zero step, or a step pointing away from to, yields
// only from.
func Thresholds(from, to, step float64) []float64 {
	if step == 0 || (to-from)/step < 0 {
		return []float64{from}
	}
	// Small epsilon keeps an endpoint that float division lands just below.
	n := int(math.Floor((to-from)/step+1e-9)) + 1
	out := make([]float64, n)
	for i := range out {
		out[i] = from + float64(i)*step
	}
	return out
}
