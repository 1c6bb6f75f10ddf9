package bench

import (
	"sort"

	"github.com/jamesainslie/go-roc/curve"
	"github.com/jamesainslie/go-roc/dataset"
)

// SweepResult holds metrics for one threshold value.
type SweepResult struct {
	Threshold float64
	Metrics   Metrics
}

// SweepThresholds generates threshold values from min to max inclusive with given step.
func SweepThresholds(min, max, step float64) []float64 {
	if step <= 0 || max < min {
		return nil
	}
	return curve.Thresholds(min, max, step)
}

// Sweep evaluates every threshold and returns results sorted by weighted
// score, best first. Equal scores keep the order of thresholds.
func Sweep(samples dataset.SampleSet, cfg Config, thresholds []float64) []SweepResult {
	results := make([]SweepResult, 0, len(thresholds))
	for _, threshold := range thresholds {
		results = append(results, SweepResult{
			Threshold: threshold,
			Metrics:   Evaluate(samples, threshold, cfg),
		})
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Metrics.WeightedScore > results[j].Metrics.WeightedScore
	})

	return results
}

// YoudenBest returns the threshold maximizing TPR - FPR. The first of equal
// candidates wins. It reports false when thresholds is empty.
func YoudenBest(samples dataset.SampleSet, cfg Config, thresholds []float64) (SweepResult, bool) {
	var best SweepResult
	found := false
	for _, threshold := range thresholds {
		m := Evaluate(samples, threshold, cfg)
		if !found || m.Youden() > best.Metrics.Youden() {
			best = SweepResult{Threshold: threshold, Metrics: m}
			found = true
		}
	}
	return best, found
}
