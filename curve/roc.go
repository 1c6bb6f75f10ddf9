package curve

import (
	"cmp"
	"math"
	"slices"

	"github.com/jamesainslie/go-roc/dataset"
)

// ROCPoint is one operating point of a ROC curve.
type ROCPoint struct {
	FPR       float64 `json:"fpr"`
	TPR       float64 `json:"tpr"`
	Threshold float64 `json:"threshold"`
}

// ROCCurve is a ROC curve sorted ascending by FPR, with its area.
type ROCCurve struct {
	Points []ROCPoint `json:"points"`
	AUC    float64    `json:"auc"`
}

// ROC sweeps thresholds 0..100 in steps of ROCStep and returns the curve
// sorted ascending by FPR. Duplicate FPR values are kept, ordered by
// ascending TPR so the curve is a monotone staircase.
func ROC(samples dataset.SampleSet) ROCCurve {
	thresholds := Thresholds(MinThreshold, MaxThreshold, ROCStep)
	points := make([]ROCPoint, 0, len(thresholds))
	for _, t := range thresholds {
		points = append(points, ROCAt(samples, t))
	}

	slices.SortStableFunc(points, func(a, b ROCPoint) int {
		return cmp.Or(cmp.Compare(a.FPR, b.FPR), cmp.Compare(a.TPR, b.TPR))
	})

	return ROCCurve{
		Points: points,
		AUC:    AUC(points, rocX, rocY),
	}
}

// ROCAt returns the ROC point of samples at threshold. TPR is 0 without
// positives and FPR is 0 without negatives.
func ROCAt(samples dataset.SampleSet, threshold float64) ROCPoint {
	c := Classify(samples, threshold)
	return ROCPoint{
		FPR:       ratio(c.FP, c.ActualNegatives()),
		TPR:       ratio(c.TP, c.ActualPositives()),
		Threshold: threshold,
	}
}

func rocX(p ROCPoint) float64 { return p.FPR }
func rocY(p ROCPoint) float64 { return p.TPR }

// Nearest returns the point whose threshold is closest to threshold.
// Ties resolve to the first such point in curve order.
func (c ROCCurve) Nearest(threshold float64) (ROCPoint, bool) {
	return nearest(c.Points, threshold, func(p ROCPoint) float64 { return p.Threshold })
}

func nearest[P any](points []P, threshold float64, th func(P) float64) (P, bool) {
	var best P
	if len(points) == 0 {
		return best, false
	}
	bestDist := math.Inf(1)
	for _, p := range points {
		if d := math.Abs(th(p) - threshold); d < bestDist {
			best, bestDist = p, d
		}
	}
	return best, true
}
