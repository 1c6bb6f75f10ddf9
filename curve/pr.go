package curve

import "github.com/jamesainslie/go-roc/dataset"

// PRPoint is one operating point of a Precision-Recall curve.
type PRPoint struct {
	Recall    float64 `json:"recall"`
	Precision float64 `json:"precision"`
	Threshold float64 `json:"threshold"`
}

// PRCurve is an interpolated Precision-Recall curve ordered from the highest
// threshold (lowest recall) to the lowest, with its area.
type PRCurve struct {
	Points []PRPoint `json:"points"`
	AUC    float64   `json:"auc"`
}

// PR sweeps thresholds 100 down to 0 in steps of PRStep, computes recall and
// precision at each, and interpolates precision into its monotonic envelope.
// Precision is 1 where nothing is predicted positive.
func PR(samples dataset.SampleSet) PRCurve {
	thresholds := Thresholds(MaxThreshold, MinThreshold, -PRStep)
	points := make([]PRPoint, 0, len(thresholds))
	for _, t := range thresholds {
		points = append(points, PRAt(samples, t))
	}

	InterpolatePrecision(points)

	return PRCurve{
		Points: points,
		AUC:    AUC(points, prX, prY),
	}
}

// PRAt returns the raw, uninterpolated PR point of samples at threshold.
// Recall is 0 without positives. Precision is 1 when nothing is predicted
// positive, unlike Rates.Precision.
func PRAt(samples dataset.SampleSet, threshold float64) PRPoint {
	c := Classify(samples, threshold)
	precision := 1.0
	if c.PredictedPositives() > 0 {
		precision = float64(c.TP) / float64(c.PredictedPositives())
	}
	return PRPoint{
		Recall:    ratio(c.TP, c.ActualPositives()),
		Precision: precision,
		Threshold: threshold,
	}
}

// InterpolatePrecision replaces each precision with the maximum precision at
// any later point, in place. points must be ordered by ascending recall. The
// walk runs backward from the second-to-last point so each maximum carries
// toward lower recall.
func InterpolatePrecision(points []PRPoint) {
	for i := len(points) - 2; i >= 0; i-- {
		points[i].Precision = max(points[i].Precision, points[i+1].Precision)
	}
}

func prX(p PRPoint) float64 { return p.Recall }
func prY(p PRPoint) float64 { return p.Precision }

// Nearest returns the point whose threshold is closest to threshold.
func (c PRCurve) Nearest(threshold float64) (PRPoint, bool) {
	return nearest(c.Points, threshold, func(p PRPoint) float64 { return p.Threshold })
}
