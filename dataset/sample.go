package dataset

import "github.com/samber/lo"

// Sample is one labeled model output.
type Sample struct {
	Score    float64 `json:"score"`    // model score on a 0-100 scale
	Positive bool    `json:"positive"` // actual class
}

// SampleSet is an immutable collection of samples for one dataset configuration.
type SampleSet []Sample

// Len returns the number of samples.
func (s SampleSet) Len() int { return len(s) }

// Positives returns the number of actual positive samples.
func (s SampleSet) Positives() int {
	return lo.CountBy(s, func(x Sample) bool { return x.Positive })
}

// Negatives returns the number of actual negative samples.
func (s SampleSet) Negatives() int {
	return len(s) - s.Positives()
}

// Scores returns the scores of the samples with the given label, in order.
func (s SampleSet) Scores(positive bool) []float64 {
	return lo.FilterMap(s, func(x Sample, _ int) (float64, bool) {
		return x.Score, x.Positive == positive
	})
}
