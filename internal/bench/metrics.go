package bench

import (
	"github.com/jamesainslie/go-roc/curve"
	"github.com/jamesainslie/go-roc/dataset"
)

// Config holds evaluation parameters.
type Config struct {
	PrecisionWeight float64
	RecallWeight    float64
}

// DefaultConfig returns default evaluation configuration.
func DefaultConfig() Config {
	return Config{
		PrecisionWeight: 1.0,
		RecallWeight:    1.0,
	}
}

// Metrics holds evaluation results at one threshold.
type Metrics struct {
	Confusion     curve.Confusion
	Rates         curve.Rates
	WeightedScore float64
}

// Evaluate classifies samples at threshold and scores the result.
func Evaluate(samples dataset.SampleSet, threshold float64, cfg Config) Metrics {
	c := curve.Classify(samples, threshold)
	m := Metrics{
		Confusion: c,
		Rates:     c.Rates(),
	}

	wp := cfg.PrecisionWeight
	wr := cfg.RecallWeight
	if wp+wr > 0 {
		m.WeightedScore = (wp*m.Rates.Precision + wr*m.Rates.Recall) / (wp + wr)
	}

	return m
}

// Youden returns TPR - FPR, the vertical distance above the ROC chance line.
func (m Metrics) Youden() float64 {
	return m.Rates.Recall - m.Rates.FPR
}
