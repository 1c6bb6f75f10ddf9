package curve

import "github.com/jamesainslie/go-roc/dataset"

// Confusion holds the confusion-matrix counts at one threshold.
type Confusion struct {
	TP int `json:"tp"`
	FN int `json:"fn"`
	FP int `json:"fp"`
	TN int `json:"tn"`
}

// Rates holds the ratios derived from a Confusion. Each is in [0, 1].
type Rates struct {
	Accuracy    float64 `json:"accuracy"`
	Recall      float64 `json:"recall"` // TPR, sensitivity
	FPR         float64 `json:"fpr"`
	Specificity float64 `json:"specificity"` // TNR
	Precision   float64 `json:"precision"`   // PPV
	NPV         float64 `json:"npv"`
	F1          float64 `json:"f1"`
}

// Result is the confusion matrix and its rates at a threshold.
type Result struct {
	Threshold float64   `json:"threshold"`
	Confusion Confusion `json:"confusion"`
	Rates     Rates     `json:"rates"`
}

// Classify counts the confusion matrix of samples at threshold in one pass.
func Classify(samples dataset.SampleSet, threshold float64) Confusion {
	var c Confusion
	for _, s := range samples {
		predicted := s.Score >= threshold
		switch {
		case s.Positive && predicted:
			c.TP++
		case s.Positive:
			c.FN++
		case predicted:
			c.FP++
		default:
			c.TN++
		}
	}
	return c
}

// Evaluate classifies samples at threshold and derives the rates.
func Evaluate(samples dataset.SampleSet, threshold float64) Result {
	c := Classify(samples, threshold)
	return Result{
		Threshold: threshold,
		Confusion: c,
		Rates:     c.Rates(),
	}
}

// Total returns the number of classified samples.
func (c Confusion) Total() int { return c.TP + c.FN + c.FP + c.TN }

// ActualPositives returns TP + FN.
func (c Confusion) ActualPositives() int { return c.TP + c.FN }

// ActualNegatives returns FP + TN.
func (c Confusion) ActualNegatives() int { return c.FP + c.TN }

// PredictedPositives returns TP + FP.
func (c Confusion) PredictedPositives() int { return c.TP + c.FP }

// Rates derives the ratios. A ratio with a zero denominator is 0.
func (c Confusion) Rates() Rates {
	r := Rates{
		Accuracy:    ratio(c.TP+c.TN, c.Total()),
		Recall:      ratio(c.TP, c.ActualPositives()),
		FPR:         ratio(c.FP, c.ActualNegatives()),
		Specificity: ratio(c.TN, c.ActualNegatives()),
		Precision:   ratio(c.TP, c.PredictedPositives()),
		NPV:         ratio(c.TN, c.TN+c.FN),
	}
	if r.Precision+r.Recall > 0 {
		r.F1 = 2 * r.Precision * r.Recall / (r.Precision + r.Recall)
	}
	return r
}

func ratio(num, den int) float64 {
	if den == 0 {
		return 0
	}
	return float64(num) / float64(den)
}
