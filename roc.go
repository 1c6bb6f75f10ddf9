package roc

import (
	"fmt"
	"log/slog"

	"github.com/jamesainslie/go-roc/curve"
	"github.com/jamesainslie/go-roc/dataset"
)

// CurveKind selects the threshold curve a View reports.
type CurveKind string

// Curve kinds.
const (
	CurveROC CurveKind = "roc"
	CurvePR  CurveKind = "pr"
)

// ParseCurveKind converts a name to a CurveKind.
func ParseCurveKind(s string) (CurveKind, error) {
	switch k := CurveKind(s); k {
	case CurveROC, CurvePR:
		return k, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownCurve, s)
	}
}

// GenerateSamples builds the samples of a built-in dataset. prevalence is a
// percent in [0, 100] and only shapes the imbalanced preset.
func GenerateSamples(name string, prevalence int) (dataset.SampleSet, error) {
	return dataset.Generate(name, prevalence)
}

// ComputeConfusion classifies samples at threshold (score >= threshold is
// positive) and derives the rates, each 0 when undefined.
func ComputeConfusion(samples dataset.SampleSet, threshold float64) curve.Result {
	return curve.Evaluate(samples, threshold)
}

// ComputeROC returns the ROC curve and its AUC.
func ComputeROC(samples dataset.SampleSet) curve.ROCCurve {
	return curve.ROC(samples)
}

// ComputePR returns the interpolated Precision-Recall curve and its AUPRC.
func ComputePR(samples dataset.SampleSet) curve.PRCurve {
	return curve.PR(samples)
}

// OperatingPoint is where the current threshold sits on the active curve:
// (FPR, TPR) for ROC, (recall, precision) for PR.
type OperatingPoint struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Result is everything a renderer needs for one state of a View.
type Result struct {
	Dataset    string          `json:"dataset"`
	Prevalence int             `json:"prevalence"`
	Curve      CurveKind       `json:"curve"`
	Evaluation curve.Result    `json:"evaluation"`
	ROC        *curve.ROCCurve `json:"roc,omitempty"`
	PR         *curve.PRCurve  `json:"pr,omitempty"`
	AUC        float64         `json:"auc"`
	Operating  OperatingPoint  `json:"operating"`
}

// View is the current state of one interactive session. Changing the dataset
// or prevalence regenerates the samples; a rejected change leaves the view
// as it was. View is not safe for concurrent use.
type View struct {
	gen    *dataset.Generator
	logger *slog.Logger

	dataset    string
	prevalence int
	threshold  float64
	kind       CurveKind
	samples    dataset.SampleSet
	lastAUC    float64
}

// New creates a View with its initial samples generated.
func New(opts ...Option) (*View, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	var genOpts []dataset.GeneratorOption
	if cfg.jitter != nil {
		genOpts = append(genOpts, dataset.WithJitter(cfg.jitter))
	}

	kind, err := ParseCurveKind(string(cfg.curve))
	if err != nil {
		return nil, err
	}

	v := &View{
		gen:       dataset.NewGenerator(cfg.catalog, genOpts...),
		logger:    cfg.logger,
		threshold: cfg.threshold,
		kind:      kind,
	}

	def, ok := cfg.catalog.Lookup(cfg.dataset)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownDataset, cfg.dataset)
	}
	prevalence := def.DefaultPrevalence()
	if cfg.prevalence != nil {
		prevalence = *cfg.prevalence
	}
	if err := v.regenerate(cfg.dataset, prevalence); err != nil {
		return nil, err
	}
	return v, nil
}

// SetDataset switches dataset and resets prevalence to the dataset's default.
func (v *View) SetDataset(name string) error {
	def, ok := v.gen.Catalog().Lookup(name)
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownDataset, name)
	}
	return v.regenerate(name, def.DefaultPrevalence())
}

// SetPrevalence changes the prevalence percent and regenerates the samples.
func (v *View) SetPrevalence(p int) error {
	return v.regenerate(v.dataset, p)
}

// SetThreshold moves the decision threshold. Any real value is accepted.
func (v *View) SetThreshold(t float64) {
	v.threshold = t
}

// SetCurve selects the curve reported by Snapshot.
func (v *View) SetCurve(k CurveKind) error {
	kind, err := ParseCurveKind(string(k))
	if err != nil {
		return err
	}
	v.kind = kind
	return nil
}

// Dataset returns the current dataset name.
func (v *View) Dataset() string { return v.dataset }

// Prevalence returns the current prevalence percent.
func (v *View) Prevalence() int { return v.prevalence }

// Threshold returns the current threshold.
func (v *View) Threshold() float64 { return v.threshold }

// Curve returns the active curve kind.
func (v *View) Curve() CurveKind { return v.kind }

// Samples returns the current samples. Callers must not modify them.
func (v *View) Samples() dataset.SampleSet { return v.samples }

// Definition returns the definition of the current dataset.
func (v *View) Definition() dataset.Definition {
	def, _ := v.gen.Catalog().Lookup(v.dataset)
	return def
}

// LastAUC returns the area of the curve computed by the latest Snapshot.
func (v *View) LastAUC() float64 { return v.lastAUC }

// Snapshot recomputes the confusion matrix at the current threshold and the
// active curve over the current samples.
func (v *View) Snapshot() Result {
	res := Result{
		Dataset:    v.dataset,
		Prevalence: v.prevalence,
		Curve:      v.kind,
		Evaluation: curve.Evaluate(v.samples, v.threshold),
	}

	switch v.kind {
	case CurvePR:
		c := curve.PR(v.samples)
		op := curve.PRAt(v.samples, v.threshold)
		res.PR = &c
		res.AUC = c.AUC
		res.Operating = OperatingPoint{X: op.Recall, Y: op.Precision}
	default:
		c := curve.ROC(v.samples)
		res.ROC = &c
		res.AUC = c.AUC
		res.Operating = OperatingPoint{X: res.Evaluation.Rates.FPR, Y: res.Evaluation.Rates.Recall}
	}

	v.lastAUC = res.AUC
	v.logger.Debug("snapshot",
		"dataset", v.dataset,
		"threshold", v.threshold,
		"curve", string(v.kind),
		"auc", res.AUC,
	)
	return res
}

func (v *View) regenerate(name string, prevalence int) error {
	samples, err := v.gen.Generate(name, prevalence)
	if err != nil {
		return err
	}
	v.dataset = name
	v.prevalence = prevalence
	v.samples = samples
	v.logger.Debug("samples regenerated",
		"dataset", name,
		"prevalence", prevalence,
		"positives", samples.Positives(),
		"negatives", samples.Negatives(),
	)
	return nil
}
