package roc

import (
	"bytes"
	"log/slog"
	"math/rand/v2"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jamesainslie/go-roc/dataset"
)

func TestCallInterface(t *testing.T) {
	samples, err := GenerateSamples(dataset.Imbalanced, 10)
	require.NoError(t, err)
	require.Equal(t, 100, samples.Len())

	res := ComputeConfusion(samples, 50)
	c := res.Confusion
	assert.Equal(t, samples.Len(), c.TP+c.FN+c.FP+c.TN)

	rocCurve := ComputeROC(samples)
	assert.Len(t, rocCurve.Points, 51)
	assert.Greater(t, rocCurve.AUC, 0.5)

	prCurve := ComputePR(samples)
	assert.Len(t, prCurve.Points, 101)
	assert.Greater(t, prCurve.AUC, 0.0)
}

func TestGenerateSamplesErrors(t *testing.T) {
	_, err := GenerateSamples("missing", 10)
	assert.ErrorIs(t, err, ErrUnknownDataset)
	assert.ErrorIs(t, err, ErrInvalidArgument)

	_, err = GenerateSamples(dataset.Imbalanced, 101)
	assert.ErrorIs(t, err, ErrPrevalenceRange)
	assert.ErrorIs(t, err, ErrInvalidArgument)
}

func TestNewDefaults(t *testing.T) {
	v, err := New()
	require.NoError(t, err)

	assert.Equal(t, dataset.Separated, v.Dataset())
	assert.Equal(t, 30, v.Prevalence())
	assert.Equal(t, 50.0, v.Threshold())
	assert.Equal(t, CurveROC, v.Curve())
	assert.Equal(t, 100, v.Samples().Len())
	assert.Equal(t, dataset.Separated, v.Definition().Name)
}

func TestNewOptions(t *testing.T) {
	v, err := New(
		WithDataset(dataset.Imbalanced),
		WithPrevalence(20),
		WithThreshold(65),
		WithCurve(CurvePR),
	)
	require.NoError(t, err)

	assert.Equal(t, dataset.Imbalanced, v.Dataset())
	assert.Equal(t, 20, v.Prevalence())
	assert.Equal(t, 20, v.Samples().Positives())
	assert.Equal(t, 65.0, v.Threshold())
	assert.Equal(t, CurvePR, v.Curve())
}

func TestNewErrors(t *testing.T) {
	tests := []struct {
		name string
		opts []Option
		want error
	}{
		{name: "unknown dataset", opts: []Option{WithDataset("nope")}, want: ErrUnknownDataset},
		{name: "bad prevalence", opts: []Option{WithDataset(dataset.Imbalanced), WithPrevalence(-3)}, want: ErrPrevalenceRange},
		{name: "bad curve", opts: []Option{WithCurve("det")}, want: ErrUnknownCurve},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, err := New(tt.opts...)
			assert.Nil(t, v)
			assert.ErrorIs(t, err, tt.want)
			assert.ErrorIs(t, err, ErrInvalidArgument)
		})
	}
}

func TestViewRejectedChangesKeepState(t *testing.T) {
	v, err := New(WithDataset(dataset.Imbalanced))
	require.NoError(t, err)
	before := v.Samples()

	assert.ErrorIs(t, v.SetDataset("nope"), ErrUnknownDataset)
	assert.ErrorIs(t, v.SetPrevalence(150), ErrPrevalenceRange)
	assert.ErrorIs(t, v.SetCurve("lift"), ErrUnknownCurve)

	assert.Equal(t, dataset.Imbalanced, v.Dataset())
	assert.Equal(t, 10, v.Prevalence())
	assert.Equal(t, CurveROC, v.Curve())
	assert.Equal(t, before, v.Samples())
}

func TestViewSetDatasetResetsPrevalence(t *testing.T) {
	v, err := New(WithDataset(dataset.Imbalanced), WithPrevalence(40))
	require.NoError(t, err)

	require.NoError(t, v.SetDataset(dataset.Unseparated))
	assert.Equal(t, 30, v.Prevalence())

	require.NoError(t, v.SetDataset(dataset.Imbalanced))
	assert.Equal(t, 10, v.Prevalence())
	assert.Equal(t, 10, v.Samples().Positives())
}

func TestViewSnapshotROC(t *testing.T) {
	v, err := New(WithDataset(dataset.Separated), WithThreshold(50))
	require.NoError(t, err)

	snap := v.Snapshot()
	assert.Equal(t, CurveROC, snap.Curve)
	require.NotNil(t, snap.ROC)
	assert.Nil(t, snap.PR)
	assert.Equal(t, snap.ROC.AUC, snap.AUC)
	assert.Equal(t, snap.AUC, v.LastAUC())
	assert.Equal(t, snap.Evaluation.Rates.FPR, snap.Operating.X)
	assert.Equal(t, snap.Evaluation.Rates.Recall, snap.Operating.Y)
	assert.Equal(t, 30, snap.Evaluation.Confusion.TP)
}

func TestViewSnapshotPR(t *testing.T) {
	v, err := New(WithDataset(dataset.Separated), WithCurve(CurvePR))
	require.NoError(t, err)

	v.SetThreshold(101)
	snap := v.Snapshot()

	require.NotNil(t, snap.PR)
	assert.Nil(t, snap.ROC)
	assert.Equal(t, snap.PR.AUC, v.LastAUC())

	// Same threshold, two conventions.
	assert.Equal(t, 0.0, snap.Evaluation.Rates.Precision)
	assert.Equal(t, 1.0, snap.Operating.Y)
	assert.Equal(t, 0.0, snap.Operating.X)
}

func TestViewLastAUCFollowsCurve(t *testing.T) {
	v, err := New(WithDataset(dataset.Unseparated))
	require.NoError(t, err)

	rocAUC := v.Snapshot().AUC
	require.NoError(t, v.SetCurve(CurvePR))
	prAUC := v.Snapshot().AUC

	assert.Equal(t, prAUC, v.LastAUC())
	assert.NotEqual(t, rocAUC, prAUC)
}

func TestViewRegenerationIsDeterministic(t *testing.T) {
	v, err := New(WithDataset(dataset.Imbalanced))
	require.NoError(t, err)
	first := v.Samples()

	require.NoError(t, v.SetPrevalence(30))
	require.NoError(t, v.SetPrevalence(10))
	assert.Equal(t, first, v.Samples())
}

func TestViewJitter(t *testing.T) {
	v, err := New(
		WithDataset(dataset.Imbalanced),
		WithPrevalence(30),
		WithJitter(rand.New(rand.NewPCG(7, 7))),
	)
	require.NoError(t, err)

	plain, err := GenerateSamples(dataset.Imbalanced, 30)
	require.NoError(t, err)

	got := v.Samples()
	require.Equal(t, plain.Len(), got.Len())
	assert.Equal(t, plain[:10], got[:10], "first pass through the pool is exact")
	for i := 10; i < 30; i++ {
		assert.InDelta(t, plain[i].Score, got[i].Score, dataset.MaxJitter)
	}
}

func TestViewLogging(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	v, err := New(WithLogger(logger), WithDataset(dataset.Imbalanced))
	require.NoError(t, err)
	v.Snapshot()

	out := buf.String()
	assert.True(t, strings.Contains(out, "samples regenerated"), out)
	assert.True(t, strings.Contains(out, "dataset=imbalanced"), out)
	assert.True(t, strings.Contains(out, "msg=snapshot"), out)
}

func TestParseCurveKind(t *testing.T) {
	k, err := ParseCurveKind("pr")
	require.NoError(t, err)
	assert.Equal(t, CurvePR, k)

	_, err = ParseCurveKind("")
	assert.ErrorIs(t, err, ErrUnknownCurve)
}
