package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	roc "github.com/jamesainslie/go-roc"
)

// runCLI executes the root command with args and returns stdout.
func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("ROC_CONFIG_FILE", "")

	var out, errOut bytes.Buffer
	cmd := newRootCommand()
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestDatasetsCommand(t *testing.T) {
	out, err := runCLI(t, "datasets")
	require.NoError(t, err)
	for _, name := range []string{"separated", "unseparated", "imbalanced", "parameterized"} {
		assert.Contains(t, out, name)
	}
}

func TestDatasetsCommand_JSON(t *testing.T) {
	out, err := runCLI(t, "datasets", "--json")
	require.NoError(t, err)

	var infos []datasetInfo
	require.NoError(t, json.Unmarshal([]byte(out), &infos))
	require.Len(t, infos, 3)
	assert.Equal(t, "separated", infos[0].Name)
	assert.Equal(t, 30, infos[0].DefaultPrevalence)
	assert.True(t, infos[2].Parameterized)
	assert.Equal(t, 10, infos[2].DefaultPrevalence)
}

func TestConfusionCommand_JSON(t *testing.T) {
	out, err := runCLI(t, "confusion", "--json", "--dataset", "unseparated", "--threshold", "50")
	require.NoError(t, err)

	var got confusionOutput
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, "unseparated", got.Dataset)
	assert.Equal(t, 18, got.Result.Confusion.TP)
	assert.Equal(t, 12, got.Result.Confusion.FN)
	assert.Equal(t, 39, got.Result.Confusion.FP)
	assert.Equal(t, 31, got.Result.Confusion.TN)
}

func TestConfusionCommand_Table(t *testing.T) {
	out, err := runCLI(t, "confusion")
	require.NoError(t, err)
	assert.Contains(t, out, "Dataset: separated")
	assert.Contains(t, out, "Actual positive")
	assert.Contains(t, out, "Specificity")
}

func TestConfusionCommand_Prevalence(t *testing.T) {
	out, err := runCLI(t, "confusion", "--json", "--dataset", "imbalanced", "--prevalence", "40", "--threshold", "0")
	require.NoError(t, err)

	var got confusionOutput
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, 40, got.Prevalence)
	assert.Equal(t, 40, got.Result.Confusion.TP)
	assert.Equal(t, 60, got.Result.Confusion.FP)
}

func TestCurveCommands(t *testing.T) {
	for _, kind := range []roc.CurveKind{roc.CurveROC, roc.CurvePR} {
		t.Run(string(kind), func(t *testing.T) {
			out, err := runCLI(t, string(kind), "--json")
			require.NoError(t, err)

			var res roc.Result
			require.NoError(t, json.Unmarshal([]byte(out), &res))
			assert.Equal(t, kind, res.Curve)
			assert.Greater(t, res.AUC, 0.85)
			if kind == roc.CurveROC {
				require.NotNil(t, res.ROC)
				assert.Len(t, res.ROC.Points, 51)
			} else {
				require.NotNil(t, res.PR)
				assert.Len(t, res.PR.Points, 101)
			}
		})
	}
}

func TestCurveCommand_Table(t *testing.T) {
	out, err := runCLI(t, "roc", "--threshold", "50")
	require.NoError(t, err)
	assert.Contains(t, out, "AUC: ")
	assert.Contains(t, out, "*")
	assert.Contains(t, out, "Operating point at threshold 50")
}

func TestPlotCommand(t *testing.T) {
	dir := t.TempDir()
	out := filepath.Join(dir, "curve.svg")

	_, err := runCLI(t, "plot", "--out", out, "--curve", "pr")
	require.NoError(t, err)

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Contains(t, string(data), "<svg")
}

func TestPlotCommand_Errors(t *testing.T) {
	_, err := runCLI(t, "plot")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--out")

	_, err = runCLI(t, "plot", "--out", filepath.Join(t.TempDir(), "x.png"), "--format", "gif")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported plot format")
}

func TestRejectedArguments(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"unknown dataset", []string{"confusion", "--dataset", "nope"}},
		{"prevalence too high", []string{"confusion", "--dataset", "imbalanced", "--prevalence", "101"}},
		{"unknown curve", []string{"confusion", "--curve", "det"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := runCLI(t, tt.args...)
			require.Error(t, err)
			assert.ErrorIs(t, err, roc.ErrInvalidArgument)
		})
	}
}

func TestSamplesDirFlag(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "clinic.csv"), []byte("score,label\n90,1\n20,0\n"), 0o600))

	out, err := runCLI(t, "confusion", "--json", "--samples", dir, "--threshold", "50")
	require.NoError(t, err)

	var got confusionOutput
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, "clinic", got.Dataset)
	assert.Equal(t, 1, got.Result.Confusion.TP)
	assert.Equal(t, 1, got.Result.Confusion.TN)
}

func TestVersion(t *testing.T) {
	out, err := runCLI(t, "--version")
	require.NoError(t, err)
	assert.Contains(t, out, "dev (commit none")
}

func TestDatasetDescriptionShown(t *testing.T) {
	out, err := runCLI(t, "confusion")
	require.NoError(t, err)
	assert.Contains(t, out, "Severe cases")

	out, err = runCLI(t, "pr", "--dataset", "separated")
	require.NoError(t, err)
	assert.Contains(t, out, "Severe cases")

	out, err = runCLI(t, "confusion", "--json")
	require.NoError(t, err)
	var got confusionOutput
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Contains(t, got.Description, "Severe cases")
}
