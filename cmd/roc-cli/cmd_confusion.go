package main

import (
	"fmt"
	"io"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	roc "github.com/jamesainslie/go-roc"
	"github.com/jamesainslie/go-roc/curve"
)

type confusionOutput struct {
	Dataset     string       `json:"dataset"`
	Prevalence  int          `json:"prevalence"`
	Description string       `json:"description,omitempty"`
	Result      curve.Result `json:"result"`
}

func newConfusionCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "confusion",
		Short: "Show the confusion matrix and derived rates at the threshold",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := opts.view(cmd)
			if err != nil {
				return err
			}
			res := v.Snapshot()

			if opts.jsonOutput {
				return writeJSON(cmd.OutOrStdout(), confusionOutput{
					Dataset:     res.Dataset,
					Prevalence:  res.Prevalence,
					Description: v.Definition().Description,
					Result:      res.Evaluation,
				})
			}

			w := cmd.OutOrStdout()
			printDatasetHeader(w, v)
			renderConfusion(w, res.Evaluation)
			return nil
		},
	}
}

// printDatasetHeader names the dataset, its settings and its explanation.
func printDatasetHeader(w io.Writer, v *roc.View) {
	fmt.Fprintf(w, "Dataset: %s  Prevalence: %d%%  Threshold: %g\n",
		v.Dataset(), v.Prevalence(), v.Threshold())
	if desc := v.Definition().Description; desc != "" {
		fmt.Fprintln(w, desc)
	}
	fmt.Fprintln(w)
}

func renderConfusion(w io.Writer, res curve.Result) {
	c := res.Confusion
	matrix := tablewriter.NewWriter(w)
	matrix.SetHeader([]string{"", "Predicted positive", "Predicted negative"})
	matrix.Append([]string{"Actual positive", strconv.Itoa(c.TP), strconv.Itoa(c.FN)})
	matrix.Append([]string{"Actual negative", strconv.Itoa(c.FP), strconv.Itoa(c.TN)})
	matrix.Render()

	r := res.Rates
	rates := tablewriter.NewWriter(w)
	rates.SetHeader([]string{"Metric", "Value"})
	rates.SetAlignment(tablewriter.ALIGN_RIGHT)
	for _, row := range []struct {
		name  string
		value float64
	}{
		{"Accuracy", r.Accuracy},
		{"Recall (TPR)", r.Recall},
		{"FPR", r.FPR},
		{"Specificity", r.Specificity},
		{"Precision", r.Precision},
		{"NPV", r.NPV},
		{"F1", r.F1},
	} {
		rates.Append([]string{row.name, strconv.FormatFloat(row.value, 'f', 3, 64)})
	}
	rates.Render()
}
