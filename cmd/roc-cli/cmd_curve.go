package main

import (
	"fmt"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	roc "github.com/jamesainslie/go-roc"
)

// newCurveCommand builds the roc and pr subcommands. Both print the swept
// points, the area under the curve and the operating point.
func newCurveCommand(opts *rootOptions, kind roc.CurveKind) *cobra.Command {
	var short, xName, yName string
	switch kind {
	case roc.CurvePR:
		short, xName, yName = "Show the interpolated precision-recall curve", "Recall", "Precision"
	default:
		short, xName, yName = "Show the ROC curve", "FPR", "TPR"
	}

	return &cobra.Command{
		Use:   string(kind),
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := opts.view(cmd)
			if err != nil {
				return err
			}
			if err := v.SetCurve(kind); err != nil {
				return err
			}
			res := v.Snapshot()

			if opts.jsonOutput {
				return writeJSON(cmd.OutOrStdout(), res)
			}

			type row struct{ threshold, x, y float64 }
			var rows []row
			nearest := -1.0
			if res.ROC != nil {
				for _, p := range res.ROC.Points {
					rows = append(rows, row{p.Threshold, p.FPR, p.TPR})
				}
				if p, ok := res.ROC.Nearest(v.Threshold()); ok {
					nearest = p.Threshold
				}
			} else {
				for _, p := range res.PR.Points {
					rows = append(rows, row{p.Threshold, p.Recall, p.Precision})
				}
				if p, ok := res.PR.Nearest(v.Threshold()); ok {
					nearest = p.Threshold
				}
			}

			w := cmd.OutOrStdout()
			printDatasetHeader(w, v)
			table := tablewriter.NewWriter(w)
			table.SetHeader([]string{"Threshold", xName, yName, ""})
			table.SetAlignment(tablewriter.ALIGN_RIGHT)
			for _, r := range rows {
				mark := ""
				if r.threshold == nearest {
					mark = "*"
				}
				table.Append([]string{
					strconv.FormatFloat(r.threshold, 'f', 0, 64),
					strconv.FormatFloat(r.x, 'f', 3, 64),
					strconv.FormatFloat(r.y, 'f', 3, 64),
					mark,
				})
			}
			table.Render()

			fmt.Fprintf(w, "AUC: %.4f\n", res.AUC)
			fmt.Fprintf(w, "Operating point at threshold %g: %s=%.3f %s=%.3f\n",
				v.Threshold(), xName, res.Operating.X, yName, res.Operating.Y)
			return nil
		},
	}
}
