package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jamesainslie/go-roc/internal/plot"
)

func newPlotCommand(opts *rootOptions) *cobra.Command {
	var (
		out    string
		format string
	)

	cmd := &cobra.Command{
		Use:   "plot",
		Short: "Render the active curve with its operating point to PNG or SVG",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) (err error) {
			if out == "" {
				return errors.New("--out is required")
			}
			f := plot.FormatFromPath(out)
			if format != "" {
				if f, err = plot.ParseFormat(format); err != nil {
					return err
				}
			}

			v, err := opts.view(cmd)
			if err != nil {
				return err
			}

			file, err := os.Create(out)
			if err != nil {
				return fmt.Errorf("creating %s: %w", out, err)
			}
			defer func() {
				if cerr := file.Close(); err == nil && cerr != nil {
					err = cerr
				}
			}()

			if err := plot.Snapshot(file, v.Snapshot(), f); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", out)
			return nil
		},
	}

	cmd.Flags().StringVarP(&out, "out", "o", "", "Output file; the extension picks the format")
	cmd.Flags().StringVar(&format, "format", "", "Force png or svg")
	return cmd
}
