package main

import (
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

type datasetInfo struct {
	Name              string `json:"name"`
	Description       string `json:"description,omitempty"`
	Parameterized     bool   `json:"parameterized"`
	Positives         int    `json:"positives"`
	Negatives         int    `json:"negatives"`
	DefaultPrevalence int    `json:"defaultPrevalence"`
}

func newDatasetsCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "datasets",
		Short: "List the available datasets",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := opts.settings(cmd)
			if err != nil {
				return err
			}
			catalog, err := s.OpenCatalog()
			if err != nil {
				return err
			}

			var infos []datasetInfo
			for _, d := range catalog.Definitions() {
				infos = append(infos, datasetInfo{
					Name:              d.Name,
					Description:       d.Description,
					Parameterized:     d.Parameterized(),
					Positives:         len(d.Positive),
					Negatives:         len(d.Negative),
					DefaultPrevalence: d.DefaultPrevalence(),
				})
			}

			if opts.jsonOutput {
				return writeJSON(cmd.OutOrStdout(), infos)
			}

			table := tablewriter.NewWriter(cmd.OutOrStdout())
			table.SetHeader([]string{"Name", "Kind", "Positives", "Negatives", "Prevalence"})
			for _, info := range infos {
				kind := "fixed"
				if info.Parameterized {
					kind = "parameterized"
				}
				table.Append([]string{
					info.Name,
					kind,
					strconv.Itoa(info.Positives),
					strconv.Itoa(info.Negatives),
					strconv.Itoa(info.DefaultPrevalence) + "%",
				})
			}
			table.Render()
			return nil
		},
	}
}
