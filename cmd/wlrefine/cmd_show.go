package main

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/wlrefine/report"
	"github.com/katalvlaran/wlrefine/wl"
)

func newShowCmd() *cobra.Command {
	var (
		src    source
		format string
	)

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Describe a scenario's graphs, its verdict and final color classes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			f, err := report.ParseFormat(format)
			if err != nil {
				return err
			}
			scenarios, err := src.load()
			if err != nil {
				return err
			}
			sc := scenarios[0]

			a, b, err := sc.Graphs()
			if err != nil {
				return err
			}
			steps, err := wl.Refine(a, b, sc.MaxK)
			if err != nil {
				return err
			}
			o, err := report.NewOverview(sc.Name, a, b, steps)
			if err != nil {
				return err
			}
			return report.WriteOverview(cmd.OutOrStdout(), f, o)
		},
	}

	fl := cmd.Flags()
	fl.StringVar(&src.name, "scenario", "", "Built-in scenario name")
	fl.StringVarP(&src.file, "file", "f", "", "Path to a scenario YAML file")
	fl.StringVarP(&format, "format", "o", string(report.FormatText), "Output format (text, markdown, json, yaml)")
	cmd.MarkFlagsMutuallyExclusive("scenario", "file")

	return cmd
}
