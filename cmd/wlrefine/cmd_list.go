package main

import (
	"fmt"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/wlrefine/scenario"
)

func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List built-in scenarios",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			t := table.NewWriter()
			t.SetStyle(table.StyleLight)
			t.AppendHeader(table.Row{"name", "max_k", "description"})
			for _, name := range scenario.List() {
				sc, err := scenario.Load(name)
				if err != nil {
					return err
				}
				t.AppendRow(table.Row{sc.Name, sc.MaxK, sc.Description})
			}
			_, err := fmt.Fprintln(cmd.OutOrStdout(), t.Render())
			return err
		},
	}
}
