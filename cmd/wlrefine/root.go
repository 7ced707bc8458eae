// wlrefine runs Weisfeiler-Lehman color refinement on pairs of graphs.
//
// Usage:
//
//	wlrefine list
//	wlrefine run --scenario=<name> [--max-k=<k>] [--format=text|markdown|json|yaml]
//	wlrefine run --file=<scenario.yaml>
//	wlrefine run --all [--parallel=<n>] [--metrics-textfile=<path>]
//	wlrefine show --scenario=<name>
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/wlrefine/logging"
)

// version is set at build time via -ldflags.
var version = "dev"

func newRootCmd() *cobra.Command {
	var logLevel, logFormat string

	root := &cobra.Command{
		Use:   "wlrefine",
		Short: "Weisfeiler-Lehman color refinement for graph pairs",
		Long: "wlrefine refines the node colors of two graphs side by side and\n" +
			"reports, per iteration, whether their color histograms still agree.",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		CompletionOptions: cobra.CompletionOptions{
			HiddenDefaultCmd: true,
		},
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			_, err := logging.Init(logLevel, logFormat, cmd.ErrOrStderr())
			return err
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&logLevel, "log-level", "warn", "Log level (debug, info, warn, error)")
	pf.StringVar(&logFormat, "log-format", logging.FormatText, "Log format (text, json)")

	root.AddCommand(newListCmd(), newRunCmd(), newShowCmd())
	return root
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
