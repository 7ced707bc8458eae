package main

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/wlrefine/logging"
	"github.com/katalvlaran/wlrefine/metrics"
	"github.com/katalvlaran/wlrefine/report"
	"github.com/katalvlaran/wlrefine/scenario"
	"github.com/katalvlaran/wlrefine/wl"
)

type runFlags struct {
	src             source
	maxK            int
	format          string
	metricsTextfile string
	parallel        int
}

func newRunCmd() *cobra.Command {
	var fl runFlags

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Refine one or more scenarios and report every step",
		Long: `Run refines both graphs of each selected scenario for max_k iterations
and prints the step table. With --all, a one-line summary per scenario
is printed instead.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runRefine(cmd, fl)
		},
	}

	f := cmd.Flags()
	f.StringVar(&fl.src.name, "scenario", "", "Built-in scenario name (see 'wlrefine list')")
	f.StringVarP(&fl.src.file, "file", "f", "", "Path to a scenario YAML file")
	f.BoolVar(&fl.src.all, "all", false, "Run every built-in scenario")
	f.IntVar(&fl.maxK, "max-k", -1, "Override the scenario horizon (-1 = use the scenario's max_k)")
	f.StringVarP(&fl.format, "format", "o", string(report.FormatText), "Output format (text, markdown, json, yaml)")
	f.StringVar(&fl.metricsTextfile, "metrics-textfile", "", "Write Prometheus metrics to this path after the run")
	f.IntVar(&fl.parallel, "parallel", 1, "Number of scenarios refined concurrently")
	cmd.MarkFlagsMutuallyExclusive("scenario", "file", "all")

	return cmd
}

func runRefine(cmd *cobra.Command, fl runFlags) error {
	format, err := report.ParseFormat(fl.format)
	if err != nil {
		return err
	}
	if fl.maxK > scenario.MaxHorizon {
		return fmt.Errorf("--max-k=%d exceeds %d", fl.maxK, scenario.MaxHorizon)
	}
	if fl.parallel < 1 {
		return fmt.Errorf("--parallel=%d must be at least 1", fl.parallel)
	}
	scenarios, err := fl.src.load()
	if err != nil {
		return err
	}

	reg := metrics.NewRegistry()
	logger := logging.New("run")
	runs := make([]report.Run, len(scenarios))

	g, ctx := errgroup.WithContext(cmd.Context())
	g.SetLimit(fl.parallel)
	for i, sc := range scenarios {
		g.Go(func() error {
			r, err := refineScenario(ctx, logger, reg, sc, fl.maxK)
			if err != nil {
				return err
			}
			runs[i] = r
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	if fl.metricsTextfile != "" {
		if err := reg.WriteTextfile(fl.metricsTextfile); err != nil {
			return err
		}
		logger.Info("metrics written", "path", fl.metricsTextfile)
	}

	out := cmd.OutOrStdout()
	if fl.src.all {
		return report.WriteSummary(out, format, runs)
	}
	return report.WriteRuns(out, format, runs...)
}

// refineScenario runs one scenario with horizon override (negative keeps
// the scenario's own max_k) and records it in reg.
func refineScenario(ctx context.Context, logger *slog.Logger, reg *metrics.Registry, sc *scenario.Scenario, override int) (report.Run, error) {
	if err := ctx.Err(); err != nil {
		return report.Run{}, err
	}

	maxK := sc.MaxK
	if override >= 0 {
		maxK = override
	}
	a, b, err := sc.Graphs()
	if err != nil {
		return report.Run{}, err
	}

	runID := uuid.NewString()
	log := logger.With("run_id", runID, "scenario", sc.Name)
	log.Info("refine started", "max_k", maxK, "nodes_a", a.NodeCount(), "nodes_b", b.NodeCount())

	start := time.Now()
	steps, err := wl.Refine(a, b, maxK,
		wl.WithOnStep(func(s wl.Step) {
			reg.ObserveStep(s)
			log.Debug("step", "k", s.K, "labels", len(s.UniqueLabels), "candidate", s.IsIsomorphicCandidate)
		}),
	)
	elapsed := time.Since(start)
	reg.ObserveRun(steps, err, elapsed)
	if err != nil {
		return report.Run{}, fmt.Errorf("%s: %w", sc.Name, err)
	}

	r := report.NewRun(runID, sc.Name, maxK, steps, elapsed)
	log.Info("refine finished", "verdict", r.Verdict, "duration", elapsed)
	return r, nil
}
