package metrics

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	dto "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/wlrefine/builder"
	"github.com/katalvlaran/wlrefine/wl"
)

func TestNewRegistry(t *testing.T) {
	r := NewRegistry()
	require.NotNil(t, r)
	assert.NotNil(t, r.RunsTotal)
	assert.NotNil(t, r.StepsTotal)
	assert.NotNil(t, r.CandidateVerdicts)
	assert.NotNil(t, r.registry)

	// Registries are independent.
	other := NewRegistry()
	r.StepsTotal.Inc()
	assert.Equal(t, 1.0, testutil.ToFloat64(r.StepsTotal))
	assert.Equal(t, 0.0, testutil.ToFloat64(other.StepsTotal))
}

func TestObserve_RefineRun(t *testing.T) {
	r := NewRegistry()
	house, err := builder.Build(builder.House(), builder.WithLabels(1, 1, 1, 1, 2))
	require.NoError(t, err)

	start := time.Now()
	steps, err := wl.Refine(house, house, 3, wl.WithOnStep(r.ObserveStep))
	r.ObserveRun(steps, err, time.Since(start))
	require.NoError(t, err)

	assert.Equal(t, 4.0, testutil.ToFloat64(r.StepsTotal))
	// 2 + 3 + 3 + 3 ids minted.
	assert.Equal(t, 11.0, testutil.ToFloat64(r.SignaturesMinted))
	assert.Equal(t, 3.0, testutil.ToFloat64(r.LastDistinctLabels))
	assert.Equal(t, 1.0, testutil.ToFloat64(r.RunsTotal.WithLabelValues(StatusOK)))
	assert.Equal(t, 1.0, testutil.ToFloat64(r.CandidateVerdicts.WithLabelValues("true")))

	r.ObserveRun(nil, errors.New("boom"), time.Millisecond)
	assert.Equal(t, 1.0, testutil.ToFloat64(r.RunsTotal.WithLabelValues(StatusError)))
	assert.Equal(t, 0.0, testutil.ToFloat64(r.CandidateVerdicts.WithLabelValues("false")))

	families, err := r.Gatherer().Gather()
	require.NoError(t, err)
	var hist *dto.Histogram
	for _, mf := range families {
		if mf.GetName() == "wlrefine_run_duration_seconds" {
			hist = mf.GetMetric()[0].GetHistogram()
		}
	}
	require.NotNil(t, hist)
	assert.Equal(t, uint64(2), hist.GetSampleCount())
}

func TestWriteTextfile(t *testing.T) {
	r := NewRegistry()
	r.ObserveRun([]wl.Step{{IsIsomorphicCandidate: false}}, nil, 2*time.Millisecond)

	path := filepath.Join(t.TempDir(), "wlrefine.prom")
	require.NoError(t, r.WriteTextfile(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	text := string(data)
	assert.True(t, strings.Contains(text, `wlrefine_runs_total{status="ok"} 1`), text)
	assert.Contains(t, text, `wlrefine_candidate_verdicts_total{verdict="false"} 1`)
	assert.Contains(t, text, "# TYPE wlrefine_run_duration_seconds histogram")
}
