// Package report renders refinement results for people and machines:
// go-pretty tables (ASCII or Markdown) for terminals and documents, JSON
// and YAML for pipelines.
package report

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/wlrefine/wl"
)

// ErrUnknownFormat is returned by ParseFormat for an unsupported name.
var ErrUnknownFormat = errors.New("report: unknown format")

// Format selects an output encoding.
type Format string

// Supported formats.
const (
	FormatText     Format = "text"
	FormatMarkdown Format = "markdown"
	FormatJSON     Format = "json"
	FormatYAML     Format = "yaml"
)

// Formats lists every supported format name.
func Formats() []string {
	return []string{string(FormatText), string(FormatMarkdown), string(FormatJSON), string(FormatYAML)}
}

// ParseFormat validates a format name.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(s)); f {
	case FormatText, FormatMarkdown, FormatJSON, FormatYAML:
		return f, nil
	}
	return "", fmt.Errorf("%w: %q (want one of %s)", ErrUnknownFormat, s, strings.Join(Formats(), ", "))
}

// Run is the record of one refinement run.
type Run struct {
	RunID        string        `json:"run_id" yaml:"run_id"`
	Scenario     string        `json:"scenario" yaml:"scenario"`
	MaxK         int           `json:"max_k" yaml:"max_k"`
	Verdict      bool          `json:"verdict" yaml:"verdict"`
	StabilizedAt *int          `json:"stabilized_at,omitempty" yaml:"stabilized_at,omitempty"`
	Duration     time.Duration `json:"duration_ns" yaml:"duration_ns"`
	Steps        []wl.Step     `json:"steps" yaml:"steps"`
}

// NewRun fills the derived fields of a Run from steps.
func NewRun(runID, name string, maxK int, steps []wl.Step, d time.Duration) Run {
	r := Run{
		RunID:    runID,
		Scenario: name,
		MaxK:     maxK,
		Verdict:  wl.Verdict(steps),
		Duration: d,
		Steps:    steps,
	}
	if k, ok := wl.StabilizedAt(steps); ok {
		r.StabilizedAt = &k
	}
	return r
}

// WriteRuns renders runs in format f.
func WriteRuns(w io.Writer, f Format, runs ...Run) error {
	switch f {
	case FormatJSON, FormatYAML:
		if len(runs) == 1 {
			return encode(w, f, runs[0])
		}
		return encode(w, f, runs)
	case FormatText, FormatMarkdown:
		for i, r := range runs {
			if i > 0 {
				if _, err := io.WriteString(w, "\n"); err != nil {
					return err
				}
			}
			if err := writeRunTable(w, f, r); err != nil {
				return err
			}
		}
		return nil
	}
	return fmt.Errorf("%w: %q", ErrUnknownFormat, f)
}

func writeRunTable(w io.Writer, f Format, r Run) error {
	t := newTable(f)
	t.SetTitle(fmt.Sprintf("%s (max_k=%d)", r.Scenario, r.MaxK))
	t.AppendHeader(table.Row{"k", "labels", "minted", "histogram A", "histogram B", "candidate"})
	for _, s := range r.Steps {
		t.AppendRow(table.Row{
			s.K,
			len(s.UniqueLabels),
			len(s.Mappings),
			Histogram(s.UniqueLabels, s.LabelCountsA),
			Histogram(s.UniqueLabels, s.LabelCountsB),
			s.IsIsomorphicCandidate,
		})
	}
	stable := "-"
	if r.StabilizedAt != nil {
		stable = strconv.Itoa(*r.StabilizedAt)
	}
	t.AppendFooter(table.Row{"", "", "", "stable at " + stable, "run " + r.RunID, r.Verdict})
	t.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, Align: text.AlignRight},
		{Number: 2, Align: text.AlignRight},
		{Number: 3, Align: text.AlignRight},
	})
	return render(w, f, t)
}

// WriteSummary renders one line per run.
func WriteSummary(w io.Writer, f Format, runs []Run) error {
	if f == FormatJSON || f == FormatYAML {
		type line struct {
			Scenario     string `json:"scenario" yaml:"scenario"`
			MaxK         int    `json:"max_k" yaml:"max_k"`
			Verdict      bool   `json:"verdict" yaml:"verdict"`
			StabilizedAt *int   `json:"stabilized_at,omitempty" yaml:"stabilized_at,omitempty"`
		}
		lines := make([]line, 0, len(runs))
		for _, r := range runs {
			lines = append(lines, line{r.Scenario, r.MaxK, r.Verdict, r.StabilizedAt})
		}
		return encode(w, f, lines)
	}

	t := newTable(f)
	t.AppendHeader(table.Row{"scenario", "max_k", "candidate", "stable at", "duration"})
	for _, r := range runs {
		stable := "-"
		if r.StabilizedAt != nil {
			stable = strconv.Itoa(*r.StabilizedAt)
		}
		t.AppendRow(table.Row{r.Scenario, r.MaxK, r.Verdict, stable, r.Duration.Round(time.Microsecond)})
	}
	return render(w, f, t)
}

// Histogram formats counts as "id×count" pairs in the order of ids,
// skipping ids absent from counts. An empty histogram renders as "∅".
func Histogram(ids []wl.LabelID, counts map[wl.LabelID]int) string {
	parts := make([]string, 0, len(counts))
	for _, id := range ids {
		if n, ok := counts[id]; ok {
			parts = append(parts, fmt.Sprintf("%s×%d", id, n))
		}
	}
	if len(parts) == 0 {
		return "∅"
	}
	return strings.Join(parts, " ")
}

// encode writes v as indented JSON or YAML.
func encode(w io.Writer, f Format, v any) error {
	if f == FormatJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	}
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return err
	}
	return enc.Close()
}

func newTable(f Format) table.Writer {
	t := table.NewWriter()
	if f == FormatText {
		t.SetStyle(table.StyleLight)
	}
	return t
}

func render(w io.Writer, f Format, t table.Writer) error {
	var out string
	if f == FormatMarkdown {
		out = t.RenderMarkdown()
	} else {
		out = t.Render()
	}
	_, err := io.WriteString(w, out+"\n")
	return err
}
