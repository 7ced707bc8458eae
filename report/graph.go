package report

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/katalvlaran/wlrefine/bfs"
	"github.com/katalvlaran/wlrefine/core"
	"github.com/katalvlaran/wlrefine/dfs"
	"github.com/katalvlaran/wlrefine/wl"
)

// GraphSummary is the structural profile of one input graph.
type GraphSummary struct {
	Name       string `json:"name" yaml:"name"`
	Nodes      int    `json:"nodes" yaml:"nodes"`
	Edges      int    `json:"edges" yaml:"edges"`
	Components int    `json:"components" yaml:"components"`
	// Diameter is the largest distance within any component.
	Diameter int `json:"diameter" yaml:"diameter"`
	// Forest is true when the graph has no cycle; self-loops and parallel
	// edges count as cycles.
	Forest bool `json:"forest" yaml:"forest"`
	// Degrees is the non-increasing degree sequence.
	Degrees []int `json:"degrees" yaml:"degrees"`
	// Labels maps each initial label to its node count.
	Labels map[int]int `json:"labels" yaml:"labels"`
}

// Summarize profiles g.
func Summarize(name string, g *core.Graph) (GraphSummary, error) {
	ix, err := core.BuildIndex(g)
	if err != nil {
		return GraphSummary{}, fmt.Errorf("summarize %s: %w", name, err)
	}
	comps, err := bfs.Components(g)
	if err != nil {
		return GraphSummary{}, fmt.Errorf("summarize %s: %w", name, err)
	}
	diam, err := bfs.Diameter(g)
	if err != nil {
		return GraphSummary{}, fmt.Errorf("summarize %s: %w", name, err)
	}
	forest, err := dfs.IsForest(g)
	if err != nil {
		return GraphSummary{}, fmt.Errorf("summarize %s: %w", name, err)
	}

	s := GraphSummary{
		Name:       name,
		Nodes:      ix.Len(),
		Edges:      g.EdgeCount(),
		Components: len(comps),
		Diameter:   diam,
		Forest:     forest,
		Degrees:    make([]int, ix.Len()),
		Labels:     make(map[int]int),
	}
	for i := 0; i < ix.Len(); i++ {
		s.Degrees[i] = ix.Degree(i)
		s.Labels[ix.Label(i)]++
	}
	sort.Sort(sort.Reverse(sort.IntSlice(s.Degrees)))

	return s, nil
}

// Overview is the structural view of a scenario: both graphs, the final
// verdict and the color classes of the last step.
type Overview struct {
	Scenario     string         `json:"scenario" yaml:"scenario"`
	Graphs       []GraphSummary `json:"graphs" yaml:"graphs"`
	Verdict      bool           `json:"verdict" yaml:"verdict"`
	StabilizedAt *int           `json:"stabilized_at,omitempty" yaml:"stabilized_at,omitempty"`
	// Decisive is true when Verdict settles isomorphism: either the
	// histograms differed, or both graphs are forests and refinement
	// reached a stable partition (1-WL identifies forests).
	Decisive bool       `json:"decisive" yaml:"decisive"`
	Classes  []wl.Class `json:"classes" yaml:"classes"`
}

// NewOverview summarizes a and b and reads the outcome from steps, the
// result of refining a against b. steps must not be empty.
func NewOverview(name string, a, b *core.Graph, steps []wl.Step) (Overview, error) {
	sa, err := Summarize("A", a)
	if err != nil {
		return Overview{}, err
	}
	sb, err := Summarize("B", b)
	if err != nil {
		return Overview{}, err
	}

	o := Overview{
		Scenario: name,
		Graphs:   []GraphSummary{sa, sb},
		Verdict:  wl.Verdict(steps),
		Classes:  wl.Classes(steps[len(steps)-1]),
	}
	k, stable := wl.StabilizedAt(steps)
	if stable {
		o.StabilizedAt = &k
	}
	o.Decisive = !o.Verdict || (stable && sa.Forest && sb.Forest)
	return o, nil
}

// WriteOverview renders o. Tables list the graphs, then the final classes.
func WriteOverview(w io.Writer, f Format, o Overview) error {
	if f == FormatJSON || f == FormatYAML {
		return encode(w, f, o)
	}

	t := newTable(f)
	t.SetTitle(o.Scenario)
	t.AppendHeader(table.Row{"graph", "nodes", "edges", "components", "diameter", "forest", "degrees", "labels"})
	for _, g := range o.Graphs {
		t.AppendRow(table.Row{g.Name, g.Nodes, g.Edges, g.Components, g.Diameter, g.Forest, joinInts(g.Degrees), labelCounts(g.Labels)})
	}
	stable := "-"
	if o.StabilizedAt != nil {
		stable = fmt.Sprint(*o.StabilizedAt)
	}
	t.AppendFooter(table.Row{"candidate", o.Verdict, "decisive", o.Decisive, "stable at", stable, "", ""})
	if err := render(w, f, t); err != nil {
		return err
	}

	c := newTable(f)
	c.AppendHeader(table.Row{"label", "A", "B"})
	for _, cl := range o.Classes {
		var a, b []string
		for _, m := range cl.Members {
			if m.Graph == wl.GraphA {
				a = append(a, m.ID)
			} else {
				b = append(b, m.ID)
			}
		}
		c.AppendRow(table.Row{cl.Label, strings.Join(a, " "), strings.Join(b, " ")})
	}
	return render(w, f, c)
}

func joinInts(xs []int) string {
	parts := make([]string, len(xs))
	for i, x := range xs {
		parts[i] = fmt.Sprint(x)
	}
	return strings.Join(parts, " ")
}

func labelCounts(m map[int]int) string {
	keys := make([]int, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Ints(keys)
	parts := make([]string, len(keys))
	for i, k := range keys {
		parts[i] = fmt.Sprintf("%d×%d", k, m[k])
	}
	return strings.Join(parts, " ")
}
