package scenario

import (
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"
)

// Sentinel errors for scenario loading.
var (
	// ErrNotFound indicates an unknown built-in scenario name.
	ErrNotFound = errors.New("scenario: not found")

	// ErrInvalid indicates a malformed or unbuildable scenario document.
	ErrInvalid = errors.New("scenario: invalid")
)

// MaxHorizon bounds max_k in scenario documents.
const MaxHorizon = 64

// Scenario is one refinement run: two graphs and a horizon.
type Scenario struct {
	Name        string    `yaml:"name" json:"name" validate:"required,max=64"`
	Description string    `yaml:"description,omitempty" json:"description,omitempty"`
	MaxK        int       `yaml:"max_k" json:"max_k" validate:"min=0,max=64"`
	GraphA      GraphSpec `yaml:"graph_a" json:"graph_a"`
	GraphB      GraphSpec `yaml:"graph_b" json:"graph_b"`
}

// GraphSpec declares one input graph.
type GraphSpec struct {
	Generators []GeneratorSpec `yaml:"generators,omitempty" json:"generators,omitempty" validate:"dive"`
	Nodes      []NodeSpec      `yaml:"nodes,omitempty" json:"nodes,omitempty" validate:"dive"`
	Edges      []EdgeSpec      `yaml:"edges,omitempty" json:"edges,omitempty" validate:"dive"`
	// PermuteSeed, when set, renames every node by a random permutation
	// drawn from this seed after the graph is built.
	PermuteSeed *int64 `yaml:"permute_seed,omitempty" json:"permute_seed,omitempty"`
}

// GeneratorSpec names a builder topology.
type GeneratorSpec struct {
	Kind   string `yaml:"kind" json:"kind" validate:"required,oneof=cycle path star wheel complete house random-sparse random-regular"`
	N      int    `yaml:"n,omitempty" json:"n,omitempty" validate:"min=0,max=100000"`
	Prefix string `yaml:"prefix,omitempty" json:"prefix,omitempty"`

	// Degree is read by random-regular, P by random-sparse. Both random
	// kinds fail without Seed.
	Degree int     `yaml:"degree,omitempty" json:"degree,omitempty" validate:"min=0"`
	P      float64 `yaml:"p,omitempty" json:"p,omitempty" validate:"min=0,max=1"`
	Seed   *int64  `yaml:"seed,omitempty" json:"seed,omitempty"`

	// IDs names the node-ID scheme; empty means decimal.
	IDs string `yaml:"ids,omitempty" json:"ids,omitempty" validate:"omitempty,oneof=decimal excel base36 hex"`
	// Labels are the initial labels by construction index; indices past
	// the end reuse the last value. Empty means every node gets label 1.
	Labels []int `yaml:"labels,omitempty" json:"labels,omitempty" validate:"dive,min=0"`
}

// NodeSpec is one explicit node.
type NodeSpec struct {
	ID    string `yaml:"id" json:"id" validate:"required"`
	Label int    `yaml:"label" json:"label" validate:"min=0"`
}

// EdgeSpec is one explicit undirected edge.
type EdgeSpec struct {
	Source string `yaml:"source" json:"source" validate:"required"`
	Target string `yaml:"target" json:"target" validate:"required"`
}

// UnmarshalYAML accepts "[a, b]" as well as "{source: a, target: b}".
func (e *EdgeSpec) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind == yaml.SequenceNode {
		var pair []string
		if err := value.Decode(&pair); err != nil {
			return err
		}
		if len(pair) != 2 {
			return fmt.Errorf("line %d: edge needs exactly 2 endpoints, got %d", value.Line, len(pair))
		}
		e.Source, e.Target = pair[0], pair[1]
		return nil
	}

	type plain EdgeSpec
	var p plain
	if err := value.Decode(&p); err != nil {
		return err
	}
	*e = EdgeSpec(p)
	return nil
}
