package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/wlrefine/core"
)

// TestAddNode_Errors verifies that malformed nodes are rejected with the right sentinel.
func TestAddNode_Errors(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddNode("A", 0))

	assert.ErrorIs(t, g.AddNode("", 1), core.ErrEmptyNodeID)
	assert.ErrorIs(t, g.AddNode("B", -1), core.ErrNegativeLabel)
	assert.ErrorIs(t, g.AddNode("A", 2), core.ErrDuplicateNode)
	assert.Equal(t, 1, g.NodeCount(), "rejected nodes must not be stored")
}

// TestAddEdge_DeferredEndpointCheck shows that AddEdge accepts unknown endpoints
// and Validate reports them.
func TestAddEdge_DeferredEndpointCheck(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddEdge("A", "B"))
	assert.ErrorIs(t, g.AddEdge("", "B"), core.ErrEmptyNodeID)
	assert.ErrorIs(t, g.Validate(), core.ErrNodeNotFound)

	require.NoError(t, g.AddNode("A", 1))
	require.NoError(t, g.AddNode("B", 1))
	assert.NoError(t, g.Validate())
	assert.Equal(t, 1, g.EdgeCount())
}

// TestValidate_Nil covers the nil receiver.
func TestValidate_Nil(t *testing.T) {
	var g *core.Graph
	assert.ErrorIs(t, g.Validate(), core.ErrGraphNil)
}

// TestValidate_LiteralGraph checks graphs assembled as struct literals, which bypass AddNode.
func TestValidate_LiteralGraph(t *testing.T) {
	cases := []struct {
		name string
		g    core.Graph
		want error
	}{
		{"ok", core.Graph{Nodes: []core.Node{{ID: "x"}, {ID: "y", Label: 3}}, Edges: []core.Edge{{Source: "x", Target: "y"}}}, nil},
		{"empty", core.Graph{}, nil},
		{"dup", core.Graph{Nodes: []core.Node{{ID: "x"}, {ID: "x"}}}, core.ErrDuplicateNode},
		{"blank", core.Graph{Nodes: []core.Node{{ID: ""}}}, core.ErrEmptyNodeID},
		{"negative", core.Graph{Nodes: []core.Node{{ID: "x", Label: -4}}}, core.ErrNegativeLabel},
		{"dangling target", core.Graph{Nodes: []core.Node{{ID: "x"}}, Edges: []core.Edge{{Source: "x", Target: "z"}}}, core.ErrNodeNotFound},
		{"dangling source", core.Graph{Nodes: []core.Node{{ID: "x"}}, Edges: []core.Edge{{Source: "z", Target: "x"}}}, core.ErrNodeNotFound},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.g.Validate()
			if tc.want == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

// TestNodeIDs_Sorted ensures deterministic enumeration.
func TestNodeIDs_Sorted(t *testing.T) {
	g := core.NewGraph()
	for _, id := range []string{"c", "a", "b"} {
		require.NoError(t, g.AddNode(id, 0))
	}
	assert.Equal(t, []string{"a", "b", "c"}, g.NodeIDs())
	assert.True(t, g.HasNode("b"))
	assert.False(t, g.HasNode(""))
	assert.False(t, g.HasNode("z"))
}

// TestClone_Independent ensures a clone does not alias the original slices.
func TestClone_Independent(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddNode("a", 1))
	require.NoError(t, g.AddNode("b", 2))
	require.NoError(t, g.AddEdge("a", "b"))

	c := g.Clone()
	require.Equal(t, g, c)
	c.Nodes[0].Label = 9
	c.Edges[0].Target = "a"
	assert.Equal(t, 1, g.Nodes[0].Label)
	assert.Equal(t, "b", g.Edges[0].Target)

	var nilGraph *core.Graph
	assert.Nil(t, nilGraph.Clone())
}

// TestRelabel covers renaming, partial maps and collisions.
func TestRelabel(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddNode("a", 1))
	require.NoError(t, g.AddNode("b", 2))
	require.NoError(t, g.AddNode("c", 3))
	require.NoError(t, g.AddEdge("a", "b"))
	require.NoError(t, g.AddEdge("b", "c"))

	r, err := g.Relabel(map[string]string{"a": "x", "b": "y"})
	require.NoError(t, err)
	assert.Equal(t, []core.Node{{ID: "x", Label: 1}, {ID: "y", Label: 2}, {ID: "c", Label: 3}}, r.Nodes)
	assert.Equal(t, []core.Edge{{Source: "x", Target: "y"}, {Source: "y", Target: "c"}}, r.Edges)
	assert.NoError(t, r.Validate())

	_, err = g.Relabel(map[string]string{"a": "c"})
	assert.ErrorIs(t, err, core.ErrDuplicateNode)

	_, err = g.Relabel(map[string]string{"a": ""})
	assert.ErrorIs(t, err, core.ErrEmptyNodeID)

	var nilGraph *core.Graph
	_, err = nilGraph.Relabel(nil)
	assert.ErrorIs(t, err, core.ErrGraphNil)
}
