package dfs_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/wlrefine/builder"
	"github.com/katalvlaran/wlrefine/core"
	"github.com/katalvlaran/wlrefine/dfs"
)

func TestFindCycle(t *testing.T) {
	tests := []struct {
		name string
		g    *core.Graph
		want []string
	}{
		{"empty", core.NewGraph(), nil},
		{"chain", chain(4), nil},
		{"triangle", graphOf([2]string{"a", "b"}, [2]string{"b", "c"}, [2]string{"c", "a"}), []string{"a", "b", "c"}},
		{"self-loop", graphOf([2]string{"a", "b"}, [2]string{"b", "b"}), []string{"b"}},
		{"parallel", graphOf([2]string{"a", "b"}, [2]string{"a", "b"}), []string{"a", "b"}},
		{"second component", graphOf(
			[2]string{"x", "y"},
			[2]string{"p", "q"}, [2]string{"q", "r"}, [2]string{"r", "p"},
		), []string{"p", "q", "r"}},
		{"lollipop", graphOf(
			[2]string{"a", "b"}, [2]string{"b", "c"}, [2]string{"c", "d"}, [2]string{"d", "b"},
		), []string{"b", "c", "d"}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := dfs.FindCycle(tc.g)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)

			forest, err := dfs.IsForest(tc.g)
			require.NoError(t, err)
			assert.Equal(t, tc.want == nil, forest)
		})
	}
}

func TestFindCycle_Errors(t *testing.T) {
	_, err := dfs.FindCycle(nil)
	assert.ErrorIs(t, err, dfs.ErrGraphNil)

	_, err = dfs.IsForest(&core.Graph{Nodes: []core.Node{{ID: ""}}})
	assert.ErrorIs(t, err, dfs.ErrInvalidGraph)
}

func TestIsForest_Builders(t *testing.T) {
	tests := []struct {
		name   string
		con    builder.Constructor
		forest bool
	}{
		{"path", builder.Path(6), true},
		{"star", builder.Star(7), true},
		{"cycle", builder.Cycle(6), false},
		{"house", builder.House(), false},
		{"wheel", builder.Wheel(5), false},
		{"grid row", builder.Grid(1, 5), true},
		{"grid", builder.Grid(2, 2), false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g, err := builder.Build(tc.con)
			require.NoError(t, err)
			forest, err := dfs.IsForest(g)
			require.NoError(t, err)
			assert.Equal(t, tc.forest, forest)
		})
	}
}
