package builder_test

import (
	"fmt"

	"github.com/katalvlaran/wlrefine/builder"
)

// ExampleBuildGraph assembles two disjoint triangles in one graph.
func ExampleBuildGraph() {
	g, err := builder.BuildGraph(nil,
		builder.Scoped("x:", builder.Cycle(3)),
		builder.Scoped("y:", builder.Cycle(3)),
	)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(g.NodeCount(), g.EdgeCount())
	fmt.Println(g.NodeIDs())
	// Output:
	// 6 6
	// [x:0 x:1 x:2 y:0 y:1 y:2]
}

// ExampleStar labels the hub differently from its leaves.
func ExampleStar() {
	g, _ := builder.Build(builder.Star(5), builder.WithLabels(3, 2, 2, 2, 2))
	for _, n := range g.Nodes {
		fmt.Printf("%s=%d ", n.ID, n.Label)
	}
	fmt.Println()
	// Output:
	// Center=3 1=2 2=2 3=2 4=2
}
