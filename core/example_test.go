package core_test

import (
	"fmt"

	"github.com/katalvlaran/wlrefine/core"
)

// ExampleBuildIndex builds a labeled triangle and inspects its arena.
func ExampleBuildIndex() {
	g := core.NewGraph()
	_ = g.AddNode("B", 1)
	_ = g.AddNode("A", 2)
	_ = g.AddNode("C", 1)
	_ = g.AddEdge("A", "B")
	_ = g.AddEdge("B", "C")
	_ = g.AddEdge("C", "A")

	ix, err := core.BuildIndex(g)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	for i := 0; i < ix.Len(); i++ {
		fmt.Printf("%d %s label=%d degree=%d\n", i, ix.ID(i), ix.Label(i), ix.Degree(i))
	}
	// Output:
	// 0 A label=2 degree=2
	// 1 B label=1 degree=2
	// 2 C label=1 degree=2
}
