package dfs_test

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/wlrefine/core"
	"github.com/katalvlaran/wlrefine/dfs"
)

// ExampleDFS walks a square depth-first from A.
//
//	A───B
//	│   │
//	C───D
func ExampleDFS() {
	g := core.NewGraph()
	for _, id := range []string{"A", "B", "C", "D"} {
		_ = g.AddNode(id, 1)
	}
	for _, e := range [][2]string{{"A", "B"}, {"A", "C"}, {"B", "D"}, {"C", "D"}} {
		_ = g.AddEdge(e[0], e[1])
	}

	res, err := dfs.DFS(g, "A")
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(strings.Join(res.Order, " "))
	fmt.Println(res.Depth["C"])
	// Output:
	// C D B A
	// 3
}

// ExampleFindCycle reports the witness cycle of a triangle with a tail.
func ExampleFindCycle() {
	g := core.NewGraph()
	for _, id := range []string{"t", "x", "y", "z"} {
		_ = g.AddNode(id, 1)
	}
	for _, e := range [][2]string{{"t", "x"}, {"x", "y"}, {"y", "z"}, {"z", "x"}} {
		_ = g.AddEdge(e[0], e[1])
	}

	cycle, _ := dfs.FindCycle(g)
	fmt.Println(cycle)
	// Output: [x y z]
}
