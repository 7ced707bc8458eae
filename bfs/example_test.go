package bfs_test

import (
	"fmt"

	"github.com/katalvlaran/wlrefine/bfs"
	"github.com/katalvlaran/wlrefine/builder"
)

// Layers of a 3×3 grid: non-decreasing Manhattan distance, ties by ID.
func ExampleBFS() {
	g, err := builder.Build(builder.Grid(3, 3))
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	res, err := bfs.BFS(g, "0,0")
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	path, _ := res.PathTo("2,2")

	fmt.Println(res.Order)
	fmt.Println(path, res.Eccentricity())
	// Output:
	// [0,0 0,1 1,0 0,2 1,1 2,0 1,2 2,1 2,2]
	// [0,0 0,1 0,2 1,2 2,2] 4
}

// With the hub filtered out, a walk from a rim node of a wheel follows
// the rim both ways, two steps deep.
func ExampleWithFilterNeighbor() {
	g, _ := builder.Build(builder.Wheel(9))

	res, _ := bfs.BFS(g, "1",
		bfs.WithMaxDepth(2),
		bfs.WithFilterNeighbor(func(_, nbr string) bool { return nbr != builder.CenterVertexID }),
	)
	fmt.Println(res.Order)
	// Output:
	// [1 2 8 3 7]
}

// A 6-cycle and two triangles refine identically; components and
// diameter tell them apart.
func ExampleComponents() {
	hex, _ := builder.Build(builder.Cycle(6))
	tri, _ := builder.BuildGraph(nil,
		builder.Scoped("a", builder.Cycle(3)),
		builder.Scoped("b", builder.Cycle(3)),
	)

	ch, _ := bfs.Components(hex)
	ct, _ := bfs.Components(tri)
	dh, _ := bfs.Diameter(hex)
	dt, _ := bfs.Diameter(tri)
	fmt.Println(len(ch), len(ct), dh, dt)
	fmt.Println(ct)
	// Output:
	// 1 2 3 1
	// [[a0 a1 a2] [b0 b1 b2]]
}
