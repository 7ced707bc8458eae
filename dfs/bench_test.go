package dfs_test

import (
	"testing"

	"github.com/katalvlaran/wlrefine/builder"
	"github.com/katalvlaran/wlrefine/dfs"
)

// BenchmarkDFS_Grid measures full traversal of a 100×100 grid.
func BenchmarkDFS_Grid(b *testing.B) {
	g, err := builder.Build(builder.Grid(100, 100))
	if err != nil {
		b.Fatal(err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := dfs.DFS(g, "", dfs.WithFullTraversal()); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkIsForest_Path measures cycle detection on a long path.
func BenchmarkIsForest_Path(b *testing.B) {
	g, err := builder.Build(builder.Path(5000))
	if err != nil {
		b.Fatal(err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := dfs.IsForest(g); err != nil {
			b.Fatal(err)
		}
	}
}
