package bfs_test

import (
	"testing"

	"github.com/katalvlaran/wlrefine/bfs"
	"github.com/katalvlaran/wlrefine/builder"
)

func BenchmarkBFS_Grid(b *testing.B) {
	const side = 100
	g := mustBuild(b, builder.Grid(side, side))

	b.ReportAllocs()
	b.SetBytes(int64(g.NodeCount() + g.EdgeCount()))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = bfs.BFS(g, "0,0")
	}
}

func BenchmarkBFS_VisitHook(b *testing.B) {
	g := mustBuild(b, builder.Path(1000))
	seen := 0
	hook := func(string, int) error { seen++; return nil }

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = bfs.BFS(g, "0", bfs.WithOnVisit(hook))
	}
	b.ReportMetric(float64(seen)/float64(b.N), "visits/op")
}

func BenchmarkComponents_RandomSparse(b *testing.B) {
	g, err := builder.Build(builder.RandomSparse(5000, 0.0002), builder.WithSeed(42))
	if err != nil {
		b.Fatal(err)
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = bfs.Components(g)
	}
}

func BenchmarkDiameter_Wheel(b *testing.B) {
	g := mustBuild(b, builder.Wheel(200))

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = bfs.Diameter(g)
	}
}
