package dijkstra_test

import (
	"testing"

	"github.com/katalvlaran/algokit/builder"
	"github.com/katalvlaran/algokit/core"
	"github.com/katalvlaran/algokit/dijkstra"
)

func BenchmarkDijkstra_Sparse(b *testing.B) {
	g, err := builder.BuildGraph(
		[]core.GraphOption{core.WithDirected(true), core.WithWeighted()},
		[]builder.BuilderOption{builder.WithSeed(3), builder.WithWeightRange(1, 100)},
		builder.RandomSparse(1000, 0.01),
	)
	if err != nil {
		b.Fatal(err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, _, err = dijkstra.Dijkstra(g, dijkstra.Source("0")); err != nil {
			b.Fatal(err)
		}
	}
}
