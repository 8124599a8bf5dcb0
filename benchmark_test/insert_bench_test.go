package benchmark_test

import (
	"strconv"
	"testing"

	"github.com/hupe1980/photonkd"
	"github.com/hupe1980/photonkd/testutil"
)

// ============================================================================
// Insert / Delete Benchmarks
// ============================================================================

// BenchmarkInsert measures single-insert throughput into an existing map.
func BenchmarkInsert(b *testing.B) {
	for _, alpha := range []float64{0.55, 0.6, 0.75} {
		b.Run("alpha="+strconv.FormatFloat(alpha, 'f', 2, 64), func(b *testing.B) {
			tree := buildTree(b, scenePoints(sizeSmall), photonkd.WithAlpha(alpha))
			points := testutil.NewRNG(benchSeed+1).ClusteredPoints(b.N, 16, 0.25)

			b.ReportAllocs()
			b.ResetTimer()

			for i := 0; i < b.N; i++ {
				tree.Insert(points[i])
			}

			b.StopTimer()
			b.ReportMetric(float64(b.N)/b.Elapsed().Seconds(), "photons/sec")
			b.ReportMetric(float64(tree.Stats().Rebuilds)/float64(b.N), "rebuilds/op")
		})
	}
}

// BenchmarkInsertSorted is the adversarial case: every insert lands on the
// same spine and only rebuilds keep the depth logarithmic.
func BenchmarkInsertSorted(b *testing.B) {
	tree, err := photonkd.New()
	if err != nil {
		b.Fatal(err)
	}

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		tree.Insert(photonkd.Point{X: float64(i)})
	}

	b.StopTimer()
	b.ReportMetric(float64(tree.Stats().Depth), "depth")
}

// BenchmarkDelete measures tombstoning throughput including tombstone rebuilds.
func BenchmarkDelete(b *testing.B) {
	points := scenePoints(sizeMedium)

	b.ReportAllocs()
	b.ResetTimer()

	deleted := 0
	for deleted < b.N {
		b.StopTimer()
		tree := buildTree(b, points)
		b.StartTimer()

		for _, p := range points {
			if deleted == b.N {
				break
			}
			if _, err := tree.Delete(p); err != nil {
				b.Fatal(err)
			}
			deleted++
		}
	}
}

// BenchmarkChurn alternates inserts and deletes of old photons, the steady
// state of a progressive photon mapper.
func BenchmarkChurn(b *testing.B) {
	tree := buildTree(b, scenePoints(sizeSmall))
	fresh := testutil.NewRNG(benchSeed+2).ClusteredPoints(b.N, 16, 0.25)
	window := append([]photonkd.Point(nil), tree.Points()...)

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		tree.Insert(fresh[i])
		window = append(window, fresh[i])
		if _, err := tree.Delete(window[0]); err != nil {
			b.Fatal(err)
		}
		window = window[1:]
	}

	b.StopTimer()
	s := tree.Stats()
	b.ReportMetric(float64(s.Tombstones)/float64(s.Nodes), "tombstone-ratio")
}
