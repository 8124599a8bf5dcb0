package photonkd_test

import (
	"context"
	"fmt"
	"log"

	"github.com/hupe1980/photonkd"
	"github.com/hupe1980/photonkd/blobstore"
)

func Example() {
	ctx := context.Background()

	photons := []photonkd.Point{
		{X: 0, Y: 0, Z: 0},
		{X: 1, Y: 0, Z: 0},
		{X: 2, Y: 0, Z: 0},
		{X: 3, Y: 0, Z: 0},
		{X: 4, Y: 0, Z: 0},
	}

	tree, err := photonkd.Build(ctx, photons)
	if err != nil {
		log.Fatal(err)
	}

	tree.Insert(photonkd.Point{X: 5, Y: 1, Z: 0, Phi: 0.3, Theta: 1.1})

	found, err := tree.Delete(photonkd.Point{X: 2})
	if err != nil {
		log.Fatal(err)
	}

	fmt.Println(found, tree.Len())
	// Output: true 5
}

func ExampleTree_Save() {
	ctx := context.Background()
	store := blobstore.NewMemoryStore()

	tree, err := photonkd.New(photonkd.WithCompression(photonkd.CompressionZstd))
	if err != nil {
		log.Fatal(err)
	}
	for i := 0; i < 100; i++ {
		tree.Insert(photonkd.Point{X: float64(i % 10), Y: float64(i / 10)})
	}

	if err := tree.Save(ctx, store, "global.pkd"); err != nil {
		log.Fatal(err)
	}

	restored, err := photonkd.Load(ctx, store, "global.pkd")
	if err != nil {
		log.Fatal(err)
	}

	fmt.Println(restored.Len(), restored.Stats().Tombstones)
	// Output: 100 0
}

func ExampleBasicMetricsCollector() {
	metrics := &photonkd.BasicMetricsCollector{}

	tree, err := photonkd.New(photonkd.WithMetricsCollector(metrics))
	if err != nil {
		log.Fatal(err)
	}
	for i := 0; i < 10; i++ {
		tree.Insert(photonkd.Point{X: float64(i)})
	}

	stats := metrics.GetStats()
	fmt.Println(stats.InsertCount, stats.RebuildCount > 0)
	// Output: 10 true
}
