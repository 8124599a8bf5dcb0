package benchmark_test

import (
	"context"
	"testing"

	"github.com/hupe1980/photonkd"
	"github.com/hupe1980/photonkd/testutil"
)

// ============================================================================
// Benchmark Configuration
// ============================================================================

// Standard photon map sizes.
const (
	sizeSmall  = 10_000  // Quick iteration
	sizeMedium = 100_000 // Default CI
	sizeLarge  = 500_000 // Production-scale caustic map
)

// Seed for deterministic benchmarks - enables reproducible comparisons.
const benchSeed = 42

// ============================================================================
// Benchmark Helpers
// ============================================================================

// scenePoints returns photons clustered around a handful of light hot spots,
// which is closer to a real photon map than a uniform cloud.
func scenePoints(n int) []photonkd.Point {
	return testutil.NewRNG(benchSeed).ClusteredPoints(n, 16, 0.25)
}

func buildTree(b *testing.B, points []photonkd.Point, opts ...photonkd.Option) *photonkd.Tree {
	b.Helper()
	tree, err := photonkd.Build(context.Background(), points, opts...)
	if err != nil {
		b.Fatal(err)
	}
	return tree
}
