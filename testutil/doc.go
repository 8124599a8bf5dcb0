// Package testutil provides testing utilities for photonkd.
//
// This package is intended for use in tests and benchmarks only.
// It provides seeded generators for photon samples and helpers for comparing
// point sets.
//
// # Random Photon Generation
//
//	rng := testutil.NewRNG(seed)
//	points := rng.UniformPoints(1000, -1, 1)   // uniform cube
//	points = rng.GaussianPoints(1000, 5, 1, 1) // spread mostly along x
//	points = rng.ClusteredPoints(1000, 8, 0.01)
//
// # Comparing Point Sets
//
//	ok := testutil.SamePoints(kdtree.Flatten(root), points)
package testutil
