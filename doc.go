// Package photonkd provides a self-balancing three-dimensional KD-tree for
// photon maps.
//
// A photon map stores the points where light paths hit surfaces. Renderers
// add photons as they are traced and discard them as they age out, so the
// tree has to stay balanced under long runs of insertions and deletions.
// photonkd keeps it balanced with scapegoat-style partial rebuilds: when one
// child of a node holds more than alpha of its subtree, or when more than
// alpha of the subtree is tombstoned, that subtree alone is flattened and
// rebuilt around the median of its widest axis.
//
// # Quick Start
//
//	tree, err := photonkd.Build(ctx, photons)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	tree.Insert(photonkd.Point{X: 1, Y: 2, Z: 3, Phi: 0.5, Theta: 1.2})
//	found, err := tree.Delete(photonkd.Point{X: 1, Y: 2, Z: 3})
//
// Deletion is lazy: the matching node is tombstoned and stays in place until
// a rebuild of an enclosing subtree drops it. Points compare equal when their
// positions agree within Tolerance; direction angles are payload.
//
// # Configuration
//
//	tree, err := photonkd.New(
//	    photonkd.WithAlpha(0.7),
//	    photonkd.WithSplitPolicy(photonkd.SplitLowerMedian),
//	    photonkd.WithLogger(photonkd.NewJSONLogger(slog.LevelDebug)),
//	)
//
// # Snapshots
//
// A tree can be persisted to any blobstore.BlobStore and restored later:
//
//	store := blobstore.NewLocalStore("./maps")
//	err := tree.Save(ctx, store, "caustics.pkd")
//	restored, err := photonkd.Load(ctx, store, "caustics.pkd")
//
// Snapshots hold the live photons only. Load rebuilds a balanced tree.
//
// # Concurrency
//
// A Tree is single-writer and does no internal locking. Bulk builds may use
// several goroutines (see WithParallelBuild) but always join before
// returning.
package photonkd
