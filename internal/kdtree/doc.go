// Package kdtree implements a self-balancing three-dimensional KD-tree for
// photon samples.
//
// The tree splits on the axis of largest spread, rebuilds the smallest subtree
// that violates the imbalance bound alpha (scapegoat discipline) and deletes
// lazily by tombstoning nodes until the next rebuild discards them.
//
// # Operations
//
//	root, err := kdtree.Build(points, cfg)     // bulk, balanced
//	root = kdtree.Insert(p, root, cfg)         // may rebuild a subtree
//	root, ok, err := kdtree.Delete(p, root, cfg) // tombstone, may rebuild
//
// Insert and Delete may replace the node they were called on. Callers must
// always continue with the returned root.
//
// # Concurrency
//
// Nodes carry no synchronization. A tree must have at most one writer at a
// time. Build may fork goroutines internally (see Config.ParallelThreshold)
// but joins them before returning.
package kdtree
