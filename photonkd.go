package photonkd

import (
	"context"
	"time"

	"github.com/hupe1980/photonkd/internal/kdtree"
	"github.com/hupe1980/photonkd/internal/snapshot"
)

// Point is a photon sample: a position and the incoming direction angles.
// Two points are equal when their positions agree within Tolerance.
type Point = kdtree.Point

// SplitPolicy selects the median index used when building a subtree.
type SplitPolicy = kdtree.SplitPolicy

const (
	// SplitLegacy picks n/2 on x and the rounded-up middle on y and z.
	SplitLegacy = kdtree.SplitLegacy
	// SplitLowerMedian picks n/2 on every axis.
	SplitLowerMedian = kdtree.SplitLowerMedian
)

// Accounting selects how subtree sizes and tombstone counts are maintained.
type Accounting = kdtree.Accounting

const (
	// AccountingExact counts every node, including the subtree root.
	AccountingExact = kdtree.AccountingExact
	// AccountingLegacy counts only the children of a node.
	AccountingLegacy = kdtree.AccountingLegacy
)

// Compression selects snapshot payload compression.
type Compression = snapshot.Compression

const (
	CompressionNone = snapshot.CompressionNone
	CompressionLZ4  = snapshot.CompressionLZ4
	CompressionZstd = snapshot.CompressionZstd
)

// RebuildReason tells why a subtree was rebuilt.
type RebuildReason = kdtree.RebuildReason

const (
	RebuildImbalance  = kdtree.ReasonImbalance
	RebuildTombstones = kdtree.ReasonTombstones
)

const (
	// DefaultAlpha is the default imbalance factor.
	DefaultAlpha = kdtree.DefaultAlpha
	// Tolerance is the absolute tolerance for coordinate matches.
	Tolerance = kdtree.Tolerance
)

// Tree is a self-balancing photon map.
//
// A Tree is not safe for concurrent use. Callers that share one across
// goroutines must serialize access.
type Tree struct {
	root     *kdtree.Node
	cfg      kdtree.Config
	opts     options
	live     int
	rebuilds int64
}

// Stats describes the current shape of a Tree.
type Stats struct {
	Nodes      int
	Live       int
	Tombstones int
	Depth      int
	// Rebuilds counts local rebuilds since the tree was created.
	Rebuilds int64
}

// New returns an empty Tree.
func New(optFns ...Option) (*Tree, error) {
	return newTree(applyOptions(defaultOptions(), optFns))
}

func newTree(o options) (*Tree, error) {
	t := &Tree{opts: o}
	cfg := o.config()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	cfg.OnRebuild = t.onRebuild
	t.cfg = cfg
	return t, nil
}

// Build creates a balanced Tree from points. The input slice is not modified.
func Build(ctx context.Context, points []Point, optFns ...Option) (*Tree, error) {
	t, err := New(optFns...)
	if err != nil {
		return nil, err
	}
	if err := t.build(ctx, points); err != nil {
		return nil, err
	}
	return t, nil
}

func (t *Tree) build(ctx context.Context, points []Point) error {
	start := time.Now()
	root, err := kdtree.BuildContext(ctx, points, t.cfg)
	t.opts.metricsCollector.RecordBuild(len(points), time.Since(start), err)
	t.opts.logger.LogBuild(ctx, len(points), err)
	if err != nil {
		return translateError(err)
	}
	t.root = root
	t.live = len(points)
	return nil
}

func (t *Tree) onRebuild(e kdtree.RebuildEvent) {
	t.rebuilds++
	t.opts.metricsCollector.RecordRebuild(string(e.Reason), e.Nodes, e.Live)
	t.opts.logger.LogRebuild(context.Background(), string(e.Reason), e.Nodes, e.Live)
}

// Insert adds p. Duplicates are stored as separate photons.
func (t *Tree) Insert(p Point) {
	start := time.Now()
	t.root = kdtree.Insert(p, t.root, t.cfg)
	t.live++
	t.opts.metricsCollector.RecordInsert(time.Since(start))
}

// Delete tombstones the first stored photon whose position matches p within
// Tolerance. It reports whether a live photon was removed. Deleting from an
// empty tree returns ErrEmptyTree.
func (t *Tree) Delete(p Point) (bool, error) {
	start := time.Now()
	root, found, err := kdtree.Delete(p, t.root, t.cfg)
	t.opts.metricsCollector.RecordDelete(found, time.Since(start), err)
	if err != nil {
		return false, translateError(err)
	}
	t.root = root
	if found {
		t.live--
	}
	return found, nil
}

// Points returns the live photons in post-order.
func (t *Tree) Points() []Point {
	return kdtree.Flatten(t.root)
}

// Len returns the number of live photons.
func (t *Tree) Len() int {
	return t.live
}

// Alpha returns the configured imbalance factor.
func (t *Tree) Alpha() float64 {
	return t.cfg.Alpha
}

// Stats walks the tree and reports its shape.
func (t *Tree) Stats() Stats {
	s := kdtree.Measure(t.root)
	return Stats{
		Nodes:      s.Nodes,
		Live:       s.Live,
		Tombstones: s.Tombstones,
		Depth:      s.Depth,
		Rebuilds:   t.rebuilds,
	}
}

// Validate checks the structural invariants of the tree.
func (t *Tree) Validate() error {
	return kdtree.Validate(t.root, t.cfg)
}
