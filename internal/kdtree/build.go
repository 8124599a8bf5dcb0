package kdtree

import (
	"cmp"
	"context"
	"fmt"
	"slices"

	"golang.org/x/sync/errgroup"
)

// Build constructs a balanced tree from points. The input slice is not
// modified. It fails with ErrEmptyInput when points is empty.
func Build(points []Point, cfg Config) (*Node, error) {
	return BuildContext(context.Background(), points, cfg)
}

// BuildContext is Build with cancellation. Cancellation is only observed
// between partitions.
func BuildContext(ctx context.Context, points []Point, cfg Config) (*Node, error) {
	if len(points) == 0 {
		return nil, ErrEmptyInput
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	b := &builder{ctx: ctx, cfg: cfg}
	return b.build(slices.Clone(points))
}

type builder struct {
	ctx context.Context
	cfg Config
}

// build sorts points in place; recursive calls own disjoint sub-slices.
func (b *builder) build(points []Point) (*Node, error) {
	if err := b.ctx.Err(); err != nil {
		return nil, err
	}

	n := len(points)
	axis := ChooseAxis(points)
	slices.SortStableFunc(points, func(p, q Point) int {
		return cmp.Compare(p.Coord(axis), q.Coord(axis))
	})

	i := b.cfg.Split.Index(axis, n)
	node := &Node{
		Position: points[i],
		Axis:     axis,
		Divider:  points[i].Coord(axis),
		Size:     n,
		Exists:   true,
	}
	left, right := points[:i], points[i+1:]

	if len(left) > 0 && len(right) > 0 && b.fork(n) {
		var g errgroup.Group
		g.Go(func() error {
			if b.cfg.Workers != nil {
				defer b.cfg.Workers.ReleaseBackground()
			}
			var err error
			node.Left, err = b.build(left)
			return err
		})
		var err error
		node.Right, err = b.build(right)
		if werr := g.Wait(); werr != nil {
			return nil, werr
		}
		if err != nil {
			return nil, err
		}
		return node, nil
	}

	var err error
	if len(left) > 0 {
		if node.Left, err = b.build(left); err != nil {
			return nil, err
		}
	}
	if len(right) > 0 {
		if node.Right, err = b.build(right); err != nil {
			return nil, err
		}
	}
	return node, nil
}

func (b *builder) fork(n int) bool {
	if b.cfg.ParallelThreshold <= 0 || n < b.cfg.ParallelThreshold {
		return false
	}
	return b.cfg.Workers == nil || b.cfg.Workers.TryAcquireBackground()
}

// rebuild replaces the subtree rooted at n with a balanced one holding only
// its live points. It returns nil if nothing is live.
func (c Config) rebuild(n *Node, reason RebuildReason) *Node {
	points := AppendLive(make([]Point, 0, n.Size), n)
	var root *Node
	if len(points) > 0 {
		b := &builder{ctx: context.Background(), cfg: c}
		var err error
		if root, err = b.build(points); err != nil {
			panic(fmt.Sprintf("kdtree: rebuild of %d live points: %v", len(points), err))
		}
	}
	if c.OnRebuild != nil {
		c.OnRebuild(RebuildEvent{Reason: reason, Nodes: countNodes(n), Live: len(points)})
	}
	return root
}
