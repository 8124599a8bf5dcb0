package kdtree

// Insert adds p below root and returns the new subtree root.
//
// The point is routed by each node's axis and divider (strictly less goes
// left). On the way back up every node recounts its size, and under exact
// accounting its tombstones too, since a rebuild below may have dropped some.
// A node whose heavier child exceeds Alpha of its size is rebuilt from its
// live points. An empty tree yields a single leaf split on x.
//
// cfg is assumed to be valid.
func Insert(p Point, root *Node, cfg Config) *Node {
	if root == nil {
		return newLeaf(p)
	}

	slot := root.child(p)
	*slot = Insert(p, *slot, cfg)

	cfg.Accounting.recount(root)
	if cfg.Accounting == AccountingExact {
		cfg.Accounting.recountDeleted(root)
	}
	heavy := max(root.Left.size(), root.Right.size())
	if float64(heavy)/float64(root.Size) > cfg.Alpha {
		return cfg.rebuild(root, ReasonImbalance)
	}
	return root
}
