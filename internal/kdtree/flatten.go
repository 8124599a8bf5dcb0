package kdtree

// Flatten returns the live points of the tree in post-order (left subtree,
// right subtree, node). Tombstoned points are skipped.
func Flatten(root *Node) []Point {
	return AppendLive(nil, root)
}

// AppendLive appends the live points of root to dst in the order used by
// Flatten.
func AppendLive(dst []Point, root *Node) []Point {
	if root == nil {
		return dst
	}
	dst = AppendLive(dst, root.Left)
	dst = AppendLive(dst, root.Right)
	if root.Exists {
		dst = append(dst, root.Position)
	}
	return dst
}

func countNodes(n *Node) int {
	if n == nil {
		return 0
	}
	return 1 + countNodes(n.Left) + countNodes(n.Right)
}
