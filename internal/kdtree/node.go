package kdtree

// Node is a tree node. It stores one point and splits its children on Axis.
type Node struct {
	Position Point
	Axis     Axis
	// Divider equals Position.Coord(Axis).
	Divider float64

	Left, Right *Node

	// Size is the number of nodes in the subtree, tombstones included.
	Size int
	// Exists is false once the point has been deleted.
	Exists bool
	// DeleteCount is the number of tombstones in the subtree.
	DeleteCount int
}

func newLeaf(p Point) *Node {
	return &Node{
		Position: p,
		Axis:     AxisX,
		Divider:  p.X,
		Size:     1,
		Exists:   true,
	}
}

func (n *Node) size() int {
	if n == nil {
		return 0
	}
	return n.Size
}

func (n *Node) deleteCount() int {
	if n == nil {
		return 0
	}
	return n.DeleteCount
}

// child returns a pointer to the child slot p is routed to.
func (n *Node) child(p Point) **Node {
	if p.Coord(n.Axis) < n.Divider {
		return &n.Left
	}
	return &n.Right
}

func (a Accounting) recount(n *Node) {
	if a == AccountingLegacy {
		n.Size = n.Left.size() + n.Right.size()
		return
	}
	n.Size = 1 + n.Left.size() + n.Right.size()
}

func (a Accounting) recountDeleted(n *Node) {
	own := 0
	if a == AccountingExact && !n.Exists {
		own = 1
	}
	n.DeleteCount = own + n.Left.deleteCount() + n.Right.deleteCount()
}
