package kdtree

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvariant is wrapped by every violation reported by Validate.
var ErrInvariant = errors.New("kdtree invariant violated")

// Stats summarizes a tree.
type Stats struct {
	Nodes      int
	Live       int
	Tombstones int
	Depth      int
}

// Measure walks the tree and returns its statistics.
func Measure(root *Node) Stats {
	var s Stats
	measure(root, 1, &s)
	return s
}

func measure(n *Node, depth int, s *Stats) {
	if n == nil {
		return
	}
	s.Nodes++
	if n.Exists {
		s.Live++
	} else {
		s.Tombstones++
	}
	s.Depth = max(s.Depth, depth)
	measure(n.Left, depth+1, s)
	measure(n.Right, depth+1, s)
}

// Validate checks the structural invariants of the tree: every divider
// matches its position, every point lies on the side of each ancestor's
// divider it was routed to (points equal to a divider may sit on either side
// after a build) and, under AccountingExact, sizes and tombstone counts are
// exact.
func Validate(root *Node, cfg Config) error {
	lo := [3]float64{math.Inf(-1), math.Inf(-1), math.Inf(-1)}
	hi := [3]float64{math.Inf(1), math.Inf(1), math.Inf(1)}
	return validate(root, cfg.Accounting, lo, hi)
}

func validate(n *Node, acct Accounting, lo, hi [3]float64) error {
	if n == nil {
		return nil
	}
	if n.Divider != n.Position.Coord(n.Axis) {
		return fmt.Errorf("%w: node %v divider %g does not match axis %v", ErrInvariant, n.Position, n.Divider, n.Axis)
	}
	for _, a := range [...]Axis{AxisX, AxisY, AxisZ} {
		if c := n.Position.Coord(a); c < lo[a] || c > hi[a] {
			return fmt.Errorf("%w: node %v outside [%g, %g] on %v", ErrInvariant, n.Position, lo[a], hi[a], a)
		}
	}

	if acct == AccountingExact {
		if want := 1 + n.Left.size() + n.Right.size(); n.Size != want {
			return fmt.Errorf("%w: node %v size %d, want %d", ErrInvariant, n.Position, n.Size, want)
		}
		own := 0
		if !n.Exists {
			own = 1
		}
		if want := own + n.Left.deleteCount() + n.Right.deleteCount(); n.DeleteCount != want {
			return fmt.Errorf("%w: node %v delete count %d, want %d", ErrInvariant, n.Position, n.DeleteCount, want)
		}
	}

	leftHi := hi
	leftHi[n.Axis] = n.Divider
	if err := validate(n.Left, acct, lo, leftHi); err != nil {
		return err
	}
	rightLo := lo
	rightLo[n.Axis] = n.Divider
	return validate(n.Right, acct, rightLo, hi)
}
