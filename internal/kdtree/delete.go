package kdtree

// Delete tombstones the first node on p's routing path whose position equals
// p and returns the new subtree root together with whether a live point was
// removed.
//
// Descent stops at the first coordinate match, tombstoned or not, so a
// second delete of the same point is a no-op. When nothing was removed the
// tree is left untouched. Otherwise every node on the way back up recounts
// its tombstones and is rebuilt once they exceed Alpha of its size. A rebuild
// that finds no live points returns nil.
//
// Delete fails with ErrEmptyTree when root is nil. cfg is assumed to be valid.
func Delete(p Point, root *Node, cfg Config) (*Node, bool, error) {
	if root == nil {
		return nil, false, ErrEmptyTree
	}
	root, ok := cfg.delete(p, root)
	return root, ok, nil
}

func (c Config) delete(p Point, n *Node) (*Node, bool) {
	if n == nil {
		return nil, false
	}

	if n.Position.Equal(p) {
		if !n.Exists {
			return n, false
		}
		n.Exists = false
		n.DeleteCount++
		return n, true
	}

	slot := n.child(p)
	var ok bool
	*slot, ok = c.delete(p, *slot)
	if !ok {
		return n, false
	}

	if c.Accounting == AccountingExact {
		// A rebuilt child may have shed tombstones.
		// Legacy accounting leaves Size stale here, as the lazy rule does.
		c.Accounting.recount(n)
	}
	c.Accounting.recountDeleted(n)
	if n.Size > 0 && float64(n.DeleteCount)/float64(n.Size) > c.Alpha {
		return c.rebuild(n, ReasonTombstones), true
	}
	return n, true
}
