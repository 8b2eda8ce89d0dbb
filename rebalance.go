package rtree

// rebalance restores the height balance of an internal node whose subtrees
// are each balanced already: afterwards the heights of its two children
// differ by at most one. The node keeps its place in the tree, and its box and
// height are recalculated. Leaves are only re-tightened.
//
// Children of an R-Tree node are unordered, so a rotation is free to pair any
// two of the three subtrees involved. The taller grandchild is lifted next to
// the node, and the other grandchild is paired with the short side.
func (t *RTree) rebalance(n *Node) {
	if n.isLeaf || n.numChildren() != 2 {
		n.updateHeight()
		n.tighten()
		return
	}

	tall, short := n.children[0], n.children[1]
	if tall.height < short.height {
		tall, short = short, tall
	}
	if tall.height-short.height <= 1 {
		n.updateHeight()
		n.tighten()
		return
	}

	// tall is at least two levels higher than a leaf, so it is internal.
	lift, keep := tall.children[0], tall.children[1]
	if lift.height < keep.height ||
		(lift.height == keep.height && enlargement(short.box, lift.box) < enlargement(short.box, keep.box)) {
		// When heights tie, the grandchild nearer to the short side stays
		// paired with it.
		lift, keep = keep, lift
	}

	tall.removeChild(lift)
	n.replaceChild(short, lift)
	tall.addChild(short)
	t.rebalance(tall)

	n.updateHeight()
	n.tighten()
	t.logger.Debug("subtree rotated", "height", n.height)
}

// refreshUpwards rebalances and tightens every node from n to the root.
func (t *RTree) refreshUpwards(n *Node) {
	for {
		t.rebalance(n)
		if n == t.root {
			return
		}
		if n.parent == nil {
			panic("non-root node has no parent")
		}
		n = n.parent
	}
}
