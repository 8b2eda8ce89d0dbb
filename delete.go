package rtree

// Delete removes a single entry equal to e from the RTree. Entries are
// compared with their Equal method if they implement Equaler, and with ==
// otherwise. The returned bool indicates whether or not the entry could be
// found and thus removed from the RTree (true indicates success). The tree is
// left untouched if it isn't found.
func (t *RTree) Delete(e Entry) (bool, error) {
	if err := t.validateEntry(e); err != nil {
		return false, err
	}

	// Find node containing entry.
	coords := e.Coordinates()
	leaf, idx := t.findLeaf(t.root, coords, e)
	if leaf == nil {
		return false, nil
	}

	leaf.removeEntryAt(idx)
	t.size--

	t.condenseTree(leaf)
	return true, nil
}

// findLeaf finds the leaf holding an entry equal to e, descending only into
// nodes whose box contains the entry's coordinates.
func (t *RTree) findLeaf(n *Node, coords []float64, e Entry) (*Node, int) {
	if n.isLeaf {
		for i, candidate := range n.entries {
			if entriesEqual(e, candidate) {
				return n, i
			}
		}
		return nil, -1
	}
	for _, c := range n.children {
		if c == nil || !containsPoint(c.box, coords) {
			continue
		}
		if leaf, i := t.findLeaf(c, coords, e); leaf != nil {
			return leaf, i
		}
	}
	return nil, -1
}

// condenseTree walks from a leaf that just lost an entry up to the root.
// Nodes that have become under-full are removed, and their entries are
// re-inserted once the walk is complete. Every other node on the way has its
// box tightened.
func (t *RTree) condenseTree(leaf *Node) {
	var orphans []Entry
	var eliminated int

	current := leaf
	for current != t.root {
		parent := current.parent
		if parent == nil {
			panic("non-root node has no parent")
		}

		if current.underflows(t.minEntries) {
			// Eliminate under-full node.
			orphans = current.collectEntries(orphans)
			parent.removeChild(current)
			eliminated++

			// The parent is left with a single child, which takes the
			// parent's place.
			current = t.shorten(parent)
			continue
		}

		// Adjust covering rectangle, and restore balance below the node.
		t.rebalance(current)
		current = parent
	}
	t.rebalance(t.root)

	if eliminated > 0 {
		t.logger.Debug("tree condensed", "eliminated", eliminated, "orphans", len(orphans))
	}

	// Reinsert orphaned entries.
	for _, e := range orphans {
		t.insert(e)
	}
}

// shorten replaces an internal node that has a single child with that child.
// The child is returned.
func (t *RTree) shorten(n *Node) *Node {
	if n.numChildren() == 0 {
		// Only reachable for a childless root.
		if n != t.root {
			panic("non-root internal node has no children")
		}
		t.root = newNode(t.numDims, true)
		return t.root
	}

	child := n.onlyChild()
	if n == t.root {
		n.removeChild(child)
		t.root = child
		t.logger.Debug("root collapsed", "leaf", child.isLeaf)
		return child
	}
	n.parent.replaceChild(n, child)
	n.children = [2]*Node{}
	return child
}
