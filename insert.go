package rtree

import "math"

// Insert adds a new entry to the RTree. Every coordinate must be finite.
func (t *RTree) Insert(e Entry) error {
	if err := t.validateEntry(e); err != nil {
		return err
	}
	t.insert(e)
	t.size++
	return nil
}

// insert places an already validated entry. It doesn't alter the size, so
// that orphans re-inserted during condensation can share it.
func (t *RTree) insert(e Entry) {
	bb := pointBox(e.Coordinates())
	leaf := t.chooseLeafNode(bb)
	leaf.entries = append(leaf.entries, e)

	var sibling *Node
	if len(leaf.entries) > t.maxEntries {
		sibling = t.splitNode(leaf)
	}
	t.adjustTree(leaf, sibling)
}

func (t *RTree) chooseLeafNode(bb Box) *Node {
	node := t.root
	for !node.isLeaf {
		var best *Node
		var bestDelta, bestArea float64
		for _, c := range node.children {
			if c == nil {
				continue
			}
			delta := c.areaExpansion(bb)
			cArea := area(c.box)
			// Area is used as a tie breaker if the enlargements are the same.
			if best == nil || delta < bestDelta || (delta == bestDelta && cArea < bestArea) {
				best, bestDelta, bestArea = c, delta, cArea
			}
		}
		if best == nil {
			panic("internal node has no children")
		}
		node = best
	}
	return node
}

// adjustTree ascends from n to the root, tightening bounding boxes and
// restoring height balance on the way. If nn is non-nil, it is the sibling
// that n was just split into, and must be attached to the tree next to n.
func (t *RTree) adjustTree(n, nn *Node) {
	n.tighten()
	if nn != nil {
		nn.tighten()
		if n == t.root {
			t.joinRoots(n, nn)
			return
		}
		parent := n.parent
		if parent == nil {
			panic("non-root node has no parent")
		}
		t.splitChildren(parent, nn)
		n = parent
	}
	t.refreshUpwards(n)
}

func (t *RTree) joinRoots(r1, r2 *Node) {
	root := newNode(t.numDims, false)
	root.addChild(r1)
	root.addChild(r2)
	root.updateHeight()
	root.tighten()
	t.root = root
	t.logger.Debug("root split", "height", root.height)
}

// splitItem is a member of the pool being divided by a split. Exactly one of
// entry and child is set.
type splitItem struct {
	box   Box
	entry Entry
	child *Node
}

// splitNode splits an overflowing leaf into two nodes. The first node
// replaces n, and the second node is newly created and returned.
func (t *RTree) splitNode(n *Node) *Node {
	pool := make([]splitItem, len(n.entries))
	for i, e := range n.entries {
		pool[i] = splitItem{box: pointBox(e.Coordinates()), entry: e}
	}
	n.entries = nil

	groupA, groupB := distribute(pool, t.minEntries)

	sibling := newNode(t.numDims, n.isLeaf)
	for _, it := range groupA {
		n.entries = append(n.entries, it.entry)
	}
	for _, it := range groupB {
		sibling.entries = append(sibling.entries, it.entry)
	}
	n.tighten()
	sibling.tighten()

	t.logger.Debug("leaf split", "entries", len(n.entries), "sibling_entries", len(sibling.entries))
	return sibling
}

// splitChildren attaches extra to an internal node that already has two
// children. The three candidates are divided in two the same way a leaf is
// split; the side with two members is grouped under a new internal node, and
// the side with a single member is attached directly. Either way the node
// ends up with exactly two children.
func (t *RTree) splitChildren(n, extra *Node) {
	if n.isLeaf || n.numChildren() != 2 {
		panic("can only split the children of a full internal node")
	}
	pool := []splitItem{
		{box: n.children[0].box, child: n.children[0]},
		{box: n.children[1].box, child: n.children[1]},
		{box: extra.box, child: extra},
	}
	n.clearChildren()
	extra.parent = nil

	groupA, groupB := distribute(pool, 1)
	n.addChild(t.group(groupA))
	n.addChild(t.group(groupB))
	n.updateHeight()
	n.tighten()

	t.logger.Debug("internal node split", "group_a", len(groupA), "group_b", len(groupB))
}

// group gives a node standing for the given children: the child itself when
// there is only one, otherwise a new internal node holding them.
func (t *RTree) group(items []splitItem) *Node {
	if len(items) == 1 {
		return items[0].child
	}
	g := newNode(t.numDims, false)
	for _, it := range items {
		g.addChild(it.child)
	}
	t.rebalance(g)
	return g
}

// distribute divides the pool into two groups, each holding at least
// minFill items. The pool must hold at least two items.
func distribute(pool []splitItem, minFill int) ([]splitItem, []splitItem) {
	s1, s2 := pickSeeds(pool)
	groupA := []splitItem{pool[s1]}
	groupB := []splitItem{pool[s2]}
	boxA, boxB := pool[s1].box.clone(), pool[s2].box.clone()

	rest := make([]splitItem, 0, len(pool)-2)
	for i, it := range pool {
		if i != s1 && i != s2 {
			rest = append(rest, it)
		}
	}

	for i, it := range rest {
		remaining := len(rest) - i
		// If a group needs every remaining item to reach the minimum, it
		// gets them all.
		if len(groupA)+remaining <= minFill {
			groupA = append(groupA, rest[i:]...)
			break
		}
		if len(groupB)+remaining <= minFill {
			groupB = append(groupB, rest[i:]...)
			break
		}

		if preferFirst(boxA, boxB, len(groupA), len(groupB), it.box) {
			groupA = append(groupA, it)
			boxA = combine(boxA, it.box)
		} else {
			groupB = append(groupB, it)
			boxB = combine(boxB, it.box)
		}
	}
	return groupA, groupB
}

// preferFirst decides which of two groups an item goes into: the one that
// needs the smaller enlargement, then the one with the smaller area, then the
// one with fewer members. Remaining ties go to the first group.
func preferFirst(boxA, boxB Box, countA, countB int, bb Box) bool {
	eA, eB := enlargement(boxA, bb), enlargement(boxB, bb)
	if eA != eB {
		return eA < eB
	}
	aA, aB := area(boxA), area(boxB)
	if aA != aB {
		return aA < aB
	}
	return countA <= countB
}

// pickSeeds finds the pair of items that are furthest apart along some axis,
// normalised by the width of the whole pool along that axis. The two indices
// returned are always distinct.
func pickSeeds(pool []splitItem) (int, int) {
	if len(pool) < 2 {
		panic("cannot pick seeds from fewer than two items")
	}
	bestSep := math.Inf(-1)
	bestLow, bestHigh := 0, 1
	for d := range pool[0].box {
		// The item with the highest lower bound.
		high := 0
		globalMin, globalMax := pool[0].box[d].Min, pool[0].box[d].Max
		for i, it := range pool {
			if it.box[d].Min > pool[high].box[d].Min {
				high = i
			}
			globalMin = math.Min(globalMin, it.box[d].Min)
			globalMax = math.Max(globalMax, it.box[d].Max)
		}
		// A different item with the lowest upper bound.
		low := -1
		for i, it := range pool {
			if i == high {
				continue
			}
			if low == -1 || it.box[d].Max < pool[low].box[d].Max {
				low = i
			}
		}

		var sep float64
		if width := globalMax - globalMin; width > 0 {
			sep = math.Abs(pool[low].box[d].Max-pool[high].box[d].Min) / width
		}
		if sep > bestSep {
			bestSep = sep
			bestLow, bestHigh = low, high
		}
	}
	return bestLow, bestHigh
}
