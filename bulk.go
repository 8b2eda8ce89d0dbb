package rtree

import "sort"

// BulkLoad bulk loads multiple entries into a new R-Tree. The bulk load
// operation is optimised for creating R-Trees with minimal node overlap. This
// allows for fast searching. Every entry is validated before the tree is
// built.
func BulkLoad(maxEntries, minEntries, numDims int, entries []Entry, opts ...Option) (*RTree, error) {
	t, err := New(maxEntries, minEntries, numDims, opts...)
	if err != nil {
		return nil, err
	}
	for _, e := range entries {
		if err := t.validateEntry(e); err != nil {
			return nil, err
		}
	}

	items := make([]Entry, len(entries))
	copy(items, entries)
	t.root = t.bulkInsert(items)
	t.size = len(items)
	return t, nil
}

// bulkInsert builds the subtree for items. Groups that fit into a single leaf
// become one; anything larger is halved along its widest axis. Each half then
// has at least floor((maxEntries+1)/2) items, which is never below
// minEntries.
func (t *RTree) bulkInsert(items []Entry) *Node {
	if len(items) <= t.maxEntries {
		node := newNode(t.numDims, true)
		node.entries = items
		node.tighten()
		return node
	}

	bb := emptyBox(t.numDims)
	for _, item := range items {
		bb = combine(bb, pointBox(item.Coordinates()))
	}
	axis := 0
	for d := range bb {
		if bb[d].Length() > bb[axis].Length() {
			axis = d
		}
	}
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].Coordinates()[axis] < items[j].Coordinates()[axis]
	})

	split := len(items) / 2
	n1 := t.bulkInsert(items[:split:split])
	n2 := t.bulkInsert(items[split:])

	parent := newNode(t.numDims, false)
	parent.addChild(n1)
	parent.addChild(n2)
	t.rebalance(parent)
	return parent
}
