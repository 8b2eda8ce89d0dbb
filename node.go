package rtree

import "fmt"

// Node is a node in a binary R-Tree. Leaf nodes hold entries, and internal
// nodes hold exactly two child nodes. Nodes are owned by the tree; the
// accessors exist for introspection only.
type Node struct {
	box      Box
	isLeaf   bool
	entries  []Entry
	children [2]*Node

	// height is the number of levels in the subtree rooted at the node; a
	// leaf has height 1.
	height int

	// parent is a back reference only. Ownership flows from the root down
	// through children.
	parent *Node
}

func newNode(numDims int, isLeaf bool) *Node {
	return &Node{box: emptyBox(numDims), isLeaf: isLeaf, height: 1}
}

// Height gives the number of levels in the subtree rooted at the node.
func (n *Node) Height() int {
	return n.height
}

func (n *Node) updateHeight() {
	h := 0
	for _, c := range n.children {
		if c != nil && c.height > h {
			h = c.height
		}
	}
	n.height = h + 1
}

// Box returns a copy of the node's bounding box.
func (n *Node) Box() Box {
	return n.box.clone()
}

// IsLeaf reports whether the node holds entries rather than children.
func (n *Node) IsLeaf() bool {
	return n.isLeaf
}

// Entries returns a copy of the entries held by a leaf.
func (n *Node) Entries() []Entry {
	es := make([]Entry, len(n.entries))
	copy(es, n.entries)
	return es
}

// Children returns the node's non-empty child slots, in slot order.
func (n *Node) Children() []*Node {
	var cs []*Node
	for _, c := range n.children {
		if c != nil {
			cs = append(cs, c)
		}
	}
	return cs
}

// Parent returns the node's parent, or nil for the root.
func (n *Node) Parent() *Node {
	return n.parent
}

func (n *Node) numChildren() int {
	var count int
	for _, c := range n.children {
		if c != nil {
			count++
		}
	}
	return count
}

// onlyChild gives the single child of a node that has exactly one.
func (n *Node) onlyChild() *Node {
	if n.numChildren() != 1 {
		panic(fmt.Sprintf("expected exactly one child, node has %d", n.numChildren()))
	}
	if n.children[0] != nil {
		return n.children[0]
	}
	return n.children[1]
}

func (n *Node) addChild(c *Node) {
	for i := range n.children {
		if n.children[i] == nil {
			n.children[i] = c
			c.parent = n
			return
		}
	}
	panic("node already has two children")
}

func (n *Node) removeChild(c *Node) {
	for i := range n.children {
		if n.children[i] == c {
			n.children[i] = nil
			c.parent = nil
			return
		}
	}
	panic("could not find child to remove")
}

// replaceChild puts c into the slot held by old, keeping the slot order.
func (n *Node) replaceChild(old, c *Node) {
	for i := range n.children {
		if n.children[i] == old {
			n.children[i] = c
			old.parent = nil
			c.parent = n
			return
		}
	}
	panic("could not find child to replace")
}

func (n *Node) clearChildren() {
	for i, c := range n.children {
		if c != nil && c.parent == n {
			c.parent = nil
		}
		n.children[i] = nil
	}
}

// tighten recalculates the smallest bounding box that fits the node's
// entries or children.
func (n *Node) tighten() {
	bb := emptyBox(len(n.box))
	if n.isLeaf {
		for _, e := range n.entries {
			bb = combine(bb, pointBox(e.Coordinates()))
		}
	} else {
		for _, c := range n.children {
			if c != nil {
				bb = combine(bb, c.box)
			}
		}
	}
	n.box = bb
}

// areaExpansion is how much the node's box would have to grow to cover bb.
func (n *Node) areaExpansion(bb Box) float64 {
	return enlargement(n.box, bb)
}

// underflows reports whether a non-root node holds too little to stay in the
// tree.
func (n *Node) underflows(minEntries int) bool {
	if n.isLeaf {
		return len(n.entries) < minEntries
	}
	return n.numChildren() < 1
}

// collectEntries appends every entry in the subtree rooted at n to dst.
func (n *Node) collectEntries(dst []Entry) []Entry {
	if n.isLeaf {
		return append(dst, n.entries...)
	}
	for _, c := range n.children {
		if c != nil {
			dst = c.collectEntries(dst)
		}
	}
	return dst
}

func (n *Node) removeEntryAt(i int) {
	copy(n.entries[i:], n.entries[i+1:])
	n.entries[len(n.entries)-1] = nil
	n.entries = n.entries[:len(n.entries)-1]
}
