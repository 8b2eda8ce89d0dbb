package rtree

import (
	"errors"
	"log/slog"
)

// RTree is an in-memory R-Tree with binary fanout. Leaves hold entries, and
// every internal node holds exactly two children.
//
// An RTree is not safe for concurrent use. Search does not modify the tree,
// so callers may share it between readers as long as mutations are
// serialised against them.
type RTree struct {
	maxEntries int
	minEntries int
	numDims    int

	root   *Node
	size   int
	logger *slog.Logger
}

// New creates an empty RTree. Leaves split once they hold more than
// maxEntries entries, and non-root leaves are condensed away once they hold
// fewer than minEntries. The min must be at most half of the max.
func New(maxEntries, minEntries, numDims int, opts ...Option) (*RTree, error) {
	if err := validateConfig(maxEntries, minEntries, numDims); err != nil {
		return nil, err
	}
	o := applyOptions(opts)
	t := &RTree{
		maxEntries: maxEntries,
		minEntries: minEntries,
		numDims:    numDims,
		logger:     o.logger,
	}
	t.Clear()
	return t, nil
}

// Clear removes every entry from the tree.
func (t *RTree) Clear() {
	t.root = newNode(t.numDims, true)
	t.size = 0
}

// Root gives the root node. It must not be modified.
func (t *RTree) Root() *Node {
	return t.root
}

// Len gives the number of entries in the tree.
func (t *RTree) Len() int {
	return t.size
}

// NumDims gives the number of dimensions of the tree.
func (t *RTree) NumDims() int {
	return t.numDims
}

// Extent gives the Box that most closely bounds the RTree. If the RTree is
// empty, then false is returned.
func (t *RTree) Extent() (Box, bool) {
	if t.size == 0 {
		return nil, false
	}
	return t.root.Box(), true
}

// Stop is a special sentinel error that can be used to stop a search
// operation without any error.
var Stop = errors.New("stop")

// Search gives every entry whose coordinates lie within the given box. The
// order of the results is unspecified.
func (t *RTree) Search(bb Box) ([]Entry, error) {
	var results []Entry
	err := t.RangeSearch(bb, func(e Entry) error {
		results = append(results, e)
		return nil
	})
	return results, err
}

// RangeSearch looks for any entries in the tree that lie within the given
// bounding box. The callback is called for each found entry. If an error is
// returned from the callback then the search is terminated early. Any error
// returned from the callback is returned by RangeSearch, except for the case
// where the special Stop sentinel error is returned (in which case nil will be
// returned from RangeSearch).
func (t *RTree) RangeSearch(bb Box, callback func(Entry) error) error {
	if err := t.validateBox(bb); err != nil {
		return err
	}
	var recurse func(*Node) error
	recurse = func(n *Node) error {
		if n.isLeaf {
			for _, e := range n.entries {
				if !containsPoint(bb, e.Coordinates()) {
					continue
				}
				if err := callback(e); err != nil {
					return err
				}
			}
			return nil
		}
		for _, c := range n.children {
			// Subtrees that can't overlap the query are skipped.
			if c == nil || !overlap(c.box, bb) {
				continue
			}
			if err := recurse(c); err != nil {
				return err
			}
		}
		return nil
	}
	if err := recurse(t.root); err != nil && err != Stop {
		return err
	}
	return nil
}
