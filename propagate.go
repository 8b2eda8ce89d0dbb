package rtree

// Propagator forwards index operations to copies of an index held elsewhere,
// such as by other peers of a distributed layer. The RTree never calls a
// Propagator itself; a layer that owns both decides when to propagate.
type Propagator interface {
	PropagateInsert(e Entry) error
	PropagateDelete(e Entry) (bool, error)
	PropagateSearch(bb Box) ([]Entry, error)
}

// Replica is a Propagator that applies operations to another RTree in the
// same process.
type Replica struct {
	tree *RTree
}

var _ Propagator = (*Replica)(nil)

// NewReplica gives a Propagator backed by t.
func NewReplica(t *RTree) *Replica {
	return &Replica{tree: t}
}

// PropagateInsert implements Propagator.
func (r *Replica) PropagateInsert(e Entry) error {
	return r.tree.Insert(e)
}

// PropagateDelete implements Propagator.
func (r *Replica) PropagateDelete(e Entry) (bool, error) {
	return r.tree.Delete(e)
}

// PropagateSearch implements Propagator.
func (r *Replica) PropagateSearch(bb Box) ([]Entry, error) {
	return r.tree.Search(bb)
}
