package rtree

import "reflect"

// Entry is an item stored in the RTree. The tree treats entries as opaque and
// immutable; it only ever reads their coordinates, which must have one value
// per dimension of the tree.
type Entry interface {
	Coordinates() []float64
}

// Equaler can be implemented by an Entry to control how Delete locates it.
type Equaler interface {
	Equal(other Entry) bool
}

// Point is an Entry made of nothing but its coordinates. Two points are equal
// when their coordinates are.
type Point []float64

// Coordinates implements Entry.
func (p Point) Coordinates() []float64 {
	return p
}

// Equal implements Equaler.
func (p Point) Equal(other Entry) bool {
	q, ok := other.(Point)
	if !ok || len(p) != len(q) {
		return false
	}
	for i := range p {
		if p[i] != q[i] {
			return false
		}
	}
	return true
}

// entriesEqual prefers the entry's own notion of equality, then falls back to
// == for comparable types and deep equality otherwise.
func entriesEqual(a, b Entry) bool {
	if eq, ok := a.(Equaler); ok {
		return eq.Equal(b)
	}
	ta, tb := reflect.TypeOf(a), reflect.TypeOf(b)
	if ta != tb {
		return false
	}
	if ta == nil || ta.Comparable() {
		return a == b
	}
	return reflect.DeepEqual(a, b)
}
