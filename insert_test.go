package rtree

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pointItems(points ...Point) []splitItem {
	items := make([]splitItem, len(points))
	for i, p := range points {
		items[i] = splitItem{box: pointBox(p), entry: p}
	}
	return items
}

func TestPickSeeds(t *testing.T) {
	// Well separated along x, bunched along y.
	items := pointItems(Point{0, 0}, Point{5, 0.1}, Point{10, 0.2})
	low, high := pickSeeds(items)
	assert.Equal(t, 0, low)
	assert.Equal(t, 2, high)

	// Identical items still give two different seeds.
	items = pointItems(Point{1, 1}, Point{1, 1}, Point{1, 1})
	low, high = pickSeeds(items)
	assert.NotEqual(t, low, high)

	assert.Panics(t, func() { pickSeeds(pointItems(Point{1, 1})) })
}

func TestDistribute(t *testing.T) {
	items := pointItems(Point{0, 0}, Point{10, 10}, Point{1, 1}, Point{9, 9}, Point{0, 1})
	a, b := distribute(items, 1)
	require.Len(t, a, 3)
	require.Len(t, b, 2)
	var as, bs []Entry
	for _, it := range a {
		as = append(as, it.entry)
	}
	for _, it := range b {
		bs = append(bs, it.entry)
	}
	assert.ElementsMatch(t, []Entry{Point{0, 0}, Point{1, 1}, Point{0, 1}}, as)
	assert.ElementsMatch(t, []Entry{Point{10, 10}, Point{9, 9}}, bs)
}

func TestDistributeMinimumFill(t *testing.T) {
	// Everything is near the first seed, but the second side must still
	// end up with two items.
	items := pointItems(Point{0, 0}, Point{100, 100}, Point{1, 1}, Point{2, 2}, Point{1, 2})
	a, b := distribute(items, 2)
	assert.GreaterOrEqual(t, len(a), 2)
	assert.GreaterOrEqual(t, len(b), 2)
	assert.Equal(t, 5, len(a)+len(b))
}

func TestPreferFirstTieBreaks(t *testing.T) {
	pt := pointBox([]float64{1, 1})
	// Same enlargement (both already contain the point), smaller area wins.
	small := Box{{0, 2}, {0, 2}}
	large := Box{{0, 3}, {0, 3}}
	assert.True(t, preferFirst(small, large, 5, 1, pt))
	assert.False(t, preferFirst(large, small, 1, 5, pt))

	// Same enlargement and area, fewer members wins.
	assert.False(t, preferFirst(small, small, 3, 2, pt))
	assert.True(t, preferFirst(small, small, 2, 3, pt))
	assert.True(t, preferFirst(small, small, 2, 2, pt))
}

func TestChooseLeafPrefersSmallerEnlargement(t *testing.T) {
	rt, err := New(2, 1, 2)
	require.NoError(t, err)
	for _, p := range []Point{{0, 0}, {1, 1}, {10, 10}} {
		require.NoError(t, rt.Insert(p))
	}
	require.False(t, rt.Root().IsLeaf())

	leaf := rt.chooseLeafNode(pointBox([]float64{9, 9}))
	assert.True(t, containsPoint(leaf.box, []float64{10, 10}))
	leaf = rt.chooseLeafNode(pointBox([]float64{0.5, 0.5}))
	assert.True(t, containsPoint(leaf.box, []float64{0.5, 0.5}))
}

func TestSplitChildrenKeepsBinaryFanout(t *testing.T) {
	rt, err := New(2, 1, 2)
	require.NoError(t, err)

	a := leafWith(Point{0, 0})
	b := leafWith(Point{10, 10})
	c := leafWith(Point{11, 11})
	parent := newNode(2, false)
	parent.addChild(a)
	parent.addChild(b)
	parent.tighten()

	rt.splitChildren(parent, c)
	require.Equal(t, 2, parent.numChildren())
	assert.Equal(t, Box{{0, 11}, {0, 11}}, parent.Box())

	// b and c are close together, so they are grouped.
	var grouped *Node
	for _, child := range parent.Children() {
		assert.Same(t, parent, child.Parent())
		if child != a {
			grouped = child
		}
	}
	require.NotNil(t, grouped)
	assert.False(t, grouped.IsLeaf())
	assert.ElementsMatch(t, []*Node{b, c}, grouped.Children())

	assert.Panics(t, func() { rt.splitChildren(a, c) })
}
