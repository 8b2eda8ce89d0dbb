package rtree

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func join(a, b *Node) *Node {
	n := newNode(2, false)
	n.addChild(a)
	n.addChild(b)
	n.updateHeight()
	n.tighten()
	return n
}

func TestRebalanceLiftsTallerGrandchild(t *testing.T) {
	rt, err := New(2, 1, 2)
	require.NoError(t, err)

	l1, l2 := leafWith(Point{0, 0}), leafWith(Point{1, 0})
	l3, l4 := leafWith(Point{5, 5}), leafWith(Point{6, 6})
	deep := join(l1, l2)
	tall := join(deep, l3)
	n := join(tall, l4)
	require.Equal(t, 4, n.Height())

	rt.rebalance(n)

	assert.Equal(t, 3, n.Height())
	assert.Equal(t, Box{{0, 6}, {0, 6}}, n.Box())
	require.ElementsMatch(t, []*Node{deep, tall}, n.Children())
	assert.Same(t, n, deep.Parent())
	assert.Same(t, n, tall.Parent())

	// The short side is paired with the grandchild left behind.
	assert.ElementsMatch(t, []*Node{l3, l4}, tall.Children())
	assert.Same(t, tall, l4.Parent())
	assert.Equal(t, 2, tall.Height())
	assert.Equal(t, Box{{5, 6}, {5, 6}}, tall.Box())
}

func TestRebalancePairsNearestOnHeightTie(t *testing.T) {
	rt, err := New(2, 1, 2)
	require.NoError(t, err)

	far := join(leafWith(Point{0, 0}), leafWith(Point{1, 1}))
	near := join(leafWith(Point{9, 9}), leafWith(Point{10, 10}))
	tall := join(far, near)
	short := leafWith(Point{11, 11})
	n := join(tall, short)
	require.Equal(t, 4, n.Height())

	rt.rebalance(n)

	assert.Equal(t, 4, n.Height())
	assert.ElementsMatch(t, []*Node{far, tall}, n.Children())
	assert.ElementsMatch(t, []*Node{near, short}, tall.Children())
	assert.Equal(t, Box{{9, 11}, {9, 11}}, tall.Box())
}

func TestRebalanceBalancedNodeUnchanged(t *testing.T) {
	rt, err := New(2, 1, 2)
	require.NoError(t, err)

	a := join(leafWith(Point{0, 0}), leafWith(Point{1, 1}))
	b := leafWith(Point{3, 3})
	n := join(a, b)
	rt.rebalance(n)
	assert.Equal(t, []*Node{a, b}, n.Children())
	assert.Equal(t, 3, n.Height())

	leaf := leafWith(Point{2, 2})
	rt.rebalance(leaf)
	assert.Equal(t, 1, leaf.Height())
}
