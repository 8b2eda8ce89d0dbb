package rtree

import "container/heap"

// PrioritySearch iterates over the entries in the RTree in priority order of
// distance from the input box (shortest distance first using the Euclidean
// metric). The callback is called for every entry iterated over. If an error
// is returned from the callback, then iteration stops immediately. Any error
// returned from the callback is returned by PrioritySearch, except for the
// case where the special Stop sentinel error is returned (in which case nil
// will be returned from PrioritySearch).
func (t *RTree) PrioritySearch(bb Box, callback func(Entry) error) error {
	if err := t.validateBox(bb); err != nil {
		return err
	}

	queue := itemQueue{origin: bb}
	enqueueNode := func(n *Node) {
		if n.isLeaf {
			for _, e := range n.entries {
				heap.Push(&queue, queueItem{box: pointBox(e.Coordinates()), entry: e})
			}
			return
		}
		for _, c := range n.children {
			if c != nil && !isEmpty(c.box) {
				heap.Push(&queue, queueItem{box: c.box, node: c})
			}
		}
	}

	enqueueNode(t.root)
	for queue.Len() > 0 {
		nearest := heap.Pop(&queue).(queueItem)
		if nearest.node != nil {
			enqueueNode(nearest.node)
			continue
		}
		if err := callback(nearest.entry); err != nil {
			if err == Stop {
				return nil
			}
			return err
		}
	}
	return nil
}

// queueItem is either a node still to be expanded or an entry ready to be
// visited.
type queueItem struct {
	box   Box
	node  *Node
	entry Entry
}

type itemQueue struct {
	items  []queueItem
	origin Box
}

func (q *itemQueue) Len() int {
	return len(q.items)
}

func (q *itemQueue) Less(i int, j int) bool {
	return squaredDistance(q.items[i].box, q.origin) < squaredDistance(q.items[j].box, q.origin)
}

func (q *itemQueue) Swap(i int, j int) {
	q.items[i], q.items[j] = q.items[j], q.items[i]
}

func (q *itemQueue) Push(x interface{}) {
	q.items = append(q.items, x.(queueItem))
}

func (q *itemQueue) Pop() interface{} {
	item := q.items[len(q.items)-1]
	q.items = q.items[:len(q.items)-1]
	return item
}
