package pathfinder

import "container/heap"

// queueItem is an open cell waiting to be expanded.
type queueItem struct {
	cell         int    // Arena index of the cell
	f            int    // Priority; lower is expanded first
	seq          uint64 // Insertion order, breaks ties on f
	indexInQueue int
}

// openQueue is a min-heap on (f, seq). Equal f values come out in the order
// they were pushed.
type openQueue []*queueItem

func (q openQueue) Len() int { return len(q) }

func (q openQueue) Less(i, j int) bool {
	if q[i].f != q[j].f {
		return q[i].f < q[j].f
	}
	return q[i].seq < q[j].seq
}

func (q openQueue) Swap(i, j int) {
	q[i], q[j] = q[j], q[i]
	q[i].indexInQueue = i
	q[j].indexInQueue = j
}

func (q *openQueue) Push(x any) {
	item := x.(*queueItem)
	item.indexInQueue = len(*q)
	*q = append(*q, item)
}

func (q *openQueue) Pop() any {
	old := *q
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	item.indexInQueue = -1
	*q = old[:n-1]
	return item
}

// frontier wraps openQueue with the insertion counter.
type frontier struct {
	queue openQueue
	next  uint64
}

func (fr *frontier) push(cell, f int) *queueItem {
	item := &queueItem{cell: cell, f: f, seq: fr.next}
	fr.next++
	heap.Push(&fr.queue, item)
	return item
}

func (fr *frontier) pop() *queueItem {
	return heap.Pop(&fr.queue).(*queueItem)
}

// update changes the priority of an item already in the queue. The item
// keeps its original insertion order.
func (fr *frontier) update(item *queueItem, f int) {
	item.f = f
	heap.Fix(&fr.queue, item.indexInQueue)
}

func (fr *frontier) len() int {
	return fr.queue.Len()
}
