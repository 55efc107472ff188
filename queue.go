package shaper

import "container/heap"

// runIterator is the shared contract the three concrete segmenters
// (bidiRunIterator, scriptRunIterator, fontRunIterator) satisfy so a
// single runSegmenterQueue can merge them.
type runIterator interface {
	consume() error
	endOfCurrentRun() int
	atEnd() bool
}

// runSegmenterQueue is a min-priority queue over runIterators ordered
// by end_of_current_run. No third-party priority-queue library appears
// anywhere in the retrieval pack, so this is built on container/heap,
// the same as any other idiomatic Go priority queue would be.
type runSegmenterQueue struct {
	items runIteratorHeap
}

func newRunSegmenterQueue(iters ...runIterator) *runSegmenterQueue {
	q := &runSegmenterQueue{items: append(runIteratorHeap{}, iters...)}
	heap.Init(&q.items)
	return q
}

// endOfCurrentRun returns the top iterator's end offset.
func (q *runSegmenterQueue) endOfCurrentRun() int {
	return q.items[0].endOfCurrentRun()
}

// advanceRuns implements advance_runs: pops every iterator whose end is
// at or behind the least end, consumes it, and reinserts it, until the
// top's end exceeds the least end. Returns false once the top iterator
// is at_end (at which point every iterator must be at_end).
func (q *runSegmenterQueue) advanceRuns() (bool, error) {
	if len(q.items) == 0 || q.items[0].atEnd() {
		return false, nil
	}
	leastEnd := q.items[0].endOfCurrentRun()
	for len(q.items) > 0 && q.items[0].endOfCurrentRun() <= leastEnd {
		it := heap.Pop(&q.items).(runIterator)
		if err := it.consume(); err != nil {
			return false, err
		}
		heap.Push(&q.items, it)
	}
	return true, nil
}

// runIteratorHeap implements container/heap.Interface over runIterators.
type runIteratorHeap []runIterator

func (h runIteratorHeap) Len() int { return len(h) }
func (h runIteratorHeap) Less(i, j int) bool {
	return h[i].endOfCurrentRun() < h[j].endOfCurrentRun()
}
func (h runIteratorHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

func (h *runIteratorHeap) Push(x any) { *h = append(*h, x.(runIterator)) }

func (h *runIteratorHeap) Pop() any {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]
	return item
}
