package taskq

import "container/heap"

// entry wraps a task with the bookkeeping the heap needs: a monotone
// sequence number as the FIFO tie-break key, and the element's current
// heap position required by heap.Interface.
type entry[T any] struct {
	task  *Task[T]
	seq   uint64
	index int
}

// taskHeap — max-heap by priority, min-seq among equals
type taskHeap[T any] []*entry[T]

func (h taskHeap[T]) Len() int { return len(h) }
func (h taskHeap[T]) Less(i, j int) bool {
	if h[i].task.Priority == h[j].task.Priority {
		return h[i].seq < h[j].seq
	}
	return h[i].task.Priority > h[j].task.Priority
}
func (h taskHeap[T]) Swap(i, j int) {
	h[i], h[j] = h[j], h[i]
	h[i].index = i
	h[j].index = j
}

func (h *taskHeap[T]) Push(x any) {
	e := x.(*entry[T])
	e.index = len(*h)
	*h = append(*h, e)
}

func (h *taskHeap[T]) Pop() any {
	old := *h
	n := len(old)
	e := old[n-1]
	old[n-1] = nil
	e.index = -1
	*h = old[:n-1]
	return e
}

// heapStore keeps pending tasks in a binary max-heap.
//
// Heaps are not stable, so insertion order among equal priorities is
// preserved through the seq counter rather than position.
type heapStore[T any] struct {
	h   taskHeap[T]
	seq uint64
}

func newHeapStore[T any]() *heapStore[T] {
	s := &heapStore[T]{}
	s.h = make(taskHeap[T], 0, initialStoreCapacity)
	heap.Init(&s.h)
	return s
}

func (s *heapStore[T]) Insert(task *Task[T]) {
	s.seq++
	heap.Push(&s.h, &entry[T]{task: task, seq: s.seq})
}

func (s *heapStore[T]) PopHighest() (*Task[T], error) {
	if s.h.Len() == 0 {
		return nil, ErrEmptyStore
	}
	e := heap.Pop(&s.h).(*entry[T])
	return e.task, nil
}

func (s *heapStore[T]) Len() int { return s.h.Len() }
