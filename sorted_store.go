package taskq

import "sort"

const initialStoreCapacity = 64

// sortedStore keeps pending tasks in a slice re-sorted on every insert.
//
// The stable sort preserves submission order among equal priorities, so no
// secondary key is needed. O(n log n) per insert is perfectly adequate for
// small pending sets; heapStore is the better fit for large ones.
type sortedStore[T any] struct {
	tasks []*Task[T]
}

func newSortedStore[T any]() *sortedStore[T] {
	return &sortedStore[T]{tasks: make([]*Task[T], 0, initialStoreCapacity)}
}

func (s *sortedStore[T]) Insert(task *Task[T]) {
	s.tasks = append(s.tasks, task)
	sort.SliceStable(s.tasks, func(i, j int) bool {
		return s.tasks[i].Priority > s.tasks[j].Priority
	})
}

func (s *sortedStore[T]) PopHighest() (*Task[T], error) {
	if len(s.tasks) == 0 {
		return nil, ErrEmptyStore
	}
	task := s.tasks[0]
	copy(s.tasks, s.tasks[1:])
	s.tasks[len(s.tasks)-1] = nil // release for GC
	s.tasks = s.tasks[:len(s.tasks)-1]
	return task, nil
}

func (s *sortedStore[T]) Len() int { return len(s.tasks) }
