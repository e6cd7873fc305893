package taskq

// pendingStore holds not-yet-admitted tasks in scheduling order.
//
// Implementations define the ordering data structure; the contract is the
// same for all of them: tasks come out in non-increasing priority order,
// and tasks of equal priority come out in insertion order.
//
// Stores are not safe for concurrent use; the queue serializes access
// through its own mutex. The interface is intentionally small so ordering
// strategies can be swapped without touching the driver loop.
type pendingStore[T any] interface {
	// Insert adds a task, preserving descending-priority order with a
	// stable FIFO tie-break among equal priorities. Capacity is
	// unbounded, so Insert cannot fail.
	Insert(task *Task[T])

	// PopHighest removes and returns the most urgent task. It returns
	// ErrEmptyStore when the store holds nothing.
	PopHighest() (*Task[T], error)

	// Len returns the number of tasks currently waiting.
	Len() int
}

func makeStore[T any](st StoreType) pendingStore[T] {
	switch st {
	case SortedStore:
		return newSortedStore[T]()
	case HeapStore:
		return newHeapStore[T]()
	default:
		return newHeapStore[T]()
	}
}
