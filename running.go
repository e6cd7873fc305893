package taskq

// runningSet tracks in-flight executions by task id.
//
// The maps are touched only by the driver goroutine, under the queue
// mutex; per-handle watcher goroutines communicate exclusively through
// the buffered completions channel. The set does not enforce the
// concurrency cap itself, that is the driver's job, which keeps this
// component reusable with any admission policy.
type runningSet[T any] struct {
	handles     map[string]*Handle
	tasks       map[string]*Task[T]
	completions chan string
}

// newRunningSet sizes the completion buffer to the concurrency cap, so a
// watcher can always deliver without blocking: at most cap executions are
// tracked at once, and each watcher sends exactly one id.
func newRunningSet[T any](capacity int) *runningSet[T] {
	return &runningSet[T]{
		handles:     make(map[string]*Handle, capacity),
		tasks:       make(map[string]*Task[T], capacity),
		completions: make(chan string, capacity),
	}
}

// Admit records a new in-flight execution and spawns a watcher that
// reports the id once the handle fires. The caller must have checked the
// cap before admitting.
func (r *runningSet[T]) Admit(task *Task[T], h *Handle) {
	r.handles[task.ID] = h
	r.tasks[task.ID] = task
	go func() {
		<-h.Done()
		r.completions <- task.ID
	}()
}

// WaitAny blocks until at least one tracked execution finishes, then
// returns the ids of every execution already finished at that moment.
// Calling it on an empty set is a programming error.
func (r *runningSet[T]) WaitAny() []string {
	if len(r.handles) == 0 {
		panic("taskq: WaitAny on empty running set")
	}
	ids := []string{<-r.completions}
	for {
		select {
		case id := <-r.completions:
			ids = append(ids, id)
		default:
			return ids
		}
	}
}

// Remove discards a tracked execution and returns its task and outcome.
func (r *runningSet[T]) Remove(id string) (*Task[T], error) {
	h := r.handles[id]
	task := r.tasks[id]
	delete(r.handles, id)
	delete(r.tasks, id)
	if h == nil {
		return task, nil
	}
	return task, h.Err()
}

// Size returns the number of executions currently tracked.
func (r *runningSet[T]) Size() int { return len(r.handles) }

// Empty reports whether no executions are tracked.
func (r *runningSet[T]) Empty() bool { return len(r.handles) == 0 }
