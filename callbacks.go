package taskq

// reportAdmit notifies the admission hook.
//
// Hooks run inside the admission phase, under the queue mutex.
// If no hook is registered, the event is silently dropped.
func (q *Queue[T]) reportAdmit(task *Task[T]) {
	if q.OnAdmit != nil {
		q.OnAdmit(task)
	}
}

// reportComplete notifies the completion hook with the execution outcome.
//
// Completion hooks do not influence slot accounting: a failed execution
// frees its slot exactly like a successful one.
func (q *Queue[T]) reportComplete(task *Task[T], err error) {
	if q.OnComplete != nil {
		q.OnComplete(task, err)
	}
}
