package taskq

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"

	lg "github.com/Andrej220/go-utils/zlog"
	"go.uber.org/multierr"
)

// Queue admits submitted tasks for execution under a concurrency cap,
// always preferring the highest-priority pending task.
//
// Any number of goroutines may call Submit; exactly one goroutine at a
// time may call Drive.
type Queue[T any] struct {
	// OnAdmit, if set, is called when a task is handed to the executor,
	// inside the admission phase. It must be lightweight and non-blocking.
	OnAdmit func(*Task[T])

	// OnComplete, if set, is called after a finished execution's slot is
	// reclaimed, with the execution outcome. It must be lightweight and
	// non-blocking.
	OnComplete func(*Task[T], error)

	mu      sync.Mutex
	pending pendingStore[T]
	running *runningSet[T]
	ids     map[string]struct{} // pending + running
	exec    Executor[T]
	opts    Options
	driving atomic.Bool
}

// New builds a queue around the supplied executor.
func New[T any](exec Executor[T], opts Options) (*Queue[T], error) {
	if exec == nil {
		return nil, ErrNilExecutor
	}
	opts.FillDefaults()
	return &Queue[T]{
		pending: makeStore[T](opts.Store),
		running: newRunningSet[T](opts.MaxConcurrent),
		ids:     make(map[string]struct{}),
		exec:    exec,
		opts:    opts,
	}, nil
}

// Submit adds a task to the pending store. It never blocks on executions;
// a submission lands either before an admission scan starts or after it
// finishes, never mid-scan.
//
// The task id must not collide with a task currently pending or running.
// Ids of finished tasks may be reused.
func (q *Queue[T]) Submit(ctx context.Context, task *Task[T]) error {
	if task == nil {
		return ErrNilTask
	}
	q.mu.Lock()
	defer q.mu.Unlock()

	if _, dup := q.ids[task.ID]; dup {
		return fmt.Errorf("%w: %s", ErrDuplicateID, task.ID)
	}
	q.ids[task.ID] = struct{}{}
	q.pending.Insert(task)
	q.opts.Metrics.IncSubmitted()
	q.opts.Metrics.SetPending(int64(q.pending.Len()))

	lg.FromContext(ctx).Info("task submitted",
		lg.String("task", task.Name),
		lg.String("id", task.ID),
		lg.Int("priority", task.Priority),
		lg.Int("pending", q.pending.Len()),
	)
	return nil
}

// Drive runs the scheduling loop until both the pending store and the
// running set are empty, then returns the aggregate of all execution
// failures observed along the way. A queue with nothing to do returns
// immediately.
//
// Drive has no cancellation point; ctx is used for logging only. See the
// package documentation for the hung-handle caveat.
func (q *Queue[T]) Drive(ctx context.Context) error {
	if !q.driving.CompareAndSwap(false, true) {
		return ErrDriveInProgress
	}
	defer q.driving.Store(false)

	logger := lg.FromContext(ctx)
	var errs error

	for {
		// Admission phase: fill free slots from the pending store.
		// The whole scan runs under the mutex, so submissions only
		// interleave at phase boundaries.
		q.mu.Lock()
		for q.running.Size() < q.opts.MaxConcurrent && q.pending.Len() > 0 {
			task, err := q.pending.PopHighest()
			if err != nil {
				q.mu.Unlock()
				panic("taskq: pending store drained mid-admission: " + err.Error())
			}
			h := q.exec(ctx, task)
			q.running.Admit(task, h)
			q.opts.Metrics.IncAdmitted()
			q.reportAdmit(task)
			logger.Info("task admitted",
				lg.String("task", task.Name),
				lg.Int("priority", task.Priority),
				lg.Int("running", q.running.Size()),
			)
		}
		q.opts.Metrics.SetPending(int64(q.pending.Len()))
		idle := q.running.Empty() && q.pending.Len() == 0
		q.mu.Unlock()

		if idle {
			return errs
		}

		// Wait phase: outside the mutex so producers keep submitting
		// while executions are outstanding. The running set is never
		// empty here: not idle, and the admission phase just moved any
		// pending task into a free slot.
		ids := q.running.WaitAny()

		q.mu.Lock()
		for _, id := range ids {
			task, err := q.running.Remove(id)
			delete(q.ids, id)
			q.opts.Metrics.IncCompleted()
			q.reportComplete(task, err)
			if err != nil {
				q.opts.Metrics.IncFailed()
				errs = multierr.Append(errs, fmt.Errorf("task %s: %w", id, err))
				logger.Error("task failed",
					lg.String("task", task.Name),
					lg.Any("error", err),
				)
			} else {
				logger.Info("task completed", lg.String("task", task.Name))
			}
		}
		q.mu.Unlock()
	}
}

// PendingCount returns the number of tasks waiting for admission.
func (q *Queue[T]) PendingCount() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.pending.Len()
}

// RunningCount returns the number of in-flight executions.
func (q *Queue[T]) RunningCount() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.running.Size()
}
