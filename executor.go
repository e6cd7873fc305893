package taskq

import (
	"context"
	"fmt"
	"sync"
)

// Handle represents one in-flight execution.
//
// It fires exactly once, when the execution finishes. The outcome, nil on
// success, is available through Err after Done is closed.
type Handle struct {
	done chan struct{}
	once sync.Once
	err  error
}

// NewHandle returns an unfired handle. Custom executors complete it by
// calling Complete; everything else should prefer the Exec adapter.
func NewHandle() *Handle {
	return &Handle{done: make(chan struct{})}
}

// Complete fires the handle with the execution outcome.
// Only the first call has effect.
func (h *Handle) Complete(err error) {
	h.once.Do(func() {
		h.err = err
		close(h.done)
	})
}

// Done returns a channel closed when the execution finishes.
func (h *Handle) Done() <-chan struct{} { return h.done }

// Err returns the execution outcome. It returns nil while the handle has
// not fired yet, so callers should observe Done first.
func (h *Handle) Err() error {
	select {
	case <-h.done:
		return h.err
	default:
		return nil
	}
}

// Executor turns a task into a running execution. It must return promptly;
// the work itself runs behind the returned handle. The executor side owns
// the task's completion flag.
type Executor[T any] func(ctx context.Context, task *Task[T]) *Handle

// ExecFunc is the plain form of task work, adapted into an Executor by Exec.
type ExecFunc[T any] func(ctx context.Context, task *Task[T]) error

// Exec adapts fn into an Executor that runs fn on its own goroutine,
// marks the task completed, and fires the handle when fn returns.
// Panics inside fn are recovered and reported as execution failures.
func Exec[T any](fn ExecFunc[T]) Executor[T] {
	return func(ctx context.Context, task *Task[T]) *Handle {
		h := NewHandle()
		go func() {
			defer func() {
				if r := recover(); r != nil {
					task.MarkCompleted()
					h.Complete(fmt.Errorf("taskq: task %s panicked: %v", task.ID, r))
				}
			}()
			err := fn(ctx, task)
			task.MarkCompleted()
			h.Complete(err)
		}()
		return h
	}
}
