package taskq

import (
	"sync/atomic"
	"time"

	"github.com/google/uuid"
)

// Task represents a single unit of work submitted to the queue.
//
// Payload is opaque to the queue and passed through to the executor.
// Priority orders admission: higher values are admitted first. ID must be
// unique among tasks simultaneously known to the queue, pending or running.
type Task[T any] struct {
	ID        string
	Name      string
	Priority  int
	CreatedAt time.Time
	Payload   T

	completed atomic.Bool
}

// NewTask builds a task with a generated id and the current timestamp.
// Any int is a valid priority; higher means more urgent.
func NewTask[T any](name string, priority int, payload T) *Task[T] {
	return &Task[T]{
		ID:        uuid.NewString(),
		Name:      name,
		Priority:  priority,
		CreatedAt: time.Now(),
		Payload:   payload,
	}
}

// MarkCompleted flips the completion flag. It is called by the executor
// side once execution finishes; the queue itself never reads the flag.
func (t *Task[T]) MarkCompleted() { t.completed.Store(true) }

// Completed reports whether the task's execution has finished.
func (t *Task[T]) Completed() bool { return t.completed.Load() }
