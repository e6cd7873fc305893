package taskq

import "errors"

var (
	// ErrEmptyStore is returned by PopHighest on an empty pending store.
	// A correctly driven queue never observes it; the driver treats it
	// as an internal invariant violation.
	ErrEmptyStore = errors.New("taskq: pending store is empty")

	// ErrDuplicateID is returned by Submit when the task id collides
	// with a task currently pending or running.
	ErrDuplicateID = errors.New("taskq: duplicate task id")

	// ErrNilTask is returned by Submit for a nil task.
	ErrNilTask = errors.New("taskq: task is nil")

	// ErrNilExecutor is returned by New when no executor is supplied.
	ErrNilExecutor = errors.New("taskq: executor is nil")

	// ErrDriveInProgress is returned by Drive while another Drive call
	// is still draining the queue.
	ErrDriveInProgress = errors.New("taskq: drive already in progress")
)
