package taskq

import (
	"sync/atomic"
)

// MetricsPolicy defines hooks used by the queue to report queueing and
// execution activity.
//
// Implementations must be safe for concurrent use.
// All methods are expected to be lightweight and non-blocking.
type MetricsPolicy interface {

	// IncSubmitted increments the submitted tasks counter.
	IncSubmitted()

	// IncAdmitted increments the admitted tasks counter.
	IncAdmitted()

	// IncCompleted increments the finished executions counter.
	IncCompleted()

	// IncFailed increments the failed executions counter.
	IncFailed()

	// SetPending records the current pending-store size.
	SetPending(n int64)
}

// AtomicMetrics is a lock-free metrics implementation backed by atomics.
//
// Writes are optimized for hot paths.
// Reads are intended for cold-path observation.
type AtomicMetrics struct {
	submitted atomic.Uint64
	admitted  atomic.Uint64
	completed atomic.Uint64
	failed    atomic.Uint64

	_ [32]byte // padding to avoid false sharing

	pending atomic.Int64
}

// Submitted returns the total number of submitted tasks.
func (m *AtomicMetrics) Submitted() uint64 { return m.submitted.Load() }

// Admitted returns the total number of admitted tasks.
func (m *AtomicMetrics) Admitted() uint64 { return m.admitted.Load() }

// Completed returns the total number of finished executions,
// failures included.
func (m *AtomicMetrics) Completed() uint64 { return m.completed.Load() }

// Failed returns the total number of failed executions.
func (m *AtomicMetrics) Failed() uint64 { return m.failed.Load() }

// Pending returns the last recorded pending-store size.
func (m *AtomicMetrics) Pending() int64 { return m.pending.Load() }

func (m *AtomicMetrics) IncSubmitted()      { m.submitted.Add(1) }
func (m *AtomicMetrics) IncAdmitted()       { m.admitted.Add(1) }
func (m *AtomicMetrics) IncCompleted()      { m.completed.Add(1) }
func (m *AtomicMetrics) IncFailed()         { m.failed.Add(1) }
func (m *AtomicMetrics) SetPending(n int64) { m.pending.Store(n) }

//------------- NoopMetrics ----------------------------------

// NoopMetrics is a MetricsPolicy implementation that discards
// all metric updates.
type NoopMetrics struct{}

func (m *NoopMetrics) IncSubmitted()    {}
func (m *NoopMetrics) IncAdmitted()     {}
func (m *NoopMetrics) IncCompleted()    {}
func (m *NoopMetrics) IncFailed()       {}
func (m *NoopMetrics) SetPending(int64) {}
