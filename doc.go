// Package taskq provides a bounded-concurrency, priority-ordered task queue.
//
// Tasks are submitted with an integer priority and admitted for execution
// up to a configurable concurrency cap. At every admission opportunity the
// queue prefers the highest-priority pending task; among equal priorities,
// tasks run in submission order.
//
// Architecture overview
//
// The queue is composed of three small pieces:
//
//   1. Pending store
//      Holds not-yet-started tasks in scheduling order. Two strategies are
//      available: a sorted slice and a binary heap. Both preserve the
//      stable FIFO tie-break among equal priorities.
//
//   2. Running set
//      Tracks in-flight executions by task id, bounded by the concurrency
//      cap. Completions are collected in batches: the driver waits for the
//      first finished execution, then reclaims every slot that is already
//      free at that moment.
//
//   3. Driver loop (Drive)
//      Alternates between an admission phase, performed under the queue
//      mutex, and a wait phase, performed outside it so producers can keep
//      submitting while executions are outstanding.
//
// Execution model
//
// The queue never runs task code itself. A caller-supplied Executor turns a
// task into a Handle, an awaitable that fires exactly once when the
// execution finishes, successfully or not. The Exec adapter builds an
// Executor from a plain function by running it on its own goroutine.
//
// Execution failures do not stop the driver loop: a failed execution frees
// its slot like any other, and Drive returns the aggregate of all failures
// once the queue is drained.
//
// Limitations
//
// Exactly one goroutine may call Drive at a time; concurrent drivers are
// rejected. Drive has no cancellation point: if an execution handle never
// fires while the cap is saturated, the driver blocks with no way to admit
// the remaining pending work. The pending store is unbounded and applies no
// backpressure to producers.
package taskq
