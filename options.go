package taskq

const DefaultMaxConcurrent = 5

// StoreType selects the pending-store strategy used by the queue.
//
// The strategy determines the data structure behind priority ordering;
// observable behavior is identical for all types.
type StoreType int

const (
	HeapStore StoreType = iota

	SortedStore
)

// Options configure a Queue.
//
// All zero values are replaced with sensible defaults in FillDefaults.
type Options struct {
	// MaxConcurrent bounds the number of simultaneously running
	// executions.
	MaxConcurrent int

	// Store selects the pending-store strategy.
	Store StoreType

	// Metrics receives queueing and execution counters.
	// Nil means metrics are discarded.
	Metrics MetricsPolicy
}

func (o *Options) FillDefaults() {
	if o.MaxConcurrent <= 0 {
		o.MaxConcurrent = DefaultMaxConcurrent
	}
	if o.Metrics == nil {
		o.Metrics = &NoopMetrics{}
	}
}

func (st StoreType) String() string {
	switch st {
	case HeapStore:
		return "HeapStore"
	case SortedStore:
		return "SortedStore"
	default:
		return "Unknown"
	}
}
