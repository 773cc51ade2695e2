package counters

// Counter is the capability shared by all counter kinds. Operations that are
// not meaningful for a kind are no-ops. All methods are safe for concurrent
// use from any number of goroutines and never panic.
type Counter interface {
	// Name returns the counter's registered name.
	Name() string

	// Begin records the start of an operation (ElapsedCounter). One span may
	// be outstanding per instance; a second Begin overwrites the first.
	Begin()

	// Increment records one event: adds 1 to an EventCounter, or records an
	// arrival and derives the interval since the previous one for an
	// IntervalCounter.
	Increment()

	// Add adds delta events to an EventCounter (saturating).
	Add(delta uint64)

	// End closes the outstanding Begin span and folds the elapsed duration
	// into the distribution. A no-op when no span is outstanding.
	End()

	// SetElapsed folds an externally measured elapsed duration (nanoseconds)
	// into the distribution, bypassing Begin/End. Zero means "no observation"
	// and is ignored.
	SetElapsed(elapsed uint64)

	// SetCount overwrites the event count (gauge-style ingestion).
	SetCount(count uint64)

	// Cancel aborts the outstanding Begin span without recording anything.
	// Benign after End has already completed.
	Cancel()

	// Reset atomically restores the counter to its just-constructed state.
	// Updates strictly before the reset's effective point are discarded.
	Reset()

	// Snapshot returns a consistent view of the aggregated values.
	Snapshot() Snapshot
}

// Snapshot is a point-in-time view of a counter's aggregates. Count, Mean and
// Variance are read as one unit: a snapshot with Count == n carries the mean
// and variance as they stood after exactly n updates. Durations are uint64
// nanoseconds; Mean and Variance are float64 nanoseconds (squared for
// Variance).
type Snapshot struct {
	// Count is the number of recorded events.
	Count uint64

	// Total is the sum of observed durations (ElapsedCounter) or intervals
	// (IntervalCounter). Zero for EventCounter.
	Total uint64

	// Min and Max are the smallest and largest observed sample. Zero when no
	// sample has been observed.
	Min uint64
	Max uint64

	// Mean is the running mean of observed samples.
	Mean float64

	// Variance is the sample variance (M2/(n-1)) of observed samples; zero
	// for fewer than two samples.
	Variance float64

	// First and Last are the timestamps of the first and most recent arrival.
	// Populated by IntervalCounter only.
	First uint64
	Last  uint64
}

// header carries static counter metadata, immutable after construction.
type header struct {
	name string
}

func (h header) Name() string { return h.name }

var (
	_ Counter = (*EventCounter)(nil)
	_ Counter = (*ElapsedCounter)(nil)
	_ Counter = (*IntervalCounter)(nil)
	_ Counter = NopCounter{}
)
