package counters

import "sync/atomic"

// ElapsedCounter tracks the distribution of elapsed durations between paired
// Begin/End calls: count, total, min, max, running mean and variance.
//
// One span may be outstanding per instance. A second Begin before End or
// Cancel overwrites the outstanding start timestamp and the first span's
// measurement is discarded; overlapping spans against one counter should use
// Timer with SetElapsed instead.
type ElapsedCounter struct {
	header
	clock Clock

	agg   aggregate
	total atomic.Uint64
	min   atomic.Uint64
	max   atomic.Uint64

	// runningStart holds the outstanding span's start timestamp encoded as
	// start+1; 0 is the "no span in flight" sentinel, which keeps a genuine
	// zero timestamp representable.
	runningStart atomic.Uint64
}

// NewElapsedCounter returns an ElapsedCounter with the given name. A nil
// clock selects SystemClock.
func NewElapsedCounter(name string, clock Clock) *ElapsedCounter {
	if clock == nil {
		clock = SystemClock{}
	}
	c := &ElapsedCounter{header: header{name: name}, clock: clock}
	c.min.Store(noSample)
	return c
}

// Begin records the start of a span. Skipped when the clock reports time
// unavailable.
func (c *ElapsedCounter) Begin() {
	now := c.clock.Now()
	if now == 0 {
		return
	}
	c.runningStart.Store(now + 1)
}

// End closes the outstanding span and folds its duration into the
// distribution. A no-op when no span is outstanding (End without Begin, or
// after Cancel). A negative duration cannot occur with a monotonic clock and
// is clamped to zero rather than wrapped.
func (c *ElapsedCounter) End() {
	start := c.runningStart.Swap(0)
	if start == 0 {
		return
	}
	now := c.clock.Now()
	if now == 0 {
		return
	}
	c.record(subSaturating(now, start-1))
}

// SetElapsed folds an externally measured duration (nanoseconds) into the
// distribution, bypassing Begin/End. Zero means "no observation" and is
// ignored.
func (c *ElapsedCounter) SetElapsed(elapsed uint64) {
	if elapsed == 0 {
		return
	}
	c.record(elapsed)
}

// record commits one sample: the dependent triple first, then the
// independent lock-free extremes and total.
func (c *ElapsedCounter) record(elapsed uint64) {
	c.agg.observe(float64(elapsed))
	casMin(&c.min, elapsed)
	casMax(&c.max, elapsed)
	addSaturating(&c.total, elapsed)
}

// Cancel aborts the outstanding span without recording anything. Benign when
// no span is outstanding.
func (c *ElapsedCounter) Cancel() { c.runningStart.Store(0) }

// Reset restores the counter to its just-constructed state.
func (c *ElapsedCounter) Reset() {
	c.agg.reset()
	c.total.Store(0)
	c.min.Store(noSample)
	c.max.Store(0)
	c.runningStart.Store(0)
}

// Snapshot returns a consistent view of the distribution. Count, Mean and
// Variance are read as one unit.
func (c *ElapsedCounter) Snapshot() Snapshot {
	n, mean, m2 := c.agg.read()
	s := Snapshot{
		Count:    n,
		Total:    c.total.Load(),
		Max:      c.max.Load(),
		Mean:     mean,
		Variance: variance(n, m2),
	}
	if mn := c.min.Load(); mn != noSample {
		s.Min = mn
	}
	return s
}

// Increment is a no-op for ElapsedCounter.
func (c *ElapsedCounter) Increment() {}

// Add is a no-op for ElapsedCounter.
func (c *ElapsedCounter) Add(uint64) {}

// SetCount is a no-op for ElapsedCounter.
func (c *ElapsedCounter) SetCount(uint64) {}
