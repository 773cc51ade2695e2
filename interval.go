package counters

import "sync/atomic"

// IntervalCounter tracks the distribution of gaps between successive
// Increment calls (time between arrivals).
//
// The first Increment establishes the first/last arrival timestamps only and
// contributes no interval sample; the second produces the first sample and
// seeds min, max and mean from it; later calls fold into the running
// aggregate. The event count therefore exceeds the sample count by one.
type IntervalCounter struct {
	header
	clock Clock

	// agg.count is the event count; its mean/m2 aggregate the agg.count-1
	// interval samples. The interval derivation reads and replaces timeLast
	// inside the guarded section so each gap is measured against exactly one
	// predecessor under concurrent arrivals.
	agg       aggregate
	total     atomic.Uint64
	min       atomic.Uint64
	max       atomic.Uint64
	timeFirst atomic.Uint64
	timeLast  atomic.Uint64
}

// NewIntervalCounter returns an IntervalCounter with the given name. A nil
// clock selects SystemClock.
func NewIntervalCounter(name string, clock Clock) *IntervalCounter {
	if clock == nil {
		clock = SystemClock{}
	}
	c := &IntervalCounter{header: header{name: name}, clock: clock}
	c.min.Store(noSample)
	return c
}

// Increment records an arrival and folds the interval since the previous one
// into the distribution. Skipped when the clock reports time unavailable.
func (c *IntervalCounter) Increment() {
	now := c.clock.Now()
	if now == 0 {
		return
	}

	var (
		interval uint64
		sampled  bool
	)

	c.agg.lock()
	n := c.agg.count
	if n == 0 {
		c.timeFirst.Store(now)
	} else {
		interval = subSaturating(now, c.timeLast.Load())
		x := float64(interval)
		samples := float64(n) // nth sample, seeds mean directly when n == 1
		delta := x - c.agg.mean
		c.agg.mean += delta / samples
		c.agg.m2 += delta * (x - c.agg.mean)
		sampled = true
	}
	c.timeLast.Store(now)
	c.agg.count = n + 1
	c.agg.unlock()

	if sampled {
		casMin(&c.min, interval)
		casMax(&c.max, interval)
		addSaturating(&c.total, interval)
	}
}

// Reset restores the counter to its just-constructed state.
func (c *IntervalCounter) Reset() {
	c.agg.reset()
	c.total.Store(0)
	c.min.Store(noSample)
	c.max.Store(0)
	c.timeFirst.Store(0)
	c.timeLast.Store(0)
}

// Snapshot returns a consistent view of the distribution. Count is the event
// count; Mean and Variance aggregate the Count-1 interval samples and are
// read as one unit with Count.
func (c *IntervalCounter) Snapshot() Snapshot {
	n, mean, m2 := c.agg.read()
	var samples uint64
	if n > 0 {
		samples = n - 1
	}
	s := Snapshot{
		Count:    n,
		Total:    c.total.Load(),
		Max:      c.max.Load(),
		Mean:     mean,
		Variance: variance(samples, m2),
		First:    c.timeFirst.Load(),
		Last:     c.timeLast.Load(),
	}
	if mn := c.min.Load(); mn != noSample {
		s.Min = mn
	}
	return s
}

// Begin is a no-op for IntervalCounter.
func (c *IntervalCounter) Begin() {}

// Add is a no-op for IntervalCounter.
func (c *IntervalCounter) Add(uint64) {}

// End is a no-op for IntervalCounter.
func (c *IntervalCounter) End() {}

// SetElapsed is a no-op for IntervalCounter.
func (c *IntervalCounter) SetElapsed(uint64) {}

// SetCount is a no-op for IntervalCounter.
func (c *IntervalCounter) SetCount(uint64) {}

// Cancel is a no-op for IntervalCounter.
func (c *IntervalCounter) Cancel() {}
