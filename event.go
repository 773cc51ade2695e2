package counters

import "sync/atomic"

// EventCounter counts events. The count is monotonically non-decreasing
// except on SetCount and Reset.
type EventCounter struct {
	header
	count atomic.Uint64
}

// NewEventCounter returns an EventCounter with the given name.
func NewEventCounter(name string) *EventCounter {
	return &EventCounter{header: header{name: name}}
}

// Increment adds one event.
func (c *EventCounter) Increment() { addSaturating(&c.count, 1) }

// Add adds delta events, saturating instead of wrapping.
func (c *EventCounter) Add(delta uint64) { addSaturating(&c.count, delta) }

// SetCount overwrites the count with an externally tracked value.
func (c *EventCounter) SetCount(count uint64) { c.count.Store(count) }

// Count returns the current event count.
func (c *EventCounter) Count() uint64 { return c.count.Load() }

// Reset restores the counter to its just-constructed state.
func (c *EventCounter) Reset() { c.count.Store(0) }

// Snapshot returns the current aggregates (count only for this kind).
func (c *EventCounter) Snapshot() Snapshot {
	return Snapshot{Count: c.count.Load()}
}

// Begin is a no-op for EventCounter.
func (c *EventCounter) Begin() {}

// End is a no-op for EventCounter.
func (c *EventCounter) End() {}

// SetElapsed is a no-op for EventCounter.
func (c *EventCounter) SetElapsed(uint64) {}

// Cancel is a no-op for EventCounter.
func (c *EventCounter) Cancel() {}
