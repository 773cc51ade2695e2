package counters

import (
	"sync/atomic"
	"time"
)

// Clock supplies monotonic timestamps to counters: uint64 nanoseconds from an
// arbitrary fixed origin, non-decreasing across calls. A return value of 0
// means the time source is unavailable; counters skip the update in that case
// instead of recording a bogus sample.
//
// Implementations must be safe for concurrent use.
type Clock interface {
	Now() uint64
}

// clockOrigin anchors SystemClock readings. Captured once at process start so
// Now stays small, strictly positive and monotonic (time.Since uses the
// runtime monotonic reading).
var clockOrigin = time.Now()

// SystemClock reads the runtime monotonic clock. The zero value is usable.
type SystemClock struct{}

// Now returns monotonic nanoseconds since process start, always >= 1.
func (SystemClock) Now() uint64 {
	return uint64(time.Since(clockOrigin).Nanoseconds()) + 1
}

// ManualClock is a deterministic Clock for tests and simulations. It only
// moves when told to and is safe for concurrent use. The zero value reads 0
// ("unavailable"); call Set or Advance first.
type ManualClock struct {
	now atomic.Uint64
}

// NewManualClock returns a ManualClock positioned at now nanoseconds.
func NewManualClock(now uint64) *ManualClock {
	c := &ManualClock{}
	c.now.Store(now)
	return c
}

// Now returns the current manual time.
func (c *ManualClock) Now() uint64 { return c.now.Load() }

// Set positions the clock at now nanoseconds.
func (c *ManualClock) Set(now uint64) { c.now.Store(now) }

// Advance moves the clock forward by d and returns the new reading.
func (c *ManualClock) Advance(d time.Duration) uint64 {
	return c.now.Add(uint64(d.Nanoseconds()))
}
