// Package counters provides lock-free statistics counters for in-process
// telemetry on latency-sensitive hot paths, plus a registry that maps names
// to counter instances for a separate exporter to read.
//
// Counter kinds
//   - EventCounter: a monotonic event count.
//   - ElapsedCounter: distribution of durations between paired Begin/End calls
//     (count, total, min, max, mean, variance).
//   - IntervalCounter: distribution of gaps between successive Increment calls
//     (time between arrivals).
//
// All three implement the Counter interface; operations that are not
// meaningful for a kind are no-ops. Every operation is safe for concurrent
// use by any number of goroutines, never blocks on I/O, and never allocates.
// Mutually dependent aggregate fields (count, mean, variance accumulator) are
// committed as one unit, so a reader that observes count == n also observes
// the mean and variance accumulator as they stood after exactly n updates.
// min, max and total are maintained by independent compare-and-swap retry
// loops.
//
// Registry lifecycle
// A Builder accumulates named counters in a single-owner phase, then Bind
// freezes it into an immutable Registry that is safe for unsynchronized
// concurrent lookups:
//
//	b, _ := counters.NewBuilder()
//	_ = b.AddEventCounter("requests")
//	_ = b.AddElapsedCounter("handler_latency")
//	r := b.Bind()
//
//	c, err := r.Lookup("requests")
//	if err != nil { ... }
//	c.Increment()
//
// Bind is irreversible; Builder mutation after Bind returns ErrRegistryBound.
// Adding a counter under an existing name overwrites the previous one (last
// writer wins).
//
// Time units
// All timestamps and durations are uint64 nanoseconds from an arbitrary fixed
// origin supplied by a Clock. Mean and variance are float64 nanoseconds, the
// same unit as the samples. The default SystemClock is monotonic and never
// fails; a Clock returning 0 signals "time unavailable" and the affected
// update is skipped rather than recorded with a bogus timestamp.
//
// Constraints
// A single ElapsedCounter instance supports one outstanding Begin/End span at
// a time; a second Begin overwrites the outstanding start and the first
// span's measurement is discarded. Use Timer to measure overlapping spans
// against one counter. Misuse degrades gracefully and never panics.
package counters
