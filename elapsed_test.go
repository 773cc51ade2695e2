package counters

import (
	"math"
	"testing"
	"time"
)

func TestElapsedCounter_SingleSpan(t *testing.T) {
	clock := NewManualClock(1)
	c := NewElapsedCounter("latency", clock)

	c.Begin()
	clock.Advance(100)
	c.End()

	s := c.Snapshot()
	if s.Count != 1 || s.Total != 100 || s.Min != 100 || s.Max != 100 {
		t.Fatalf("snapshot = %+v; want count=1 total=100 min=100 max=100", s)
	}
	if s.Mean != 100 || s.Variance != 0 {
		t.Fatalf("mean/variance = %v/%v; want 100/0", s.Mean, s.Variance)
	}
}

func TestElapsedCounter_SequentialSeriesBounds(t *testing.T) {
	clock := NewManualClock(1)
	c := NewElapsedCounter("latency", clock)

	durations := []uint64{30, 5, 120, 5, 60}
	var sum uint64
	for _, d := range durations {
		c.Begin()
		clock.Advance(time.Duration(d))
		c.End()
		sum += d
	}

	s := c.Snapshot()
	if s.Count != uint64(len(durations)) {
		t.Fatalf("count = %d; want %d", s.Count, len(durations))
	}
	if s.Total != sum {
		t.Fatalf("total = %d; want %d", s.Total, sum)
	}
	if s.Min != 5 || s.Max != 120 {
		t.Fatalf("min/max = %d/%d; want 5/120", s.Min, s.Max)
	}
	for _, d := range durations {
		if d < s.Min || d > s.Max {
			t.Fatalf("sample %d outside [min,max] = [%d,%d]", d, s.Min, s.Max)
		}
	}
	wantMean := float64(sum) / float64(len(durations))
	if math.Abs(s.Mean-wantMean) > 1e-9 {
		t.Fatalf("mean = %v; want %v", s.Mean, wantMean)
	}
}

func TestElapsedCounter_CancelExcludes(t *testing.T) {
	clock := NewManualClock(1)
	c := NewElapsedCounter("latency", clock)

	before := c.Snapshot()
	c.Begin()
	clock.Advance(50)
	c.Cancel()
	c.End() // span was cancelled; must not record

	if got := c.Snapshot(); got != before {
		t.Fatalf("snapshot = %+v; want unchanged %+v", got, before)
	}
}

func TestElapsedCounter_EndWithoutBegin(t *testing.T) {
	clock := NewManualClock(1)
	c := NewElapsedCounter("latency", clock)

	c.End()
	if got := c.Snapshot(); got.Count != 0 {
		t.Fatalf("count = %d after unmatched End; want 0", got.Count)
	}
}

func TestElapsedCounter_SecondBeginOverwrites(t *testing.T) {
	clock := NewManualClock(1)
	c := NewElapsedCounter("latency", clock)

	c.Begin()
	clock.Advance(500)
	c.Begin() // discards the first span
	clock.Advance(20)
	c.End()

	s := c.Snapshot()
	if s.Count != 1 || s.Min != 20 || s.Max != 20 {
		t.Fatalf("snapshot = %+v; want one 20ns sample", s)
	}
}

func TestElapsedCounter_SetElapsed(t *testing.T) {
	c := NewElapsedCounter("latency", NewManualClock(1))

	c.SetElapsed(0) // zero means "no observation"
	if got := c.Snapshot(); got.Count != 0 {
		t.Fatalf("count = %d after SetElapsed(0); want 0", got.Count)
	}

	c.SetElapsed(10)
	c.SetElapsed(30)
	s := c.Snapshot()
	if s.Count != 2 || s.Total != 40 || s.Min != 10 || s.Max != 30 || s.Mean != 20 {
		t.Fatalf("snapshot = %+v; want count=2 total=40 min=10 max=30 mean=20", s)
	}
}

func TestElapsedCounter_ZeroElapsedSpanRecorded(t *testing.T) {
	clock := NewManualClock(5)
	c := NewElapsedCounter("latency", clock)

	// A measured span of zero duration is a real observation.
	c.Begin()
	c.End()

	s := c.Snapshot()
	if s.Count != 1 || s.Min != 0 || s.Max != 0 || s.Total != 0 {
		t.Fatalf("snapshot = %+v; want one zero-duration sample", s)
	}
}

func TestElapsedCounter_ClockUnavailableSkipsUpdate(t *testing.T) {
	clock := &ManualClock{} // reads 0: time unavailable
	c := NewElapsedCounter("latency", clock)

	c.Begin()
	clock.Set(100)
	c.End() // no span was opened

	if got := c.Snapshot(); got.Count != 0 {
		t.Fatalf("count = %d; want 0 when Begin was skipped", got.Count)
	}
}

func TestElapsedCounter_ResetMatchesFreshInstance(t *testing.T) {
	clock := NewManualClock(1)
	c := NewElapsedCounter("latency", clock)

	c.Begin()
	clock.Advance(10)
	c.End()
	c.SetElapsed(77)
	c.Begin() // leave a span in flight
	c.Reset()

	fresh := NewElapsedCounter("latency", clock)
	if c.Snapshot() != fresh.Snapshot() {
		t.Fatalf("snapshot after reset = %+v; want %+v", c.Snapshot(), fresh.Snapshot())
	}

	// The in-flight span was discarded by Reset.
	clock.Advance(10)
	c.End()
	if got := c.Snapshot(); got.Count != 0 {
		t.Fatalf("count = %d; want 0, reset clears the running span", got.Count)
	}
}

func TestElapsedCounter_NonMeaningfulOpsAreNoops(t *testing.T) {
	c := NewElapsedCounter("latency", NewManualClock(1))
	c.Increment()
	c.Add(5)
	c.SetCount(5)
	if got := c.Snapshot(); got.Count != 0 {
		t.Fatalf("snapshot = %+v; want untouched", got)
	}
}

func TestElapsedCounter_NilClockDefaultsToSystem(t *testing.T) {
	c := NewElapsedCounter("latency", nil)
	c.Begin()
	c.End()
	if got := c.Snapshot(); got.Count != 1 {
		t.Fatalf("count = %d; want 1", got.Count)
	}
}
