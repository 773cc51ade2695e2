package counters

// Timer measures one span and folds it into a counter through SetElapsed.
// Unlike Begin/End, each Timer carries its own start timestamp, so any number
// of spans may run concurrently against the same counter.
type Timer struct {
	c     Counter
	clock Clock
	start uint64
}

// StartTimer starts measuring a span to be recorded on c. A nil clock selects
// SystemClock.
func StartTimer(c Counter, clock Clock) *Timer {
	if clock == nil {
		clock = SystemClock{}
	}
	return &Timer{c: c, clock: clock, start: clock.Now()}
}

// Stop records the elapsed nanoseconds into the counter and returns them.
// When the clock reported time unavailable at start or stop, nothing is
// recorded and 0 is returned.
func (t *Timer) Stop() uint64 {
	if t.start == 0 {
		return 0
	}
	now := t.clock.Now()
	if now == 0 {
		return 0
	}
	elapsed := subSaturating(now, t.start)
	t.c.SetElapsed(elapsed)
	return elapsed
}

// Cancel discards the span without recording anything.
func (t *Timer) Cancel() { t.start = 0 }
