package counters

import (
	"math"
	"runtime"
	"sync/atomic"
)

// aggregate holds the mutually dependent distribution fields: the sample
// count and Welford's running mean and M2 accumulator. The next mean depends
// on the previous mean and the next M2 depends on both, so the triple must
// commit as one unit; independent per-field CAS can interleave with a
// concurrent observation and publish a mean inconsistent with its M2. The
// triple does not fit a single atomic word (two float64 plus a count), and a
// copy-on-write pointer swap would allocate per observation, so a spin guard
// scoped to exactly these three fields is used instead. The guarded section
// is a handful of float operations: no calls, no allocation, no suspension.
//
// min, max and total have no cross-field dependency and stay outside on
// independent lock-free retry loops (casMin, casMax, addSaturating).
type aggregate struct {
	guard atomic.Uint32 // 0 free, 1 held

	count uint64
	mean  float64
	m2    float64
}

func (a *aggregate) lock() {
	for !a.guard.CompareAndSwap(0, 1) {
		runtime.Gosched()
	}
}

func (a *aggregate) unlock() { a.guard.Store(0) }

// observe folds sample x into the triple and returns the new count.
func (a *aggregate) observe(x float64) uint64 {
	a.lock()
	a.count++
	n := a.count
	delta := x - a.mean
	a.mean += delta / float64(n)
	a.m2 += delta * (x - a.mean)
	a.unlock()
	return n
}

// read returns a consistent (count, mean, m2) triple.
func (a *aggregate) read() (uint64, float64, float64) {
	a.lock()
	n, mean, m2 := a.count, a.mean, a.m2
	a.unlock()
	return n, mean, m2
}

// reset restores the construction-time literals.
func (a *aggregate) reset() {
	a.lock()
	a.count, a.mean, a.m2 = 0, 0, 0
	a.unlock()
}

// variance converts an M2 accumulator into the sample variance.
func variance(count uint64, m2 float64) float64 {
	if count < 2 {
		return 0
	}
	return m2 / float64(count-1)
}

// noSample is the initial value of min fields; any real sample beats it.
const noSample = math.MaxUint64

// casMin lowers v to x unless a concurrent writer already stored something
// smaller. Standard lock-free monotone-update retry loop.
func casMin(v *atomic.Uint64, x uint64) {
	for {
		cur := v.Load()
		if x >= cur {
			return
		}
		if v.CompareAndSwap(cur, x) {
			return
		}
	}
}

// casMax raises v to x unless a concurrent writer already stored something
// larger.
func casMax(v *atomic.Uint64, x uint64) {
	for {
		cur := v.Load()
		if x <= cur {
			return
		}
		if v.CompareAndSwap(cur, x) {
			return
		}
	}
}

// addSaturating adds x to v, clamping at MaxUint64 instead of wrapping.
func addSaturating(v *atomic.Uint64, x uint64) {
	for {
		cur := v.Load()
		next := cur + x
		if next < cur {
			next = math.MaxUint64
		}
		if v.CompareAndSwap(cur, next) {
			return
		}
	}
}

// subSaturating returns a-b, clamped to 0 when b > a (clock skew or misuse
// must never produce a wrapped elapsed value).
func subSaturating(a, b uint64) uint64 {
	if b > a {
		return 0
	}
	return a - b
}
