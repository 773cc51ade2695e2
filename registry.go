package counters

import (
	"github.com/ygrebnov/errorc"
)

// builderConfig holds Builder configuration.
type builderConfig struct {
	// Clock supplies timestamps to counters created by the builder.
	// Default: SystemClock.
	Clock Clock
}

func defaultBuilderConfig() builderConfig {
	return builderConfig{Clock: SystemClock{}}
}

// Option configures a Builder. Use NewBuilder(opts...) to construct one.
type Option func(*builderConfig) error

// WithClock sets the Clock injected into counters created by the builder.
func WithClock(clock Clock) Option {
	return func(cfg *builderConfig) error {
		if clock == nil {
			return ErrInvalidClock
		}
		cfg.Clock = clock
		return nil
	}
}

// Builder accumulates named counters, then freezes into a Registry via Bind.
//
// The builder is single-owner: its mutation methods are not safe for
// concurrent use. Adding a counter under an existing name overwrites the
// previous one (last writer wins). After Bind, mutation methods return
// ErrRegistryBound.
type Builder struct {
	config   builderConfig
	counters map[string]Counter
	bound    bool
}

// NewBuilder returns an empty Builder.
func NewBuilder(opts ...Option) (*Builder, error) {
	cfg := defaultBuilderConfig()
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		if err := opt(&cfg); err != nil {
			return nil, err
		}
	}
	return &Builder{
		config:   cfg,
		counters: make(map[string]Counter),
	}, nil
}

// AddEventCounter registers a fresh EventCounter under name.
func (b *Builder) AddEventCounter(name string) error {
	return b.add(name, NewEventCounter(name))
}

// AddElapsedCounter registers a fresh ElapsedCounter under name, wired to the
// builder's clock.
func (b *Builder) AddElapsedCounter(name string) error {
	return b.add(name, NewElapsedCounter(name, b.config.Clock))
}

// AddIntervalCounter registers a fresh IntervalCounter under name, wired to
// the builder's clock.
func (b *Builder) AddIntervalCounter(name string) error {
	return b.add(name, NewIntervalCounter(name, b.config.Clock))
}

// Add registers an externally constructed counter under its own name, e.g.
// one built with a per-counter clock.
func (b *Builder) Add(c Counter) error {
	if c == nil {
		return ErrInvalidCounter
	}
	return b.add(c.Name(), c)
}

func (b *Builder) add(name string, c Counter) error {
	if b.bound {
		return errorc.With(ErrRegistryBound, errorc.String("name", name))
	}
	b.counters[name] = c
	return nil
}

// Bind freezes the builder and transfers its mapping into a Registry that is
// safe for unsynchronized concurrent lookups. Irreversible: the builder
// rejects further mutation, and the mapping itself is never modified again
// (the counters it points to keep mutating internally through their own
// atomic state).
func (b *Builder) Bind() *Registry {
	b.bound = true
	r := &Registry{counters: b.counters}
	b.counters = nil
	return r
}

// Registry is the frozen, shareable name-to-counter mapping. Its lifetime is
// that of the longest-lived holder; no synchronization is needed for lookups.
type Registry struct {
	counters map[string]Counter
}

// Lookup returns the counter registered under name, or ErrCounterNotFound
// (with the name attached) when absent.
func (r *Registry) Lookup(name string) (Counter, error) {
	c, ok := r.counters[name]
	if !ok {
		return nil, errorc.With(ErrCounterNotFound, errorc.String("name", name))
	}
	return c, nil
}

// Each calls fn for every (name, counter) pair until fn returns false.
// Iteration order is not deterministic.
func (r *Registry) Each(fn func(name string, c Counter) bool) {
	for name, c := range r.counters {
		if !fn(name, c) {
			return
		}
	}
}

// Len returns the number of registered counters.
func (r *Registry) Len() int { return len(r.counters) }

// Snapshot returns a point-in-time copy of every counter's aggregates, keyed
// by name. Each entry is internally consistent; entries are read one after
// another, not as a cross-counter transaction.
func (r *Registry) Snapshot() map[string]Snapshot {
	snap := make(map[string]Snapshot, len(r.counters))
	for name, c := range r.counters {
		snap[name] = c.Snapshot()
	}
	return snap
}

// Reset resets every registered counter, e.g. after an exporter scrape.
func (r *Registry) Reset() {
	for _, c := range r.counters {
		c.Reset()
	}
}
