package counters

import "errors"

const Namespace = "counters"

var (
	// ErrCounterNotFound is returned by Registry.Lookup when no counter was
	// registered under the requested name. The name is attached as an error
	// field; match with errors.Is.
	ErrCounterNotFound = errors.New(Namespace + ": counter not found")

	// ErrRegistryBound is returned by Builder mutation methods after Bind has
	// been called; a frozen registry mapping is never mutated.
	ErrRegistryBound = errors.New(Namespace + ": builder is already bound")

	// ErrInvalidClock is returned when a nil Clock is supplied.
	ErrInvalidClock = errors.New(Namespace + ": clock must not be nil")

	// ErrInvalidCounter is returned when a nil counter is registered.
	ErrInvalidCounter = errors.New(Namespace + ": counter must not be nil")
)
