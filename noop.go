package counters

// NopCounter discards everything. Useful as a stand-in when a Lookup misses
// and the caller wants to proceed without guarding every call site.
// All methods are safe for concurrent use and perform no work.
type NopCounter struct{}

// NewNopCounter returns a Counter that discards all updates.
func NewNopCounter() NopCounter { return NopCounter{} }

func (NopCounter) Name() string       { return "" }
func (NopCounter) Begin()             {}
func (NopCounter) Increment()         {}
func (NopCounter) Add(uint64)         {}
func (NopCounter) End()               {}
func (NopCounter) SetElapsed(uint64)  {}
func (NopCounter) SetCount(uint64)    {}
func (NopCounter) Cancel()            {}
func (NopCounter) Reset()             {}
func (NopCounter) Snapshot() Snapshot { return Snapshot{} }
