package model

import "sync/atomic"

// IDSequence issues process-wide identifiers for one entity type.  The
// first value handed out is 1 and values are never reused, even after the
// entity that held them is removed.  A sequence is safe for concurrent use.
type IDSequence struct {
	last atomic.Uint64 // last value handed out; zero before the first call
}

// NewIDSequence returns a sequence whose first Next call yields 1.
func NewIDSequence() *IDSequence {
	return &IDSequence{}
}

// Next returns the next identifier.
func (s *IDSequence) Next() uint64 {
	return s.last.Add(1)
}

// Peek returns the most recently issued identifier, or zero when none has
// been issued yet.
func (s *IDSequence) Peek() uint64 {
	return s.last.Load()
}
