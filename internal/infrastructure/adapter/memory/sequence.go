package memory

import "go.uber.org/atomic"

// Sequence hands out entity ids from a single counter shared by every
// collection of the store. Next is only called under the store write lock;
// Last may be read without it.
type Sequence struct {
	last *atomic.Uint64
}

// NewSequence creates a sequence whose next id is last+1
func NewSequence(last uint64) *Sequence {
	return &Sequence{last: atomic.NewUint64(last)}
}

// Next assigns the next id
func (s *Sequence) Next() uint64 {
	return s.last.Inc()
}

// Last returns the most recently assigned id
func (s *Sequence) Last() uint64 {
	return s.last.Load()
}
