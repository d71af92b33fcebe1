// Package sequence issues the arrival sequence numbers that define time
// priority inside the book.
package sequence

import "sync/atomic"

// Sequencer generates strictly monotonic sequence IDs. It is
// deterministic and replay-safe.
type Sequencer struct {
	next atomic.Uint64
}

// New creates a sequencer. A fresh engine starts at 0; after journal
// replay, start is the last replayed sequence.
func New(start uint64) *Sequencer {
	s := &Sequencer{}
	s.next.Store(start)
	return s
}

// Next returns the next sequence ID.
func (s *Sequencer) Next() uint64 {
	return s.next.Add(1)
}

// Current returns the last issued sequence.
func (s *Sequencer) Current() uint64 {
	return s.next.Load()
}

// Reset sets the sequencer. Only used after journal replay.
func (s *Sequencer) Reset(v uint64) {
	s.next.Store(v)
}
