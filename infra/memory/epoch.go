package memory

import "sync/atomic"

// GlobalEpoch monotonically increases with every reclamation pass.
var GlobalEpoch atomic.Uint64

const inactive = ^uint64(0)

// ReaderEpoch records when a snapshot reader entered a read section.
// An inactive reader never blocks reclamation.
type ReaderEpoch struct {
	epoch atomic.Uint64
}

// NewReaderEpoch returns a reader marked inactive.
func NewReaderEpoch() *ReaderEpoch {
	r := &ReaderEpoch{}
	r.epoch.Store(inactive)
	return r
}

// Enter marks the start of a read section.
func (r *ReaderEpoch) Enter() {
	r.epoch.Store(GlobalEpoch.Load())
}

// Exit marks the end of a read section.
func (r *ReaderEpoch) Exit() {
	r.epoch.Store(inactive)
}

// Value returns the epoch the reader entered at, or the inactive marker.
func (r *ReaderEpoch) Value() uint64 {
	return r.epoch.Load()
}

// ReclaimablePool is the only requirement reclamation places on a pool.
// It is intentionally type-erased.
type ReclaimablePool interface {
	PutAny(any)
}

// AdvanceEpochAndReclaim bumps the global epoch and drains the ring into
// the pool while it is safe to do so. It returns the number of objects
// recycled. The ring is FIFO, so the first unsafe object stops the pass:
// everything behind it was retired later and cannot be safe either.
func AdvanceEpochAndReclaim(ring *RetireRing, pool ReclaimablePool, readers ...*ReaderEpoch) int {
	GlobalEpoch.Add(1)
	min := minReaderEpoch(readers...)

	n := 0
	for {
		obj := ring.Pop()
		if obj == nil {
			return n
		}
		if min == inactive {
			pool.PutAny(obj)
			n++
			continue
		}
		_ = ring.Push(obj)
		return n
	}
}

func minReaderEpoch(rs ...*ReaderEpoch) uint64 {
	min := inactive
	for _, r := range rs {
		if r == nil {
			continue
		}
		if v := r.Value(); v < min {
			min = v
		}
	}
	return min
}
