package snapshot

import "pitchbook/infra/memory"

// Reader is a thin adapter over memory.ReaderEpoch. It marks when a
// consistent read of the book begins and ends; epoching and
// reclamation live in infra/memory.
type Reader struct {
	epoch *memory.ReaderEpoch
}

func NewReader() *Reader {
	return &Reader{
		epoch: memory.NewReaderEpoch(),
	}
}

// Begin marks the start of a consistent read.
func (r *Reader) Begin() {
	r.epoch.Enter()
}

// End marks the end of the read.
func (r *Reader) End() {
	r.epoch.Exit()
}

// Epoch exposes the underlying epoch for reclaimers.
func (r *Reader) Epoch() *memory.ReaderEpoch {
	return r.epoch
}
