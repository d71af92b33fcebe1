package memory

import "sync/atomic"

// RetireRing is a lock-free SPSC ring buffer holding retired objects
// until the reclaimer decides no reader can still see them. The writer
// side is the engine thread; the reader side is the reclaim job.
type RetireRing struct {
	head  uint64
	_pad1 [56]byte
	tail  uint64
	_pad2 [56]byte
	buf   []any
	mask  uint64
}

// NewRetireRing allocates a ring. Size must be a power of two.
func NewRetireRing(size uint64) *RetireRing {
	if size == 0 || size&(size-1) != 0 {
		panic("memory: RetireRing size must be a power of two")
	}
	return &RetireRing{
		buf:  make([]any, size),
		mask: size - 1,
	}
}

// Push enqueues v, returning false when the ring is full.
func (r *RetireRing) Push(v any) bool {
	h := r.head
	t := atomic.LoadUint64(&r.tail)
	if h-t == uint64(len(r.buf)) {
		return false
	}
	r.buf[h&r.mask] = v
	atomic.StoreUint64(&r.head, h+1)
	return true
}

// Pop dequeues the oldest retired object, or nil when empty.
func (r *RetireRing) Pop() any {
	t := r.tail
	h := atomic.LoadUint64(&r.head)
	if t == h {
		return nil
	}
	v := r.buf[t&r.mask]
	r.buf[t&r.mask] = nil
	atomic.StoreUint64(&r.tail, t+1)
	return v
}

// Len returns the number of objects awaiting reclamation.
func (r *RetireRing) Len() int {
	h := atomic.LoadUint64(&r.head)
	t := atomic.LoadUint64(&r.tail)
	return int(h - t)
}

// Cap returns the ring capacity.
func (r *RetireRing) Cap() int {
	return len(r.buf)
}
