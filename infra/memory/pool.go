package memory

import "sync"

// Pool is a typed object pool. It is type-safe for normal use and can
// also participate in epoch-based reclamation through PutAny.
type Pool[T any] struct {
	p *sync.Pool
}

// NewPool constructs a pool backed by ctor for cache misses.
func NewPool[T any](ctor func() *T) *Pool[T] {
	return &Pool[T]{
		p: &sync.Pool{
			New: func() any { return ctor() },
		},
	}
}

// Get returns a pooled or freshly constructed value.
func (p *Pool[T]) Get() *T {
	return p.p.Get().(*T)
}

// Put returns v to the pool. The caller must not use v afterwards.
func (p *Pool[T]) Put(v *T) {
	p.p.Put(v)
}

// PutAny lets Pool[T] satisfy ReclaimablePool. It is the one explicit
// crossing between the typed and erased worlds; a wrong type here is a
// wiring bug, not a runtime condition.
func (p *Pool[T]) PutAny(v any) {
	obj, ok := v.(*T)
	if !ok {
		panic("memory.Pool: PutAny received wrong type")
	}
	p.Put(obj)
}
