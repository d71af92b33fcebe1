package book

// DepthIterator is a lazy, finite walk over one side's price levels from
// the best price toward worse ones. Each call to Depth produces a fresh,
// restartable iterator; it is decoupled from the tree's node layout and
// advances by price, so it costs O(log L) per step.
//
// Mutating the book while an iteration is open is undefined behavior.
// Callers must not interleave adds or cancels with an active walk.
type DepthIterator struct {
	book    *Book
	cur     *PriceBucket
	started bool
}

// Next advances to the following level and reports whether one exists.
// The first call positions the iterator on the best price.
func (it *DepthIterator) Next() bool {
	if !it.started {
		it.started = true
		it.cur = it.book.BestBucket()
	} else if it.cur != nil {
		it.cur = it.book.Worse(it.cur.Price)
	}
	return it.cur != nil
}

// Price returns the current level's price. Only valid after a Next call
// that returned true.
func (it *DepthIterator) Price() int64 { return it.cur.Price }

// Volume returns the current level's aggregate resting volume.
func (it *DepthIterator) Volume() int64 { return it.cur.Volume }

// Reset rewinds the iterator so the next Next call starts at the best
// price again.
func (it *DepthIterator) Reset() {
	it.started = false
	it.cur = nil
}
