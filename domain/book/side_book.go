package book

// Book is one side of the limit order book: a side tag plus the tree of
// price buckets. The side fixes the best-price rule — highest price wins
// for bids, lowest for asks — as explicit comparator logic rather than a
// runtime-bound function.
type Book struct {
	side    Side
	buckets *RBTree
}

// NewBook constructs an empty side.
func NewBook(side Side) *Book {
	return &Book{side: side, buckets: NewRBTree()}
}

// Side returns the side tag.
func (bk *Book) Side() Side { return bk.side }

// Add rests o at its price level, creating the bucket on first use.
func (bk *Book) Add(o *Order) {
	bk.buckets.GetOrCreate(o.Price).Add(o)
}

// Remove unlinks o from its bucket and drops the bucket once it empties,
// so a price level never lingers with zero volume.
func (bk *Book) Remove(o *Order) {
	b := bk.buckets.Find(o.Price)
	if b == nil {
		corrupt("no bucket at %d for resident order %d", o.Price, o.ID)
	}
	b.Remove(o)
	if b.Volume == 0 {
		bk.buckets.Delete(o.Price)
	}
}

// VolumeAt returns the aggregate resting volume at price, or 0 if the
// level is absent.
func (bk *Book) VolumeAt(price int64) int64 {
	b := bk.buckets.Find(price)
	if b == nil {
		return 0
	}
	return b.Volume
}

// BestPrice returns the most aggressive resident price on this side, or
// the sentinel 0 when the side holds no liquidity.
func (bk *Book) BestPrice() int64 {
	if bk.side == Buy {
		return bk.buckets.MaxPrice()
	}
	return bk.buckets.MinPrice()
}

// BestBucket returns the bucket at BestPrice, or nil when empty.
func (bk *Book) BestBucket() *PriceBucket {
	if bk.side == Buy {
		return bk.buckets.Max()
	}
	return bk.buckets.Min()
}

// Worse returns the next bucket away from the top of the book relative to
// price, or nil past the worst resident level.
func (bk *Book) Worse(price int64) *PriceBucket {
	if bk.side == Buy {
		return bk.buckets.Predecessor(price)
	}
	return bk.buckets.Successor(price)
}

// Better returns the next bucket toward the top of the book relative to
// price, or nil past the best resident level.
func (bk *Book) Better(price int64) *PriceBucket {
	if bk.side == Buy {
		return bk.buckets.Successor(price)
	}
	return bk.buckets.Predecessor(price)
}

// Walk visits buckets from best to worst until fn returns false.
func (bk *Book) Walk(fn func(*PriceBucket) bool) {
	if bk.side == Buy {
		bk.buckets.ForEachDescending(fn)
	} else {
		bk.buckets.ForEachAscending(fn)
	}
}

// Depth returns a fresh iterator over (price, volume) levels, best first.
func (bk *Book) Depth() *DepthIterator {
	return &DepthIterator{book: bk}
}

// Levels returns the number of resident price levels.
func (bk *Book) Levels() int { return bk.buckets.Size() }
