package book

// PriceBucket is the FIFO queue of orders resting at a single price on one
// side, plus their aggregate remaining volume. A bucket exists only while
// its volume is strictly positive; the owning tree removes it the moment
// the last resident order fills or cancels.
type PriceBucket struct {
	Price  int64
	Volume int64

	head  *Order
	tail  *Order
	count int
}

// Add appends o at the tail of the queue. Time priority is arrival order:
// later orders only trade after everything ahead of them is gone.
func (b *PriceBucket) Add(o *Order) {
	if b.head == nil {
		b.head = o
		b.tail = o
	} else {
		b.tail.next = o
		o.prev = b.tail
		b.tail = o
	}
	b.Volume += o.Volume
	b.count++
}

// Remove unlinks o wherever it sits in the queue; cancels are not
// restricted to the head. The caller resolves o through the order locator,
// so o is known to reside here.
func (b *PriceBucket) Remove(o *Order) {
	if o.prev != nil {
		o.prev.next = o.next
	} else {
		b.head = o.next
	}
	if o.next != nil {
		o.next.prev = o.prev
	} else {
		b.tail = o.prev
	}
	o.next = nil
	o.prev = nil

	b.Volume -= o.Volume
	b.count--
	if b.Volume < 0 || b.count < 0 {
		corrupt("bucket %d volume=%d count=%d after remove of order %d",
			b.Price, b.Volume, b.count, o.ID)
	}
}

// FillHead consumes up to qty from the order at the head of the queue and
// returns the quantity actually filled together with the resting order it
// came from. The head is popped once its remaining volume reaches zero.
// Aggregate volume stays consistent; callers must not adjust it directly.
func (b *PriceBucket) FillHead(qty int64) (int64, *Order) {
	head := b.head
	if head == nil || qty <= 0 {
		return 0, nil
	}

	trade := qty
	if head.Volume < trade {
		trade = head.Volume
	}
	head.Volume -= trade
	b.Volume -= trade
	if b.Volume < 0 {
		corrupt("bucket %d volume=%d after fill of order %d", b.Price, b.Volume, head.ID)
	}

	if head.Volume == 0 {
		b.head = head.next
		if b.head != nil {
			b.head.prev = nil
		} else {
			b.tail = nil
		}
		head.next = nil
		b.count--
	}
	return trade, head
}

// Empty reports whether no order rests in the bucket.
func (b *PriceBucket) Empty() bool { return b.head == nil }

// Head returns the first order in time priority, or nil.
func (b *PriceBucket) Head() *Order { return b.head }

// Len returns the number of resident orders.
func (b *PriceBucket) Len() int { return b.count }
