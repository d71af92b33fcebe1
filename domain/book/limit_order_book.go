package book

import "fmt"

// Execution reports one fill generated while matching an incoming order.
// Executions are emitted oldest-resident-first within a single AddOrder
// call and form an ordered, at-most-once stream per call.
type Execution struct {
	Price      int64
	RestingID  uint64
	IncomingID uint64
	Qty        int64
}

// LimitOrderBook composes the bid and ask sides with the order locator:
// every accepted order is stored exactly once, keyed by id, and the
// buckets hold only links into that arena. Outside of an in-progress
// match step, bestBid < bestAsk whenever both sides are non-empty.
type LimitOrderBook struct {
	bids *Book
	asks *Book

	// orders is arena and locator in one: id -> live order, which carries
	// its current side and price. An id is present iff the order rests in
	// exactly one bucket of that side.
	orders map[uint64]*Order

	retire func(*Order)
}

// NewLimitOrderBook constructs an empty book.
func NewLimitOrderBook() *LimitOrderBook {
	return &LimitOrderBook{
		bids:   NewBook(Buy),
		asks:   NewBook(Sell),
		orders: make(map[uint64]*Order),
	}
}

// OnRetire installs a hook observing every order that leaves the book
// terminally (fully filled or cancelled). The service layer uses it to
// recycle orders through the retire ring. A nil hook drops them.
func (l *LimitOrderBook) OnRetire(fn func(*Order)) { l.retire = fn }

// AddOrder runs the intake pipeline for one incoming limit order: reject
// invalid input, match against contra-side liquidity while the price
// crosses, then rest any remainder. It returns the executions generated,
// in the exact order they occurred.
func (l *LimitOrderBook) AddOrder(o *Order) ([]Execution, error) {
	if o == nil || o.Volume <= 0 || o.Price <= 0 || !o.Side.Valid() {
		return nil, ErrInvalidOrder
	}
	if _, dup := l.orders[o.ID]; dup {
		return nil, fmt.Errorf("%w: duplicate order id %d", ErrInvalidOrder, o.ID)
	}

	contra := l.contra(o.Side)
	var execs []Execution

	for o.Volume > 0 {
		best := contra.BestBucket()
		if best == nil || !crosses(o, best.Price) {
			break
		}

		// Drain the level head-first: the earliest resident fills
		// completely before any quantity reaches the next one.
		for o.Volume > 0 {
			filled, resting := best.FillHead(o.Volume)
			if filled == 0 {
				break
			}
			o.Volume -= filled
			execs = append(execs, Execution{
				Price:      best.Price,
				RestingID:  resting.ID,
				IncomingID: o.ID,
				Qty:        filled,
			})
			if resting.Volume == 0 {
				l.unregister(resting)
			}
		}

		if best.Volume == 0 {
			contra.buckets.Delete(best.Price)
		}
	}

	if o.Volume > 0 {
		l.own(o.Side).Add(o)
		l.orders[o.ID] = o
	} else {
		o.Status = Inactive
		if l.retire != nil {
			l.retire(o)
		}
	}
	return execs, nil
}

// RemoveOrder cancels a resting order by id. Unknown or already-terminal
// ids report ErrOrderNotFound with no side effects.
func (l *LimitOrderBook) RemoveOrder(id uint64) error {
	o, ok := l.orders[id]
	if !ok {
		return ErrOrderNotFound
	}
	l.own(o.Side).Remove(o)
	l.unregister(o)
	return nil
}

// Resident reports whether id currently rests in the book.
func (l *LimitOrderBook) Resident(id uint64) bool {
	_, ok := l.orders[id]
	return ok
}

// Lookup returns the live order for id, or nil. Callers must treat the
// result as read-only.
func (l *LimitOrderBook) Lookup(id uint64) *Order {
	return l.orders[id]
}

// BestBid returns the highest resting bid price, or 0 when the bid side
// is empty.
func (l *LimitOrderBook) BestBid() int64 { return l.bids.BestPrice() }

// BestAsk returns the lowest resting ask price, or 0 when the ask side
// is empty.
func (l *LimitOrderBook) BestAsk() int64 { return l.asks.BestPrice() }

// VolumeAt returns the aggregate resting volume at price on the given
// side, or 0 if the level is absent.
func (l *LimitOrderBook) VolumeAt(price int64, side Side) int64 {
	return l.own(side).VolumeAt(price)
}

// Bids returns a depth iterator over the bid side, best price first.
func (l *LimitOrderBook) Bids() *DepthIterator { return l.bids.Depth() }

// Asks returns a depth iterator over the ask side, best price first.
func (l *LimitOrderBook) Asks() *DepthIterator { return l.asks.Depth() }

// BidsWalk visits bid buckets best to worst until fn returns false.
func (l *LimitOrderBook) BidsWalk(fn func(*PriceBucket) bool) { l.bids.Walk(fn) }

// AsksWalk visits ask buckets best to worst until fn returns false.
func (l *LimitOrderBook) AsksWalk(fn func(*PriceBucket) bool) { l.asks.Walk(fn) }

// Orders returns the number of resident orders across both sides.
func (l *LimitOrderBook) Orders() int { return len(l.orders) }

func (l *LimitOrderBook) own(s Side) *Book {
	if s == Buy {
		return l.bids
	}
	return l.asks
}

func (l *LimitOrderBook) contra(s Side) *Book {
	if s == Buy {
		return l.asks
	}
	return l.bids
}

func (l *LimitOrderBook) unregister(o *Order) {
	delete(l.orders, o.ID)
	o.Status = Inactive
	if l.retire != nil {
		l.retire(o)
	}
}

// crosses reports whether the incoming order's price makes it immediately
// eligible to trade at the contra level price: a buy crosses at or above
// the best ask, a sell at or below the best bid.
func crosses(o *Order, contraPrice int64) bool {
	if o.Side == Buy {
		return o.Price >= contraPrice
	}
	return o.Price <= contraPrice
}
