package book

// Side selects one half of the book.
type Side int

const (
	Buy Side = iota
	Sell
)

func (s Side) String() string {
	switch s {
	case Buy:
		return "BUY"
	case Sell:
		return "SELL"
	default:
		return "INVALID"
	}
}

// Valid reports whether s is one of the two recognized sides.
func (s Side) Valid() bool {
	return s == Buy || s == Sell
}

// Opposite returns the contra side.
func (s Side) Opposite() Side {
	if s == Buy {
		return Sell
	}
	return Buy
}

type Status int

const (
	Active Status = iota
	Inactive
)

// Order is the engine's authoritative record of one accepted order.
// Volume is the remaining unfilled quantity; Seq is the arrival sequence
// and defines time priority within a price bucket. The next/prev links
// are owned by the PriceBucket the order currently rests in.
type Order struct {
	ID     uint64
	Price  int64
	Volume int64
	Seq    uint64

	Side   Side
	Status Status

	next *Order
	prev *Order
}

// Next returns the order behind o in its bucket's FIFO queue.
func (o *Order) Next() *Order { return o.next }

// Reset clears the order for reuse by an object pool.
func (o *Order) Reset() { *o = Order{} }
