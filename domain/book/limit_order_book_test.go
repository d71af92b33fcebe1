package book

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func addOrder(t *testing.T, l *LimitOrderBook, id uint64, side Side, price, volume int64) []Execution {
	t.Helper()
	execs, err := l.AddOrder(&Order{ID: id, Side: side, Price: price, Volume: volume})
	require.NoError(t, err)
	return execs
}

// checkInvariants asserts the structural properties that must hold between
// calls: positive bucket volumes matching the resident orders, and a
// non-crossed top of book.
func checkInvariants(t *testing.T, l *LimitOrderBook) {
	t.Helper()
	walk := func(fn func(func(*PriceBucket) bool)) {
		fn(func(b *PriceBucket) bool {
			require.Positive(t, b.Volume, "bucket %d resident with non-positive volume", b.Price)
			var sum int64
			for o := b.Head(); o != nil; o = o.Next() {
				sum += o.Volume
			}
			require.Equal(t, sum, b.Volume, "bucket %d volume out of sync", b.Price)
			return true
		})
	}
	walk(l.BidsWalk)
	walk(l.AsksWalk)
	if bid, ask := l.BestBid(), l.BestAsk(); bid != 0 && ask != 0 {
		require.Less(t, bid, ask, "book is crossed")
	}
}

func TestAddOrderRejectsInvalid(t *testing.T) {
	l := NewLimitOrderBook()

	for name, o := range map[string]*Order{
		"zero volume":     {ID: 1, Side: Buy, Price: 100, Volume: 0},
		"negative volume": {ID: 1, Side: Buy, Price: 100, Volume: -5},
		"zero price":      {ID: 1, Side: Buy, Price: 0, Volume: 10},
		"bad side":        {ID: 1, Side: Side(7), Price: 100, Volume: 10},
	} {
		t.Run(name, func(t *testing.T) {
			_, err := l.AddOrder(o)
			assert.ErrorIs(t, err, ErrInvalidOrder)
			assert.Zero(t, l.Orders())
		})
	}

	t.Run("duplicate id", func(t *testing.T) {
		addOrder(t, l, 42, Buy, 100, 10)
		_, err := l.AddOrder(&Order{ID: 42, Side: Buy, Price: 101, Volume: 5})
		assert.ErrorIs(t, err, ErrInvalidOrder)
		assert.Equal(t, int64(10), l.VolumeAt(100, Buy))
		assert.Zero(t, l.VolumeAt(101, Buy))
	})
}

// The ladder of scenarios from the book's acceptance checklist: rest, no
// cross, partial cross, cancel emptying a level.
func TestBookScenarios(t *testing.T) {
	l := NewLimitOrderBook()

	// Empty book: first bid rests.
	execs := addOrder(t, l, 1, Buy, 100, 10)
	assert.Empty(t, execs)
	assert.Equal(t, int64(100), l.BestBid())
	assert.Zero(t, l.BestAsk())
	assert.Equal(t, int64(10), l.VolumeAt(100, Buy))
	checkInvariants(t, l)

	// Ask above the bid: no cross, both sides rest.
	execs = addOrder(t, l, 2, Sell, 105, 5)
	assert.Empty(t, execs)
	assert.Equal(t, int64(105), l.BestAsk())
	assert.Equal(t, int64(100), l.BestBid())
	assert.Equal(t, int64(10), l.VolumeAt(100, Buy))
	checkInvariants(t, l)

	// Sell at 100 crosses the bid: one execution, remainder of order 1 rests.
	execs = addOrder(t, l, 3, Sell, 100, 4)
	require.Len(t, execs, 1)
	assert.Equal(t, Execution{Price: 100, RestingID: 1, IncomingID: 3, Qty: 4}, execs[0])
	assert.Equal(t, int64(6), l.Lookup(1).Volume)
	assert.False(t, l.Resident(3), "fully filled incoming order must not rest")
	assert.Equal(t, int64(100), l.BestBid())
	assert.Equal(t, int64(105), l.BestAsk())
	checkInvariants(t, l)

	// Cancelling order 1 empties the level; best bid falls to the sentinel.
	require.NoError(t, l.RemoveOrder(1))
	assert.Zero(t, l.BestBid())
	assert.Zero(t, l.VolumeAt(100, Buy))
	checkInvariants(t, l)
}

func TestRemoveOrderNotFound(t *testing.T) {
	l := NewLimitOrderBook()
	addOrder(t, l, 1, Buy, 100, 10)
	addOrder(t, l, 2, Sell, 105, 5)

	assert.ErrorIs(t, l.RemoveOrder(99), ErrOrderNotFound)

	// Cancelling a filled-away order is also not found, and harmless.
	addOrder(t, l, 3, Sell, 100, 10)
	assert.ErrorIs(t, l.RemoveOrder(1), ErrOrderNotFound)

	assert.Zero(t, l.BestBid())
	assert.Equal(t, int64(105), l.BestAsk())
	assert.Equal(t, int64(5), l.VolumeAt(105, Sell))
	checkInvariants(t, l)
}

// FIFO within a level: with A resting before B and an incoming crossing
// volume v, A.volume <= v < A.volume+B.volume, A fills completely first and
// B receives exactly the remainder.
func TestMatchFIFOWithinLevel(t *testing.T) {
	l := NewLimitOrderBook()
	addOrder(t, l, 1, Buy, 100, 6) // A
	addOrder(t, l, 2, Buy, 100, 8) // B

	execs := addOrder(t, l, 3, Sell, 100, 10)
	require.Len(t, execs, 2)
	assert.Equal(t, Execution{Price: 100, RestingID: 1, IncomingID: 3, Qty: 6}, execs[0])
	assert.Equal(t, Execution{Price: 100, RestingID: 2, IncomingID: 3, Qty: 4}, execs[1])

	assert.False(t, l.Resident(1))
	assert.Equal(t, int64(4), l.Lookup(2).Volume)
	assert.Equal(t, int64(4), l.VolumeAt(100, Buy))
	checkInvariants(t, l)
}

// A marketable order walks down multiple levels, consuming the best price
// completely before touching the next, and rests its remainder.
func TestMatchAcrossLevels(t *testing.T) {
	l := NewLimitOrderBook()
	addOrder(t, l, 1, Sell, 101, 5)
	addOrder(t, l, 2, Sell, 102, 5)
	addOrder(t, l, 3, Sell, 103, 5)

	execs := addOrder(t, l, 4, Buy, 102, 12)
	require.Len(t, execs, 2)
	assert.Equal(t, Execution{Price: 101, RestingID: 1, IncomingID: 4, Qty: 5}, execs[0])
	assert.Equal(t, Execution{Price: 102, RestingID: 2, IncomingID: 4, Qty: 5}, execs[1])

	// 103 does not cross; the 2 leftover rests as the new best bid.
	require.True(t, l.Resident(4))
	assert.Equal(t, int64(2), l.Lookup(4).Volume)
	assert.Equal(t, int64(102), l.BestBid())
	assert.Equal(t, int64(103), l.BestAsk())
	assert.Zero(t, l.VolumeAt(101, Sell))
	assert.Zero(t, l.VolumeAt(102, Sell))
	checkInvariants(t, l)
}

func TestEmptiedLevelDisappears(t *testing.T) {
	l := NewLimitOrderBook()
	addOrder(t, l, 1, Sell, 101, 5)
	addOrder(t, l, 2, Sell, 105, 5)

	addOrder(t, l, 3, Buy, 101, 5)

	assert.Equal(t, int64(105), l.BestAsk())
	it := l.Asks()
	require.True(t, it.Next())
	assert.Equal(t, int64(105), it.Price())
	assert.False(t, it.Next())
	checkInvariants(t, l)
}

func TestDepthIteration(t *testing.T) {
	l := NewLimitOrderBook()
	addOrder(t, l, 1, Buy, 100, 10)
	addOrder(t, l, 2, Buy, 98, 20)
	addOrder(t, l, 3, Buy, 99, 5)
	addOrder(t, l, 4, Buy, 99, 7)
	addOrder(t, l, 5, Sell, 105, 3)
	addOrder(t, l, 6, Sell, 104, 9)

	type level struct{ price, volume int64 }
	collect := func(it *DepthIterator) []level {
		var out []level
		for it.Next() {
			out = append(out, level{it.Price(), it.Volume()})
		}
		return out
	}

	bids := l.Bids()
	assert.Equal(t, []level{{100, 10}, {99, 12}, {98, 20}}, collect(bids))
	assert.Equal(t, []level{{104, 9}, {105, 3}}, collect(l.Asks()))

	// Restartable: the same iterator rewinds cleanly.
	bids.Reset()
	assert.Equal(t, []level{{100, 10}, {99, 12}, {98, 20}}, collect(bids))
}

func TestRetireHookObservesTerminalOrders(t *testing.T) {
	l := NewLimitOrderBook()
	var retired []uint64
	l.OnRetire(func(o *Order) {
		require.Equal(t, Inactive, o.Status)
		retired = append(retired, o.ID)
	})

	addOrder(t, l, 1, Buy, 100, 5)
	addOrder(t, l, 2, Sell, 100, 5) // fills 1, then itself
	addOrder(t, l, 3, Buy, 90, 1)
	require.NoError(t, l.RemoveOrder(3))

	assert.Equal(t, []uint64{1, 2, 3}, retired)
	assert.Zero(t, l.Orders())
}

// Replaying the same accepted event stream against a fresh book must
// reproduce identical top of book and per-price volumes.
func TestDeterministicReplay(t *testing.T) {
	type event struct {
		cancel bool
		id     uint64
		side   Side
		price  int64
		volume int64
	}
	events := []event{
		{id: 1, side: Buy, price: 100, volume: 10},
		{id: 2, side: Sell, price: 103, volume: 7},
		{id: 3, side: Buy, price: 101, volume: 4},
		{id: 4, side: Sell, price: 101, volume: 9},
		{cancel: true, id: 1},
		{id: 5, side: Buy, price: 99, volume: 12},
		{id: 6, side: Sell, price: 99, volume: 30},
		{cancel: true, id: 2},
		{id: 7, side: Buy, price: 98, volume: 3},
	}

	run := func() *LimitOrderBook {
		l := NewLimitOrderBook()
		for _, ev := range events {
			if ev.cancel {
				_ = l.RemoveOrder(ev.id)
			} else {
				_, err := l.AddOrder(&Order{ID: ev.id, Side: ev.side, Price: ev.price, Volume: ev.volume})
				require.NoError(t, err)
			}
		}
		return l
	}

	a, b := run(), run()
	assert.Equal(t, a.BestBid(), b.BestBid())
	assert.Equal(t, a.BestAsk(), b.BestAsk())
	for p := int64(90); p <= 110; p++ {
		assert.Equal(t, a.VolumeAt(p, Buy), b.VolumeAt(p, Buy), "bid volume at %d", p)
		assert.Equal(t, a.VolumeAt(p, Sell), b.VolumeAt(p, Sell), "ask volume at %d", p)
	}
	checkInvariants(t, a)
}
