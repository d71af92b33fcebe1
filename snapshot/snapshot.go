package snapshot

import "time"

type Snapshot struct {
	Seq     uint64
	Created time.Time
	Orders  []OrderEntry
}

// OrderEntry preserves the original arrival sequence so time priority
// survives a restore.
type OrderEntry struct {
	ID     uint64
	Side   int
	Price  int64
	Volume int64
	Seq    uint64
}
