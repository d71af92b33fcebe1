package snapshot

import (
	"encoding/gob"
	"os"
	"path/filepath"
	"time"

	"pitchbook/domain/book"
)

type Writer struct {
	Dir string
}

// Write dumps every active resting order in price-time order. Orders
// within a bucket are walked head to tail, so re-adding them in file
// order reproduces FIFO priority at each level.
func (w *Writer) Write(seq uint64, lob *book.LimitOrderBook) error {
	if err := os.MkdirAll(w.Dir, 0o755); err != nil {
		return err
	}

	path := filepath.Join(w.Dir, "snapshot.bin")
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	s := Snapshot{
		Seq:     seq,
		Created: time.Now(),
		Orders:  make([]OrderEntry, 0, 1024),
	}

	appendBucket := func(b *book.PriceBucket) bool {
		for o := b.Head(); o != nil; o = o.Next() {
			if o.Status != book.Active {
				continue
			}
			s.Orders = append(s.Orders, OrderEntry{
				ID:     o.ID,
				Side:   int(o.Side),
				Price:  o.Price,
				Volume: o.Volume,
				Seq:    o.Seq,
			})
		}
		return true
	}

	lob.BidsWalk(appendBucket)
	lob.AsksWalk(appendBucket)

	return gob.NewEncoder(f).Encode(&s)
}
