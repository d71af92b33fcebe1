package snapshot

import (
	"encoding/gob"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"pitchbook/domain/book"
	"pitchbook/infra/memory"
)

// Load restores a snapshot into an empty book. A missing file is not an
// error; it just means a cold start. Returns the journal sequence the
// snapshot covers.
func Load(
	path string,
	lob *book.LimitOrderBook,
	pool *memory.Pool[book.Order],
) (uint64, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return 0, nil // snapshot optional
		}
		return 0, err
	}
	defer f.Close()

	var s Snapshot
	if err := gob.NewDecoder(f).Decode(&s); err != nil {
		return 0, err
	}

	for _, e := range s.Orders {
		o := pool.Get()
		*o = book.Order{
			ID:     e.ID,
			Side:   book.Side(e.Side),
			Price:  e.Price,
			Volume: e.Volume,
			Seq:    e.Seq,
			Status: book.Active,
		}
		execs, err := lob.AddOrder(o)
		if err != nil {
			return 0, fmt.Errorf("snapshot: restore order %d: %w", e.ID, err)
		}
		// A snapshot of a consistent book has no crossing orders.
		if len(execs) != 0 {
			return 0, fmt.Errorf("snapshot: order %d crossed during restore", e.ID)
		}
	}

	return s.Seq, nil
}
