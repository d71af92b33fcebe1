package snapshot

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"pitchbook/domain/book"
	"pitchbook/infra/memory"
)

func TestWriteLoadRoundtrip(t *testing.T) {
	dir := t.TempDir()

	src := book.NewLimitOrderBook()
	orders := []*book.Order{
		{ID: 1, Side: book.Buy, Price: 9900, Volume: 10, Seq: 1, Status: book.Active},
		{ID: 2, Side: book.Buy, Price: 9900, Volume: 5, Seq: 2, Status: book.Active},
		{ID: 3, Side: book.Buy, Price: 9800, Volume: 7, Seq: 3, Status: book.Active},
		{ID: 4, Side: book.Sell, Price: 10100, Volume: 4, Seq: 4, Status: book.Active},
	}
	for _, o := range orders {
		execs, err := src.AddOrder(o)
		require.NoError(t, err)
		require.Empty(t, execs)
	}

	w := &Writer{Dir: dir}
	require.NoError(t, w.Write(42, src))

	dst := book.NewLimitOrderBook()
	pool := memory.NewPool(func() *book.Order { return &book.Order{} })
	seq, err := Load(filepath.Join(dir, "snapshot.bin"), dst, pool)
	require.NoError(t, err)
	require.Equal(t, uint64(42), seq)

	require.Equal(t, int64(9900), dst.BestBid())
	require.Equal(t, int64(10100), dst.BestAsk())
	require.Equal(t, int64(15), dst.VolumeAt(9900, book.Buy))
	require.Equal(t, int64(7), dst.VolumeAt(9800, book.Buy))
	require.Equal(t, int64(4), dst.VolumeAt(10100, book.Sell))

	// FIFO priority at 9900 must survive the roundtrip: order 1 fills
	// before order 2.
	execs, err := dst.AddOrder(&book.Order{
		ID: 99, Side: book.Sell, Price: 9900, Volume: 12, Seq: 99, Status: book.Active,
	})
	require.NoError(t, err)
	require.Len(t, execs, 2)
	require.Equal(t, uint64(1), execs[0].RestingID)
	require.Equal(t, int64(10), execs[0].Qty)
	require.Equal(t, uint64(2), execs[1].RestingID)
	require.Equal(t, int64(2), execs[1].Qty)
}

func TestLoadMissingFileIsColdStart(t *testing.T) {
	dst := book.NewLimitOrderBook()
	pool := memory.NewPool(func() *book.Order { return &book.Order{} })
	seq, err := Load(filepath.Join(t.TempDir(), "snapshot.bin"), dst, pool)
	require.NoError(t, err)
	require.Zero(t, seq)
}

func TestLoadSurfacesOpenErrors(t *testing.T) {
	// A path whose parent is a regular file fails with ENOTDIR, not
	// ENOENT; that must not be mistaken for a cold start.
	dir := t.TempDir()
	blocker := filepath.Join(dir, "blocker")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0o644))

	dst := book.NewLimitOrderBook()
	pool := memory.NewPool(func() *book.Order { return &book.Order{} })
	_, err := Load(filepath.Join(blocker, "snapshot.bin"), dst, pool)
	require.Error(t, err)
}
