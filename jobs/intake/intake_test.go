package intake

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"pitchbook/domain/book"
	"pitchbook/feed"
	"pitchbook/infra/memory"
	"pitchbook/infra/sequence"
	entrywal "pitchbook/infra/wal/entry"
	exitwal "pitchbook/infra/wal/exit"
	"pitchbook/service"
	"pitchbook/snapshot"
)

func newTestConsumer(t *testing.T, symbol string) *Consumer {
	t.Helper()

	lob := book.NewLimitOrderBook()
	pool := memory.NewPool(func() *book.Order { return &book.Order{} })
	journal, err := entrywal.Open(entrywal.Config{Dir: t.TempDir(), SegmentSize: 1 << 20})
	require.NoError(t, err)
	outbox, err := exitwal.Open(t.TempDir())
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = journal.Close()
		_ = outbox.Close()
	})

	svc := service.NewOrderService(lob, pool, memory.NewRetireRing(64),
		snapshot.NewReader(), journal, outbox, sequence.New(0), zap.NewNop())

	return &Consumer{svc: svc, symbol: symbol, log: zap.NewNop()}
}

func addEvent(t *testing.T, id uint64, symbol string) []byte {
	t.Helper()
	value, err := json.Marshal(feed.Envelope{
		Type: feed.TypeAdd,
		Add: &feed.Intent{
			OrderID: id, Side: book.Buy, Price: 9900, Volume: 10, Symbol: symbol,
		},
	})
	require.NoError(t, err)
	return value
}

func TestSymbolPaddingDoesNotDropEvents(t *testing.T) {
	// Decoded PITCH intents carry the trimmed symbol while configs may
	// keep the fixed-width padded form; both must select the instrument.
	t.Run("trimmed event, padded config", func(t *testing.T) {
		c := newTestConsumer(t, "AAPL  ")
		c.handle(addEvent(t, 1, "AAPL"))
		require.True(t, c.svc.Resident(1))
	})

	t.Run("padded event, trimmed config", func(t *testing.T) {
		c := newTestConsumer(t, "AAPL")
		c.handle(addEvent(t, 1, "AAPL  "))
		require.True(t, c.svc.Resident(1))
	})

	t.Run("foreign symbol still dropped", func(t *testing.T) {
		c := newTestConsumer(t, "AAPL")
		c.handle(addEvent(t, 1, "MSFT"))
		require.False(t, c.svc.Resident(1))
	})
}

func TestCancelEvents(t *testing.T) {
	c := newTestConsumer(t, "AAPL")
	c.handle(addEvent(t, 7, "AAPL"))
	require.True(t, c.svc.Resident(7))

	value, err := json.Marshal(feed.Envelope{
		Type:   feed.TypeCancel,
		Cancel: &feed.Cancel{OrderID: 7, Symbol: "AAPL  "},
	})
	require.NoError(t, err)
	c.handle(value)
	require.False(t, c.svc.Resident(7))
}
