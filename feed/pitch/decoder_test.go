package pitch

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pitchbook/domain/book"
)

// Reference messages from the exchange's published examples.
const (
	addShortMsg = "28800168A1K27GA00000YS000100AAPL  0001831900Y"
	addLongMsg  = "28800169d1K27GA00000YS000100AAPL  0001831900YBAML"
)

func TestParseAddOrderShort(t *testing.T) {
	m, err := ParseAddOrder(addShortMsg)
	require.NoError(t, err)

	assert.Equal(t, uint32(28800168), m.Timestamp)
	assert.Equal(t, uint64(204969015920664610), m.OrderID)
	assert.Equal(t, book.Sell, m.Side)
	assert.Equal(t, int64(100), m.Shares)
	assert.Equal(t, "AAPL  ", m.Symbol)
	assert.Equal(t, int64(1831900), m.Price)
	assert.Equal(t, byte('Y'), m.Display)
	assert.Empty(t, m.ParticipantID)
}

func TestParseAddOrderLong(t *testing.T) {
	m, err := ParseAddOrder(addLongMsg)
	require.NoError(t, err)

	assert.Equal(t, uint64(204969015920664610), m.OrderID)
	assert.Equal(t, "BAML", m.ParticipantID)
	assert.Equal(t, int64(1831900), m.Price)
}

func TestAddOrderIntent(t *testing.T) {
	m, err := ParseAddOrder(addShortMsg)
	require.NoError(t, err)

	in := m.Intent()
	assert.Equal(t, uint64(204969015920664610), in.OrderID)
	assert.Equal(t, book.Sell, in.Side)
	assert.Equal(t, int64(1831900), in.Price)
	assert.Equal(t, int64(100), in.Volume)
	assert.Equal(t, "AAPL", in.Symbol, "symbol padding must be trimmed")
}

func TestParseCancelOrder(t *testing.T) {
	m, err := ParseCancelOrder("28800168X1K27GA00000Y000010")
	require.NoError(t, err)

	assert.Equal(t, uint32(28800168), m.Timestamp)
	assert.Equal(t, uint64(204969015920664610), m.OrderID)
	assert.Equal(t, int64(10), m.Shares)
}

func TestMessageType(t *testing.T) {
	mt, err := MessageType(addShortMsg)
	require.NoError(t, err)
	assert.Equal(t, TypeAddShort, mt)

	_, err = MessageType("short")
	assert.Error(t, err)
}

func TestParseAddOrderMalformed(t *testing.T) {
	mutate := func(i int, c byte) string {
		b := []byte(addShortMsg)
		b[i] = c
		return string(b)
	}
	cases := map[string]string{
		"truncated":    addShortMsg[:20],
		"bad side":     mutate(21, 'Q'),
		"bad shares":   mutate(24, 'x'),
		"bad price":    mutate(40, '-'),
		"wrong type":   mutate(8, 'X'),
		"short as 'd'": mutate(8, 'd'),
	}
	for name, msg := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := ParseAddOrder(msg)
			assert.Error(t, err)
		})
	}
}

func TestParseCancelOrderMalformed(t *testing.T) {
	_, err := ParseCancelOrder("28800168X1K27GA00000Y")
	assert.Error(t, err)

	_, err = ParseCancelOrder("28800168A1K27GA00000YS00010")
	assert.Error(t, err)
}
