// Package pitch decodes BATS PITCH text messages into normalized feed
// events. Only the message types the engine consumes are recognized:
// add order (short 'A' and long 'd' forms) and cancel order ('X').
//
// Prices on the wire are fixed point, six integer digits followed by four
// decimal digits. They are composed into exact integer ticks; nothing in
// the pipeline ever represents a price as floating point.
package pitch

import (
	"fmt"
	"strconv"
	"strings"

	"pitchbook/domain/book"
	"pitchbook/feed"
)

// Message type bytes, at offset 8 after the timestamp.
const (
	TypeAddShort byte = 'A'
	TypeAddLong  byte = 'd'
	TypeCancel   byte = 'X'
)

// Field widths of the add-order message body, in order.
const (
	lenTimestamp = 8
	lenOrderID   = 12
	lenShares    = 6
	lenSymbol    = 6
	lenPriceInt  = 6
	lenPriceDec  = 4
	lenPartID    = 4

	addShortLen  = lenTimestamp + 1 + lenOrderID + 1 + lenShares + lenSymbol + lenPriceInt + lenPriceDec + 1
	addLongLen   = addShortLen + lenPartID
	cancelMsgLen = lenTimestamp + 1 + lenOrderID + lenShares
)

// priceScale converts the integer digit group to ticks: four decimal
// digits per tick unit.
const priceScale = 10000

// AddOrder is a decoded add-order message.
type AddOrder struct {
	Timestamp     uint32
	OrderID       uint64
	Side          book.Side
	Shares        int64
	Symbol        string
	Price         int64 // integer ticks
	Display       byte
	ParticipantID string // long form only
}

// Intent converts the message to the engine's normalized event.
func (m *AddOrder) Intent() feed.Intent {
	return feed.Intent{
		OrderID: m.OrderID,
		Side:    m.Side,
		Price:   m.Price,
		Volume:  m.Shares,
		Symbol:  strings.TrimRight(m.Symbol, " "),
	}
}

// CancelOrder is a decoded cancel-order message.
type CancelOrder struct {
	Timestamp uint32
	OrderID   uint64
	Shares    int64
}

// Cancel converts the message to the engine's normalized event.
func (m *CancelOrder) Cancel() feed.Cancel {
	return feed.Cancel{OrderID: m.OrderID}
}

// MessageType returns the type byte of a raw message.
func MessageType(msg string) (byte, error) {
	if len(msg) <= lenTimestamp {
		return 0, fmt.Errorf("pitch: message too short: %d bytes", len(msg))
	}
	return msg[lenTimestamp], nil
}

// ParseAddOrder decodes a short or long form add-order message.
func ParseAddOrder(msg string) (*AddOrder, error) {
	if len(msg) != addShortLen && len(msg) != addLongLen {
		return nil, fmt.Errorf("pitch: add order message length %d, want %d or %d",
			len(msg), addShortLen, addLongLen)
	}

	mtype := msg[lenTimestamp]
	if mtype != TypeAddShort && mtype != TypeAddLong {
		return nil, fmt.Errorf("pitch: unexpected add order type %q", mtype)
	}
	if mtype == TypeAddLong && len(msg) != addLongLen {
		return nil, fmt.Errorf("pitch: long add order message length %d, want %d", len(msg), addLongLen)
	}
	if mtype == TypeAddShort && len(msg) != addShortLen {
		return nil, fmt.Errorf("pitch: short add order message length %d, want %d", len(msg), addShortLen)
	}

	ts, err := parseDigits(msg[:lenTimestamp])
	if err != nil {
		return nil, fmt.Errorf("pitch: timestamp: %w", err)
	}

	p := lenTimestamp + 1
	orderID, err := parseBase36(msg[p : p+lenOrderID])
	if err != nil {
		return nil, fmt.Errorf("pitch: order id: %w", err)
	}
	p += lenOrderID

	side, err := parseSide(msg[p])
	if err != nil {
		return nil, err
	}
	p++

	shares, err := parseDigits(msg[p : p+lenShares])
	if err != nil {
		return nil, fmt.Errorf("pitch: shares: %w", err)
	}
	p += lenShares

	symbol := msg[p : p+lenSymbol]
	p += lenSymbol

	price, err := parsePrice(msg[p : p+lenPriceInt+lenPriceDec])
	if err != nil {
		return nil, err
	}
	p += lenPriceInt + lenPriceDec

	m := &AddOrder{
		Timestamp: uint32(ts),
		OrderID:   orderID,
		Side:      side,
		Shares:    shares,
		Symbol:    symbol,
		Price:     price,
		Display:   msg[p],
	}
	p++
	if mtype == TypeAddLong {
		m.ParticipantID = msg[p : p+lenPartID]
	}
	return m, nil
}

// ParseCancelOrder decodes a cancel-order message.
func ParseCancelOrder(msg string) (*CancelOrder, error) {
	if len(msg) != cancelMsgLen {
		return nil, fmt.Errorf("pitch: cancel message length %d, want %d", len(msg), cancelMsgLen)
	}
	if msg[lenTimestamp] != TypeCancel {
		return nil, fmt.Errorf("pitch: unexpected cancel type %q", msg[lenTimestamp])
	}

	ts, err := parseDigits(msg[:lenTimestamp])
	if err != nil {
		return nil, fmt.Errorf("pitch: timestamp: %w", err)
	}

	p := lenTimestamp + 1
	orderID, err := parseBase36(msg[p : p+lenOrderID])
	if err != nil {
		return nil, fmt.Errorf("pitch: order id: %w", err)
	}
	p += lenOrderID

	shares, err := parseDigits(msg[p : p+lenShares])
	if err != nil {
		return nil, fmt.Errorf("pitch: shares: %w", err)
	}

	return &CancelOrder{Timestamp: uint32(ts), OrderID: orderID, Shares: shares}, nil
}

// parsePrice composes the two fixed-point digit groups into integer ticks.
func parsePrice(s string) (int64, error) {
	intPart, err := parseDigits(s[:lenPriceInt])
	if err != nil {
		return 0, fmt.Errorf("pitch: price: %w", err)
	}
	decPart, err := parseDigits(s[lenPriceInt:])
	if err != nil {
		return 0, fmt.Errorf("pitch: price: %w", err)
	}
	return intPart*priceScale + decPart, nil
}

func parseSide(c byte) (book.Side, error) {
	switch c {
	case 'B':
		return book.Buy, nil
	case 'S':
		return book.Sell, nil
	default:
		return 0, fmt.Errorf("pitch: unknown side %q", c)
	}
}

// parseDigits parses a fixed-width decimal field. Leading zeros are the
// norm on this wire.
func parseDigits(s string) (int64, error) {
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil || v < 0 {
		return 0, fmt.Errorf("bad digit field %q", s)
	}
	return v, nil
}

// parseBase36 parses the 12-character base-36 order id.
func parseBase36(s string) (uint64, error) {
	v, err := strconv.ParseUint(s, 36, 64)
	if err != nil {
		return 0, fmt.Errorf("bad base36 field %q", s)
	}
	return v, nil
}
