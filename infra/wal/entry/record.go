package entry

import (
	"encoding/binary"
	"fmt"
	"time"
)

type RecordType uint8

const (
	RecordAdd RecordType = iota
	RecordCancel
)

// Record is one accepted book mutation: an add or a cancel. Replaying
// the record stream against a fresh engine reconstructs its exact state.
type Record struct {
	Type RecordType
	Seq  uint64
	Time int64
	Data []byte
}

// NewRecord stamps a record with the current time.
func NewRecord(t RecordType, seq uint64, data []byte) *Record {
	return &Record{
		Type: t,
		Seq:  seq,
		Time: time.Now().UnixNano(),
		Data: data,
	}
}

// Add-record payload: [orderID:8][side:1][price:8][volume:8].
const addPayloadLen = 8 + 1 + 8 + 8

// EncodeAdd builds the payload of a RecordAdd. The side byte is 0 for
// buy, 1 for sell, matching the engine's enum values.
func EncodeAdd(orderID uint64, side byte, price, volume int64) []byte {
	buf := make([]byte, addPayloadLen)
	binary.BigEndian.PutUint64(buf[0:8], orderID)
	buf[8] = side
	binary.BigEndian.PutUint64(buf[9:17], uint64(price))
	binary.BigEndian.PutUint64(buf[17:25], uint64(volume))
	return buf
}

// DecodeAdd parses a RecordAdd payload.
func DecodeAdd(data []byte) (orderID uint64, side byte, price, volume int64, err error) {
	if len(data) != addPayloadLen {
		return 0, 0, 0, 0, fmt.Errorf("entry: add payload length %d, want %d", len(data), addPayloadLen)
	}
	orderID = binary.BigEndian.Uint64(data[0:8])
	side = data[8]
	price = int64(binary.BigEndian.Uint64(data[9:17]))
	volume = int64(binary.BigEndian.Uint64(data[17:25]))
	return orderID, side, price, volume, nil
}

// Cancel-record payload: [orderID:8].
const cancelPayloadLen = 8

// EncodeCancel builds the payload of a RecordCancel.
func EncodeCancel(orderID uint64) []byte {
	buf := make([]byte, cancelPayloadLen)
	binary.BigEndian.PutUint64(buf, orderID)
	return buf
}

// DecodeCancel parses a RecordCancel payload.
func DecodeCancel(data []byte) (uint64, error) {
	if len(data) != cancelPayloadLen {
		return 0, fmt.Errorf("entry: cancel payload length %d, want %d", len(data), cancelPayloadLen)
	}
	return binary.BigEndian.Uint64(data), nil
}
