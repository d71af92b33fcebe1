package exit

import (
	"encoding/binary"
	"errors"
)

// Execution is the wire form of one trade stored in the outbox.
type Execution struct {
	Seq        uint64
	RestingID  uint64
	IncomingID uint64
	Price      int64
	Volume     int64
	TakerSide  uint8
}

const executionLen = 8 + 8 + 8 + 8 + 8 + 1

// EncodeExecution packs an execution into its fixed binary form:
// [seq:8][restingID:8][incomingID:8][price:8][volume:8][takerSide:1].
func EncodeExecution(e Execution) []byte {
	buf := make([]byte, executionLen)
	binary.BigEndian.PutUint64(buf[0:8], e.Seq)
	binary.BigEndian.PutUint64(buf[8:16], e.RestingID)
	binary.BigEndian.PutUint64(buf[16:24], e.IncomingID)
	binary.BigEndian.PutUint64(buf[24:32], uint64(e.Price))
	binary.BigEndian.PutUint64(buf[32:40], uint64(e.Volume))
	buf[40] = e.TakerSide
	return buf
}

// DecodeExecution parses the fixed binary form.
func DecodeExecution(b []byte) (Execution, error) {
	if len(b) != executionLen {
		return Execution{}, errors.New("invalid execution length")
	}
	return Execution{
		Seq:        binary.BigEndian.Uint64(b[0:8]),
		RestingID:  binary.BigEndian.Uint64(b[8:16]),
		IncomingID: binary.BigEndian.Uint64(b[16:24]),
		Price:      int64(binary.BigEndian.Uint64(b[24:32])),
		Volume:     int64(binary.BigEndian.Uint64(b[32:40])),
		TakerSide:  b[40],
	}, nil
}
