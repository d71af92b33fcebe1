package entry

import (
	"encoding/binary"
	"fmt"
	"io"
	"os"

	"pitchbook/infra/wal"
)

const frameHeaderLen = 1 + 8 + 8 + 4

// ReplayHandler consumes one journal record. Returning an error aborts
// the replay.
type ReplayHandler func(*Record) error

// Replay walks every segment in order, verifies framing and sequence
// monotonicity, and hands each record to fn. It returns the last
// sequence seen.
func Replay(dir string, fn ReplayHandler) (lastSeq uint64, err error) {
	files, err := listSegments(dir)
	if err != nil {
		return 0, err
	}

	for _, path := range files {
		f, err := os.Open(path)
		if err != nil {
			return lastSeq, err
		}

		for {
			rec, err := readRecord(f)
			if err != nil {
				if err == io.EOF {
					break
				}
				_ = f.Close()
				return lastSeq, fmt.Errorf("entry: %s: %w", path, err)
			}

			if rec.Seq <= lastSeq {
				_ = f.Close()
				return lastSeq, fmt.Errorf("entry: non-monotonic seq %d after %d", rec.Seq, lastSeq)
			}
			lastSeq = rec.Seq

			if err := fn(rec); err != nil {
				_ = f.Close()
				return lastSeq, err
			}
		}
		_ = f.Close()
	}

	return lastSeq, nil
}

// MaxSeq returns the highest sequence in the journal without invoking a
// handler.
func MaxSeq(dir string) (uint64, error) {
	return Replay(dir, func(*Record) error { return nil })
}

func maxSeqInSegment(path string) (uint64, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, err
	}
	defer f.Close()

	var maxSeq uint64
	for {
		rec, err := readRecord(f)
		if err != nil {
			if err == io.EOF {
				return maxSeq, nil
			}
			return maxSeq, err
		}
		maxSeq = rec.Seq
	}
}

func readRecord(r io.Reader) (*Record, error) {
	header := make([]byte, frameHeaderLen)
	if _, err := io.ReadFull(r, header); err != nil {
		if err == io.ErrUnexpectedEOF {
			return nil, fmt.Errorf("entry: torn record header")
		}
		return nil, err
	}

	t := RecordType(header[0])
	seq := binary.BigEndian.Uint64(header[1:9])
	ts := binary.BigEndian.Uint64(header[9:17])
	l := binary.BigEndian.Uint32(header[17:21])

	body := make([]byte, l+4)
	if _, err := io.ReadFull(r, body); err != nil {
		return nil, fmt.Errorf("entry: torn record body")
	}

	payload := body[:l]
	crc := binary.BigEndian.Uint32(body[l:])
	if !wal.CRC32Valid(append(header, payload...), crc) {
		return nil, fmt.Errorf("entry: crc mismatch at seq %d", seq)
	}

	return &Record{
		Type: t,
		Seq:  seq,
		Time: int64(ts),
		Data: payload,
	}, nil
}
