// Package exit implements the durable execution outbox. Every trade the
// engine produces is written here before it is disseminated, so a crash
// between matching and publishing never loses an execution.
package exit

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"time"

	"github.com/cockroachdb/pebble"
)

// -------------------- State --------------------

type State uint8

const (
	StateNew State = iota
	StateSent
	StateAcked
	StateFailed
)

func (s State) String() string {
	switch s {
	case StateNew:
		return "NEW"
	case StateSent:
		return "SENT"
	case StateAcked:
		return "ACKED"
	case StateFailed:
		return "FAILED"
	default:
		return "UNKNOWN"
	}
}

// -------------------- Record --------------------

// Record is one outbox entry: delivery bookkeeping plus the encoded
// execution itself.
type Record struct {
	State       State
	Retries     uint32
	LastAttempt int64
	Payload     []byte
}

const recordHeaderLen = 1 + 4 + 8 + 4

// binary encoding: [state:1][retries:4][lastAttempt:8][len:4][payload]
func encodeRecord(r Record) []byte {
	buf := make([]byte, recordHeaderLen+len(r.Payload))
	buf[0] = byte(r.State)
	binary.BigEndian.PutUint32(buf[1:5], r.Retries)
	binary.BigEndian.PutUint64(buf[5:13], uint64(r.LastAttempt))
	binary.BigEndian.PutUint32(buf[13:17], uint32(len(r.Payload)))
	copy(buf[recordHeaderLen:], r.Payload)
	return buf
}

func decodeRecord(b []byte) (Record, error) {
	if len(b) < recordHeaderLen {
		return Record{}, errors.New("invalid outbox record length")
	}
	l := binary.BigEndian.Uint32(b[13:17])
	if len(b) != recordHeaderLen+int(l) {
		return Record{}, errors.New("outbox record payload length mismatch")
	}
	payload := make([]byte, l)
	copy(payload, b[recordHeaderLen:])
	return Record{
		State:       State(b[0]),
		Retries:     binary.BigEndian.Uint32(b[1:5]),
		LastAttempt: int64(binary.BigEndian.Uint64(b[5:13])),
		Payload:     payload,
	}, nil
}

// -------------------- Outbox --------------------

type Outbox struct {
	db *pebble.DB
}

func Open(dir string) (*Outbox, error) {
	db, err := pebble.Open(dir, &pebble.Options{
		DisableWAL: false, // we WANT durability
	})
	if err != nil {
		return nil, err
	}
	return &Outbox{db: db}, nil
}

func (o *Outbox) Close() error {
	return o.db.Close()
}

// -------------------- API --------------------

// Put inserts a new outbox entry keyed by execution sequence.
func (o *Outbox) Put(execSeq uint64, payload []byte) error {
	rec := Record{
		State:       StateNew,
		Retries:     0,
		LastAttempt: 0,
		Payload:     payload,
	}
	return o.db.Set(keyFor(execSeq), encodeRecord(rec), pebble.Sync)
}

// Get returns the current record for an execution.
func (o *Outbox) Get(execSeq uint64) (Record, error) {
	val, closer, err := o.db.Get(keyFor(execSeq))
	if err != nil {
		return Record{}, err
	}
	defer closer.Close()

	return decodeRecord(val)
}

// MarkSent records a delivery attempt, bumping the retry counter.
func (o *Outbox) MarkSent(execSeq uint64) error {
	return o.updateState(execSeq, StateSent)
}

// MarkAcked records broker acknowledgement.
func (o *Outbox) MarkAcked(execSeq uint64) error {
	return o.updateState(execSeq, StateAcked)
}

// MarkFailed records a delivery failure. The entry stays eligible for
// the next drain pass.
func (o *Outbox) MarkFailed(execSeq uint64) error {
	return o.updateState(execSeq, StateFailed)
}

func (o *Outbox) updateState(execSeq uint64, state State) error {
	rec, err := o.Get(execSeq)
	if err != nil {
		return err
	}
	rec.State = state
	rec.LastAttempt = time.Now().UnixNano()
	if state == StateSent {
		rec.Retries++
	}
	return o.db.Set(keyFor(execSeq), encodeRecord(rec), pebble.Sync)
}

// Delete removes ACKED records (cleanup).
func (o *Outbox) Delete(execSeq uint64) error {
	return o.db.Delete(keyFor(execSeq), pebble.Sync)
}

// -------------------- Scan --------------------

// ScanPending iterates entries still awaiting acknowledgement: NEW,
// FAILED, and SENT entries left behind by a crash mid-send.
func (o *Outbox) ScanPending(fn func(execSeq uint64, rec Record) error) error {
	return o.scan(func(rec Record) bool {
		return rec.State != StateAcked
	}, fn)
}

// ScanByState iterates all entries in the given state.
func (o *Outbox) ScanByState(state State, fn func(execSeq uint64, rec Record) error) error {
	return o.scan(func(rec Record) bool {
		return rec.State == state
	}, fn)
}

func (o *Outbox) scan(keep func(Record) bool, fn func(uint64, Record) error) error {
	iter, err := o.db.NewIter(&pebble.IterOptions{
		LowerBound: []byte("exec/"),
		UpperBound: []byte("exec/~"),
	})
	if err != nil {
		return err
	}
	defer iter.Close()

	for iter.First(); iter.Valid(); iter.Next() {
		rec, err := decodeRecord(iter.Value())
		if err != nil {
			return err
		}
		if !keep(rec) {
			continue
		}

		seq, err := parseKey(iter.Key())
		if err != nil {
			return err
		}
		if err := fn(seq, rec); err != nil {
			return err
		}
	}
	return iter.Error()
}

// -------------------- Helpers --------------------

func keyFor(execSeq uint64) []byte {
	return []byte(fmt.Sprintf("exec/%020d", execSeq))
}

func parseKey(b []byte) (uint64, error) {
	var seq uint64
	_, err := fmt.Sscanf(string(bytes.TrimPrefix(b, []byte("exec/"))), "%d", &seq)
	return seq, err
}
