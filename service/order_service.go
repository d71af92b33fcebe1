package service

import (
	"errors"
	"fmt"
	"sync"

	"go.uber.org/zap"

	"pitchbook/domain/book"
	"pitchbook/infra/memory"
	"pitchbook/infra/sequence"
	entrywal "pitchbook/infra/wal/entry"
	exitwal "pitchbook/infra/wal/exit"
	"pitchbook/snapshot"
)

// ErrOrderNotFound mirrors the domain error at the service boundary.
var ErrOrderNotFound = book.ErrOrderNotFound

// OrderService is the only write entry point into the engine. A mutex
// serializes commands; the book itself stays single-writer and
// lock-free internally.
//
// Durability ordering per command: validate, journal, apply, outbox.
// A command is never applied before its journal record is synced.
type OrderService struct {
	mu sync.Mutex

	lob    *book.LimitOrderBook
	pool   *memory.Pool[book.Order]
	ring   *memory.RetireRing
	reader *snapshot.Reader

	journal *entrywal.WAL
	outbox  *exitwal.Outbox

	seqGen  *sequence.Sequencer
	execSeq *sequence.Sequencer

	log *zap.Logger
}

// NewOrderService wires all dependencies. No globals.
func NewOrderService(
	lob *book.LimitOrderBook,
	pool *memory.Pool[book.Order],
	ring *memory.RetireRing,
	reader *snapshot.Reader,
	journal *entrywal.WAL,
	outbox *exitwal.Outbox,
	seqGen *sequence.Sequencer,
	log *zap.Logger,
) *OrderService {
	s := &OrderService{
		lob:     lob,
		pool:    pool,
		ring:    ring,
		reader:  reader,
		journal: journal,
		outbox:  outbox,
		seqGen:  seqGen,
		execSeq: sequence.New(0),
		log:     log,
	}

	// Terminal orders go through the retire ring so concurrent
	// snapshot readers never observe a recycled struct.
	lob.OnRetire(func(o *book.Order) {
		if !ring.Push(o) {
			pool.Put(o)
		}
	})

	return s
}

// ──────────────────────────────────────────────────────────
// Commands
// ──────────────────────────────────────────────────────────

// PlaceOrder submits a new limit order. It returns the executions the
// order generated, already persisted to the outbox, and the journal
// sequence assigned to the order.
func (s *OrderService) PlaceOrder(
	id uint64,
	side book.Side,
	price int64,
	volume int64,
) ([]exitwal.Execution, uint64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if volume <= 0 || price <= 0 || !side.Valid() {
		return nil, 0, book.ErrInvalidOrder
	}
	if s.lob.Resident(id) {
		return nil, 0, fmt.Errorf("%w: duplicate order id %d", book.ErrInvalidOrder, id)
	}

	seq := s.seqGen.Next()
	rec := entrywal.NewRecord(entrywal.RecordAdd, seq,
		entrywal.EncodeAdd(id, byte(side), price, volume))
	if err := s.journal.Append(rec); err != nil {
		return nil, 0, fmt.Errorf("journal add: %w", err)
	}
	if err := s.journal.Sync(); err != nil {
		return nil, 0, fmt.Errorf("journal sync: %w", err)
	}

	o := s.pool.Get()
	*o = book.Order{
		ID:     id,
		Side:   side,
		Price:  price,
		Volume: volume,
		Seq:    seq,
		Status: book.Active,
	}

	execs, err := s.lob.AddOrder(o)
	if err != nil {
		// Journaled but rejected. Replay skips rejected adds the same
		// way, so state stays consistent; log it loudly regardless.
		s.pool.Put(o)
		s.log.Error("order rejected after journaling",
			zap.Uint64("order_id", id), zap.Error(err))
		return nil, 0, err
	}

	out := make([]exitwal.Execution, 0, len(execs))
	for _, e := range execs {
		ex := exitwal.Execution{
			Seq:        s.execSeq.Next(),
			RestingID:  e.RestingID,
			IncomingID: e.IncomingID,
			Price:      e.Price,
			Volume:     e.Qty,
			TakerSide:  byte(side),
		}
		if err := s.outbox.Put(ex.Seq, exitwal.EncodeExecution(ex)); err != nil {
			return out, seq, fmt.Errorf("outbox put: %w", err)
		}
		out = append(out, ex)
	}

	return out, seq, nil
}

// CancelOrder removes a resting order. Cancels are journaled only when
// the order is actually resident, keeping the journal replayable.
func (s *OrderService) CancelOrder(id uint64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.lob.Resident(id) {
		return ErrOrderNotFound
	}

	seq := s.seqGen.Next()
	rec := entrywal.NewRecord(entrywal.RecordCancel, seq, entrywal.EncodeCancel(id))
	if err := s.journal.Append(rec); err != nil {
		return fmt.Errorf("journal cancel: %w", err)
	}
	if err := s.journal.Sync(); err != nil {
		return fmt.Errorf("journal sync: %w", err)
	}

	if err := s.lob.RemoveOrder(id); err != nil {
		// Resident was checked under the same lock; this is corruption.
		s.log.Error("cancel of resident order failed",
			zap.Uint64("order_id", id), zap.Error(err))
		return err
	}
	return nil
}

// ──────────────────────────────────────────────────────────
// Queries
// ──────────────────────────────────────────────────────────

// DepthLevel is one aggregated price level.
type DepthLevel struct {
	Price  int64
	Volume int64
}

// TopOfBook returns the best bid and ask, zero when a side is empty.
func (s *OrderService) TopOfBook() (bid, ask int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lob.BestBid(), s.lob.BestAsk()
}

// VolumeAt returns the aggregate resting volume at a price level.
func (s *OrderService) VolumeAt(price int64, side book.Side) int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lob.VolumeAt(price, side)
}

// Depth returns up to maxLevels aggregated levels, best first.
// maxLevels <= 0 means all levels.
func (s *OrderService) Depth(side book.Side, maxLevels int) []DepthLevel {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.reader.Begin()
	defer s.reader.End()

	it := s.lob.Bids()
	if side == book.Sell {
		it = s.lob.Asks()
	}

	var out []DepthLevel
	for it.Next() {
		out = append(out, DepthLevel{Price: it.Price(), Volume: it.Volume()})
		if maxLevels > 0 && len(out) >= maxLevels {
			break
		}
	}
	return out
}

// Resident reports whether an order currently rests in the book.
func (s *OrderService) Resident(id uint64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lob.Resident(id)
}

// ──────────────────────────────────────────────────────────
// Maintenance
// ──────────────────────────────────────────────────────────

// WriteSnapshot persists the current book and drops journal segments
// the snapshot covers.
func (s *OrderService) WriteSnapshot(dir string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	seq := s.seqGen.Current()
	w := &snapshot.Writer{Dir: dir}
	if err := w.Write(seq, s.lob); err != nil {
		return err
	}
	if err := s.journal.TruncateBefore(seq); err != nil {
		s.log.Warn("journal truncation failed", zap.Error(err))
	}
	s.log.Info("snapshot written", zap.Uint64("seq", seq))
	return nil
}

// AdvanceEpoch performs safe reclamation of retired orders. Intended to
// be called periodically by a background job.
func (s *OrderService) AdvanceEpoch() int {
	return memory.AdvanceEpochAndReclaim(s.ring, s.pool, s.reader.Epoch())
}

// IsNotFound reports whether err is the not-found rejection.
func IsNotFound(err error) bool {
	return errors.Is(err, book.ErrOrderNotFound)
}

// IsInvalid reports whether err is a validation rejection.
func IsInvalid(err error) bool {
	return errors.Is(err, book.ErrInvalidOrder)
}
