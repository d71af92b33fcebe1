package service

import (
	"errors"
	"fmt"

	"go.uber.org/zap"

	"pitchbook/domain/book"
	"pitchbook/infra/memory"
	"pitchbook/infra/sequence"
	entrywal "pitchbook/infra/wal/entry"
)

// ReplayFromWAL rebuilds in-memory state from the entry journal. It
// must run before the service accepts traffic, after any snapshot has
// been loaded; records at or below baseSeq are already covered by the
// snapshot and are skipped. Executions regenerated during replay are
// not written to the outbox: they were persisted there when the order
// was first applied.
//
// The outbox is never replayed.
func ReplayFromWAL(
	walDir string,
	baseSeq uint64,
	lob *book.LimitOrderBook,
	pool *memory.Pool[book.Order],
	seqGen *sequence.Sequencer,
	log *zap.Logger,
) error {
	// During replay there are no concurrent readers; retire straight
	// back to the pool.
	lob.OnRetire(pool.Put)

	var applied int
	lastSeq, err := entrywal.Replay(walDir, func(rec *entrywal.Record) error {
		if rec.Seq <= baseSeq {
			return nil
		}

		switch rec.Type {
		case entrywal.RecordAdd:
			id, side, price, volume, err := entrywal.DecodeAdd(rec.Data)
			if err != nil {
				return err
			}
			o := pool.Get()
			*o = book.Order{
				ID:     id,
				Side:   book.Side(side),
				Price:  price,
				Volume: volume,
				Seq:    rec.Seq,
				Status: book.Active,
			}
			if _, err := lob.AddOrder(o); err != nil {
				// The live path rejects the same record without
				// applying it, so skipping keeps replay in lockstep.
				pool.Put(o)
				log.Warn("skipping rejected add during replay",
					zap.Uint64("seq", rec.Seq),
					zap.Uint64("order_id", id),
					zap.Error(err))
				return nil
			}

		case entrywal.RecordCancel:
			id, err := entrywal.DecodeCancel(rec.Data)
			if err != nil {
				return err
			}
			// A cancel whose order is already gone is a no-op; the
			// snapshot may cover the removal.
			if err := lob.RemoveOrder(id); err != nil && !errors.Is(err, book.ErrOrderNotFound) {
				return fmt.Errorf("replay cancel seq %d: %w", rec.Seq, err)
			}

		default:
			return fmt.Errorf("replay: unknown record type %d at seq %d", rec.Type, rec.Seq)
		}

		applied++
		return nil
	})
	if err != nil {
		return err
	}

	if lastSeq < baseSeq {
		lastSeq = baseSeq
	}
	seqGen.Reset(lastSeq)

	log.Info("journal replay complete",
		zap.Uint64("base_seq", baseSeq),
		zap.Uint64("last_seq", lastSeq),
		zap.Int("applied", applied))
	return nil
}
