// Package broadcaster drains the execution outbox to Kafka. It retries
// until the broker acknowledges, then garbage-collects the entry, so
// every execution is delivered at least once across restarts.
package broadcaster

import (
	"context"
	"encoding/binary"
	"time"

	"github.com/IBM/sarama"
	"go.uber.org/zap"

	exitwal "pitchbook/infra/wal/exit"
)

type Broadcaster struct {
	outbox   *exitwal.Outbox
	producer sarama.SyncProducer
	topic    string
	interval time.Duration
	log      *zap.Logger
}

func New(
	outbox *exitwal.Outbox,
	brokers []string,
	topic string,
	interval time.Duration,
	log *zap.Logger,
) (*Broadcaster, error) {
	cfg := sarama.NewConfig()
	cfg.Producer.Return.Successes = true
	cfg.Producer.RequiredAcks = sarama.WaitForAll
	cfg.Producer.Retry.Max = 5

	producer, err := sarama.NewSyncProducer(brokers, cfg)
	if err != nil {
		return nil, err
	}

	return &Broadcaster{
		outbox:   outbox,
		producer: producer,
		topic:    topic,
		interval: interval,
		log:      log,
	}, nil
}

// Start launches the drain loop.
func (b *Broadcaster) Start(ctx context.Context) {
	b.log.Info("broadcaster started", zap.String("topic", b.topic))

	go func() {
		ticker := time.NewTicker(b.interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				b.drainOnce()
			}
		}
	}()
}

// drainOnce walks every pending entry in sequence order. The SENT mark
// goes down before the publish, so a crash mid-send leaves the entry
// pending and it is retried on the next pass; consumers must tolerate
// duplicates.
func (b *Broadcaster) drainOnce() {
	_ = b.outbox.ScanPending(func(seq uint64, rec exitwal.Record) error {
		if err := b.outbox.MarkSent(seq); err != nil {
			return err
		}

		key := make([]byte, 8)
		binary.BigEndian.PutUint64(key, seq)
		msg := &sarama.ProducerMessage{
			Topic: b.topic,
			Key:   sarama.ByteEncoder(key),
			Value: sarama.ByteEncoder(rec.Payload),
		}

		if _, _, err := b.producer.SendMessage(msg); err != nil {
			b.log.Warn("publish failed, will retry",
				zap.Uint64("exec_seq", seq), zap.Error(err))
			_ = b.outbox.MarkFailed(seq)
			return nil // keep draining later entries
		}

		if err := b.outbox.MarkAcked(seq); err != nil {
			return err
		}
		return b.outbox.Delete(seq)
	})
}

func (b *Broadcaster) Close() error {
	return b.producer.Close()
}
