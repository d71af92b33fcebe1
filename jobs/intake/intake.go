// Package intake consumes normalized feed events from Kafka and drives
// them into the order service. Events for other instruments are
// dropped; the engine is strictly single-instrument.
package intake

import (
	"context"
	"encoding/json"
	"strings"

	segmentio "github.com/segmentio/kafka-go"
	"go.uber.org/zap"

	"pitchbook/feed"
	"pitchbook/service"
)

type Consumer struct {
	svc    *service.OrderService
	reader *segmentio.Reader
	symbol string
	log    *zap.Logger
}

// sameSymbol compares instrument symbols ignoring the fixed-width
// padding PITCH carries, so "AAPL" and "AAPL  " select one instrument.
func sameSymbol(a, b string) bool {
	return strings.TrimSpace(a) == strings.TrimSpace(b)
}

func New(
	svc *service.OrderService,
	brokers []string,
	topic string,
	groupID string,
	symbol string,
	log *zap.Logger,
) *Consumer {
	return &Consumer{
		svc: svc,
		reader: segmentio.NewReader(segmentio.ReaderConfig{
			Brokers: brokers,
			Topic:   topic,
			GroupID: groupID,
		}),
		symbol: symbol,
		log:    log,
	}
}

// Run blocks consuming events until ctx is cancelled.
func (c *Consumer) Run(ctx context.Context) error {
	c.log.Info("intake started",
		zap.String("symbol", c.symbol), zap.String("topic", c.reader.Config().Topic))

	for {
		msg, err := c.reader.ReadMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return nil
			}
			return err
		}
		c.handle(msg.Value)
	}
}

func (c *Consumer) handle(value []byte) {
	var env feed.Envelope
	if err := json.Unmarshal(value, &env); err != nil {
		c.log.Warn("malformed intake event", zap.Error(err))
		return
	}

	switch env.Type {
	case feed.TypeAdd:
		if env.Add == nil {
			c.log.Warn("add event without payload")
			return
		}
		if !sameSymbol(env.Add.Symbol, c.symbol) {
			return
		}
		execs, _, err := c.svc.PlaceOrder(env.Add.OrderID, env.Add.Side, env.Add.Price, env.Add.Volume)
		if err != nil {
			c.log.Warn("order rejected",
				zap.Uint64("order_id", env.Add.OrderID), zap.Error(err))
			return
		}
		if len(execs) > 0 {
			c.log.Debug("order matched",
				zap.Uint64("order_id", env.Add.OrderID), zap.Int("fills", len(execs)))
		}

	case feed.TypeCancel:
		if env.Cancel == nil {
			c.log.Warn("cancel event without payload")
			return
		}
		if env.Cancel.Symbol != "" && !sameSymbol(env.Cancel.Symbol, c.symbol) {
			return
		}
		if err := c.svc.CancelOrder(env.Cancel.OrderID); err != nil {
			// Cancels for unknown ids are routine: the order may have
			// fully filled before the cancel arrived.
			if !service.IsNotFound(err) {
				c.log.Warn("cancel failed",
					zap.Uint64("order_id", env.Cancel.OrderID), zap.Error(err))
			}
		}

	default:
		c.log.Warn("unknown intake event type", zap.String("type", env.Type))
	}
}

func (c *Consumer) Close() error {
	return c.reader.Close()
}
