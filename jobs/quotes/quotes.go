// Package quotes periodically publishes top-of-book and aggregated
// depth to a Kafka topic for downstream market-data consumers.
package quotes

import (
	"context"
	"encoding/json"
	"time"

	"go.uber.org/zap"

	"pitchbook/domain/book"
	"pitchbook/infra/kafka"
	"pitchbook/service"
)

// Quote is the published market-data message.
type Quote struct {
	Symbol string               `json:"symbol"`
	Bid    int64                `json:"bid"`
	Ask    int64                `json:"ask"`
	Bids   []service.DepthLevel `json:"bids"`
	Asks   []service.DepthLevel `json:"asks"`
	Time   int64                `json:"time"`
}

type Publisher struct {
	svc      *service.OrderService
	producer *kafka.Producer
	symbol   string
	levels   int
	interval time.Duration
	log      *zap.Logger
}

func New(
	svc *service.OrderService,
	producer *kafka.Producer,
	symbol string,
	levels int,
	interval time.Duration,
	log *zap.Logger,
) *Publisher {
	return &Publisher{
		svc:      svc,
		producer: producer,
		symbol:   symbol,
		levels:   levels,
		interval: interval,
		log:      log,
	}
}

// Start launches the publish loop.
func (p *Publisher) Start(ctx context.Context) {
	p.log.Info("quote publisher started",
		zap.String("symbol", p.symbol), zap.Duration("interval", p.interval))

	go func() {
		ticker := time.NewTicker(p.interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				p.publishOnce(ctx)
			}
		}
	}()
}

func (p *Publisher) publishOnce(ctx context.Context) {
	bid, ask := p.svc.TopOfBook()
	q := Quote{
		Symbol: p.symbol,
		Bid:    bid,
		Ask:    ask,
		Bids:   p.svc.Depth(book.Buy, p.levels),
		Asks:   p.svc.Depth(book.Sell, p.levels),
		Time:   time.Now().UnixNano(),
	}

	value, err := json.Marshal(q)
	if err != nil {
		p.log.Error("quote marshal failed", zap.Error(err))
		return
	}
	if err := p.producer.Send(ctx, []byte(p.symbol), value); err != nil {
		p.log.Warn("quote publish failed", zap.Error(err))
	}
}
