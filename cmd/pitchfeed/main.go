// pitchfeed reads a PITCH message file, normalizes add and cancel
// messages to feed envelopes, and publishes them to the intake topic.
package main

import (
	"bufio"
	"context"
	"encoding/json"
	"flag"
	"os"
	"strings"

	"go.uber.org/zap"

	"pitchbook/config"
	"pitchbook/feed"
	"pitchbook/feed/pitch"
	"pitchbook/infra/kafka"
)

func main() {
	file := flag.String("file", "", "PITCH message file, one message per line")
	flag.Parse()

	log, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	defer func() { _ = log.Sync() }()

	if *file == "" {
		log.Fatal("missing -file")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("config load failed", zap.Error(err))
	}

	f, err := os.Open(*file)
	if err != nil {
		log.Fatal("open feed file failed", zap.Error(err))
	}
	defer f.Close()

	producer := kafka.NewProducer(cfg.Kafka.Brokers, cfg.Kafka.IntakeTopic)
	defer producer.Close()

	ctx := context.Background()
	var published, skipped int

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		// Some captures prefix each message with 'S' (sequenced unit).
		line := strings.TrimPrefix(strings.TrimRight(scanner.Text(), "\r\n"), "S")
		if line == "" {
			continue
		}

		env, err := toEnvelope(line)
		if err != nil {
			log.Warn("skipping message", zap.String("msg", line), zap.Error(err))
			skipped++
			continue
		}
		if env == nil {
			skipped++ // message type the engine does not consume
			continue
		}

		value, err := json.Marshal(env)
		if err != nil {
			log.Fatal("marshal failed", zap.Error(err))
		}
		if err := producer.Send(ctx, nil, value); err != nil {
			log.Fatal("publish failed", zap.Error(err))
		}
		published++
	}
	if err := scanner.Err(); err != nil {
		log.Fatal("read feed file failed", zap.Error(err))
	}

	log.Info("feed published",
		zap.Int("published", published), zap.Int("skipped", skipped))
}

func toEnvelope(line string) (*feed.Envelope, error) {
	mtype, err := pitch.MessageType(line)
	if err != nil {
		return nil, err
	}

	switch mtype {
	case pitch.TypeAddShort, pitch.TypeAddLong:
		add, err := pitch.ParseAddOrder(line)
		if err != nil {
			return nil, err
		}
		intent := add.Intent()
		return &feed.Envelope{Type: feed.TypeAdd, Add: &intent}, nil

	case pitch.TypeCancel:
		cxl, err := pitch.ParseCancelOrder(line)
		if err != nil {
			return nil, err
		}
		cancel := cxl.Cancel()
		return &feed.Envelope{Type: feed.TypeCancel, Cancel: &cancel}, nil

	default:
		return nil, nil
	}
}
