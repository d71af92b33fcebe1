// Package config loads engine configuration from the environment, with
// an optional .env file for local development.
package config

import (
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds the full engine configuration.
type Config struct {
	Symbol string `env:"SYMBOL" envDefault:"AAPL"`

	GRPCAddr string `env:"GRPC_ADDR" envDefault:":50051"`

	WALDir      string `env:"WAL_DIR" envDefault:"./data/journal"`
	SegmentSize int64  `env:"WAL_SEGMENT_SIZE" envDefault:"2097152"`
	OutboxDir   string `env:"OUTBOX_DIR" envDefault:"./data/outbox"`
	SnapshotDir string `env:"SNAPSHOT_DIR" envDefault:"./data/snapshots"`

	SnapshotInterval time.Duration `env:"SNAPSHOT_INTERVAL" envDefault:"1m"`
	DrainInterval    time.Duration `env:"DRAIN_INTERVAL" envDefault:"250ms"`
	QuoteInterval    time.Duration `env:"QUOTE_INTERVAL" envDefault:"1s"`
	QuoteLevels      int           `env:"QUOTE_LEVELS" envDefault:"10"`

	Kafka KafkaConfig `envPrefix:"KAFKA_"`
}

// KafkaConfig holds broker addresses and topic names.
type KafkaConfig struct {
	Brokers        []string `env:"BROKERS" envDefault:"localhost:9092"`
	ExecutionTopic string   `env:"EXECUTION_TOPIC" envDefault:"executions"`
	QuoteTopic     string   `env:"QUOTE_TOPIC" envDefault:"quotes"`
	IntakeTopic    string   `env:"INTAKE_TOPIC" envDefault:"orders"`
	IntakeGroupID  string   `env:"INTAKE_GROUP_ID" envDefault:"pitchbook"`
}

// Load reads the environment into a Config.
func Load() (Config, error) {
	_ = godotenv.Load() // .env is optional

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
