// Package service orchestrates the core components of the matching
// engine: the limit order book, the entry journal, the execution
// outbox, snapshots, and memory reclamation.
//
// It provides a clean API for placing, cancelling, and querying
// orders, decoupled from network transports like gRPC and Kafka.
package service
