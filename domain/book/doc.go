// Package book implements the in-memory limit order book for a single
// instrument: a continuous double auction with price-time priority.
// Resting orders are grouped into per-price FIFO buckets held in two
// red-black trees (bids and asks), and incoming limit orders are matched
// against contra-side liquidity before any remainder rests.
//
// The book is single-writer and performs no internal locking. One logical
// thread of control must own each LimitOrderBook instance per call;
// coordinating concurrent readers (depth snapshots, quote publishing)
// is the responsibility of the wrapping service layer.
package book
