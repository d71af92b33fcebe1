// Package feed defines the normalized order-intent events a feed decoder
// hands to the engine, pre-filtered to one instrument. The engine never
// sees wire formats; decoders (see feed/pitch) produce these values with
// prices already composed to exact integer ticks.
package feed

import "pitchbook/domain/book"

// Intent is a normalized add-order event.
type Intent struct {
	OrderID uint64    `json:"orderId"`
	Side    book.Side `json:"side"`
	Price   int64     `json:"price"`
	Volume  int64     `json:"volume"`
	Symbol  string    `json:"symbol"`
}

// Cancel is a normalized cancel event. Only the id matters to the engine.
type Cancel struct {
	OrderID uint64 `json:"orderId"`
	Symbol  string `json:"symbol,omitempty"`
}

// Envelope is the JSON wire form of one feed event on the intake topic.
type Envelope struct {
	Type   string  `json:"type"` // "add" or "cancel"
	Add    *Intent `json:"add,omitempty"`
	Cancel *Cancel `json:"cancel,omitempty"`
}

const (
	TypeAdd    = "add"
	TypeCancel = "cancel"
)
