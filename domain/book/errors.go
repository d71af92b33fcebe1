package book

import (
	"errors"
	"fmt"
)

var (
	// ErrOrderNotFound is returned by cancels referencing an unknown or
	// already-terminal order id. The book is left untouched.
	ErrOrderNotFound = errors.New("book: order not found")

	// ErrInvalidOrder is returned when an incoming order is rejected at
	// intake: non-positive volume or price, an unrecognized side, or an
	// id that already rests in the book. No state is mutated.
	ErrInvalidOrder = errors.New("book: invalid order")
)

// corrupt signals silent book corruption: a negative aggregate volume or a
// resident bucket with zero volume. This must never happen in correct
// operation, and continuing would poison all subsequent matching.
func corrupt(format string, args ...any) {
	panic(fmt.Sprintf("book: corrupt state: "+format, args...))
}
