package order

import "errors"

var (
	ErrOrderNotFound    = errors.New("order not found")
	ErrInvalidQuantity  = errors.New("quantity must not be negative")
	ErrNoItemsRequested = errors.New("order has no items")
)
