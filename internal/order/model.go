package order

import "time"

// Status is the order lifecycle state. An order is persisted once in
// CREATED, then exactly once more in a terminal state.
type Status string

const (
	StatusCreated Status = "CREATED"
	StatusPaid    Status = "PAID"
	StatusFailed  Status = "FAILED"
)

type Order struct {
	ID         uint        `json:"id"`
	ExternalID string      `json:"external_id"`
	UserID     uint        `json:"user_id"`
	Items      []OrderItem `json:"items"`
	Total      float64     `json:"total"`
	Status     Status      `json:"status"`
	CreatedAt  time.Time   `json:"created_at"`
	UpdatedAt  time.Time   `json:"updated_at"`
}

type OrderItem struct {
	ID        uint    `json:"id"`
	OrderID   uint    `json:"order_id"`
	ProductID uint    `json:"product_id"`
	Quantity  int     `json:"quantity"`
	// Price is the unit price snapshotted when the order was assembled.
	// It is never recomputed from the catalog afterwards.
	Price float64 `json:"price"`
}

// ItemRequest is a client-requested line item. Client prices are never
// accepted; the catalog price at assembly time is authoritative.
type ItemRequest struct {
	ProductID uint `json:"product_id"`
	Quantity  int  `json:"quantity"`
}
