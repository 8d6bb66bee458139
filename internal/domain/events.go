package domain

import "time"

type OrderEvent struct {
	EventType string    `json:"event_type"`
	OrderID   string    `json:"order_id"`
	TableID   string    `json:"table_id"`
	WaiterID  string    `json:"waiter_id"`
	Total     float64   `json:"total"`
	Timestamp time.Time `json:"timestamp"`
}

type OrderEventRecord struct {
	ID        int       `json:"id"`
	OrderID   string    `json:"order_id"`
	EventType string    `json:"event_type"`
	TableID   string    `json:"table_id"`
	WaiterID  string    `json:"waiter_id"`
	Total     float64   `json:"total"`
	CreatedAt time.Time `json:"created_at"`
}

const (
	EventOrderCreated = "order.created"
)
