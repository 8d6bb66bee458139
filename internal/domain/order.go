package domain

import (
	"encoding/json"
	"time"
)

const (
	OrderStatusPending   = "pending"
	OrderStatusPreparing = "preparing"
	OrderStatusServed    = "served"
	OrderStatusPaid      = "paid"
	OrderStatusCancelled = "cancelled"
)

// MenuItemRef points an order line at a menu item. Menu ids are serial
// integers but stored items are opaque documents, so clients send the
// reference as either a JSON number or a string. Both decode to text.
type MenuItemRef string

func (m *MenuItemRef) UnmarshalJSON(data []byte) error {
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*m = MenuItemRef(s)
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*m = MenuItemRef(n.String())

	return nil
}

// OrderItem is a snapshot of a menu selection captured at order-creation
// time. Later menu edits never touch it.
type OrderItem struct {
	MenuItemID MenuItemRef `json:"menuItemId"`
	Name       string      `json:"name,omitempty"`
	Quantity   int         `json:"quantity"`
	Price      float64     `json:"price"`
}

type Order struct {
	ID            string      `json:"id"`
	TableID       string      `json:"tableId"`
	Items         []OrderItem `json:"items"`
	Status        string      `json:"status"`
	Subtotal      float64     `json:"subtotal"`
	Tax           float64     `json:"tax"`
	Total         float64     `json:"total"`
	WaiterID      string      `json:"waiterId"`
	WaiterName    string      `json:"waiterName"`
	EstimatedTime string      `json:"estimatedTime,omitempty"`
	CreatedAt     time.Time   `json:"createdAt"`
	UpdatedAt     time.Time   `json:"updatedAt"`
}

func ValidOrderStatus(status string) bool {
	switch status {
	case OrderStatusPending, OrderStatusPreparing, OrderStatusServed, OrderStatusPaid, OrderStatusCancelled:
		return true
	}
	return false
}
