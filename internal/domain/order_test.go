package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMenuItemRefDecodesBothForms(t *testing.T) {
	var item OrderItem

	require.NoError(t, json.Unmarshal([]byte(`{"menuItemId":"42","quantity":1,"price":5}`), &item))
	require.Equal(t, MenuItemRef("42"), item.MenuItemID)

	require.NoError(t, json.Unmarshal([]byte(`{"menuItemId":42,"quantity":1,"price":5}`), &item))
	require.Equal(t, MenuItemRef("42"), item.MenuItemID)
}

func TestMenuItemRefRoundTripsAsString(t *testing.T) {
	raw, err := json.Marshal(OrderItem{MenuItemID: "42", Quantity: 1, Price: 5})
	require.NoError(t, err)
	require.JSONEq(t, `{"menuItemId":"42","quantity":1,"price":5}`, string(raw))
}

func TestValidOrderStatus(t *testing.T) {
	for _, status := range []string{
		OrderStatusPending, OrderStatusPreparing, OrderStatusServed,
		OrderStatusPaid, OrderStatusCancelled,
	} {
		require.True(t, ValidOrderStatus(status), status)
	}

	require.False(t, ValidOrderStatus(""))
	require.False(t, ValidOrderStatus("teleported"))
}
