package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/IGBS-Global/Quisin-V11/internal/domain"
	"github.com/stretchr/testify/require"
)

func TestOrderRepositoryCreate(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewOrderRepository(db)

	mock.ExpectExec("INSERT INTO orders").
		WithArgs(
			sqlmock.AnyArg(), // generated id
			"table-1",
			[]byte(`[{"menuItemId":"42","quantity":2,"price":5.5}]`),
			domain.OrderStatusPending,
			12.1,
			1.1,
			11.0,
			"waiter-1",
			"Dana",
			"20 min",
		).
		WillReturnResult(sqlmock.NewResult(0, 1))

	order := &domain.Order{
		TableID:       "table-1",
		Items:         []domain.OrderItem{{MenuItemID: "42", Quantity: 2, Price: 5.5}},
		Status:        domain.OrderStatusPending,
		Subtotal:      11.0,
		Tax:           1.1,
		Total:         12.1,
		WaiterID:      "waiter-1",
		WaiterName:    "Dana",
		EstimatedTime: "20 min",
	}

	id, err := repo.Create(context.Background(), order)
	require.NoError(t, err)
	require.NotEmpty(t, id)
	require.Equal(t, order.ID, id)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestOrderRepositoryCreateUniqueIDs(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewOrderRepository(db)

	mock.ExpectExec("INSERT INTO orders").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("INSERT INTO orders").WillReturnResult(sqlmock.NewResult(0, 1))

	base := domain.Order{
		TableID:    "table-1",
		Items:      []domain.OrderItem{{MenuItemID: "42", Quantity: 1, Price: 1}},
		Status:     domain.OrderStatusPending,
		WaiterID:   "waiter-1",
		WaiterName: "Dana",
	}

	first := base
	second := base

	firstID, err := repo.Create(context.Background(), &first)
	require.NoError(t, err)
	secondID, err := repo.Create(context.Background(), &second)
	require.NoError(t, err)

	require.NotEqual(t, firstID, secondID)
}

func TestOrderRepositoryListDecodesMoneyAndItems(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewOrderRepository(db)

	now := time.Now()
	rows := sqlmock.NewRows([]string{
		"id", "table_id", "items", "status", "subtotal", "tax", "total",
		"waiter_id", "waiter_name", "estimated_time", "created_at", "updated_at",
	}).AddRow(
		"order-1",
		"table-1",
		[]byte(`[{"menuItemId":"42","name":"Pad Thai","quantity":2,"price":5.00}]`),
		domain.OrderStatusPending,
		"10.00",
		"1.00",
		"11.00",
		"waiter-1",
		"Dana",
		"",
		now,
		now,
	)

	mock.ExpectQuery("SELECT (.+) FROM orders").WillReturnRows(rows)

	orders, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, orders, 1)

	order := orders[0]
	require.Equal(t, "order-1", order.ID)
	require.Equal(t, 10.00, order.Subtotal)
	require.Equal(t, 1.00, order.Tax)
	require.Equal(t, 11.00, order.Total)
	require.Len(t, order.Items, 1)
	require.Equal(t, domain.MenuItemRef("42"), order.Items[0].MenuItemID)
	require.Equal(t, 2, order.Items[0].Quantity)
	require.Equal(t, 5.00, order.Items[0].Price)
}

func TestOrderRepositoryListEmpty(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewOrderRepository(db)

	mock.ExpectQuery("SELECT (.+) FROM orders").WillReturnRows(sqlmock.NewRows([]string{
		"id", "table_id", "items", "status", "subtotal", "tax", "total",
		"waiter_id", "waiter_name", "estimated_time", "created_at", "updated_at",
	}))

	orders, err := repo.List(context.Background())
	require.NoError(t, err)
	require.NotNil(t, orders)
	require.Empty(t, orders)
}
