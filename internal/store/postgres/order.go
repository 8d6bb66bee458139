package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/IGBS-Global/Quisin-V11/internal/domain"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type OrderRepository struct {
	db *sql.DB
}

func NewOrderRepository(db *sql.DB) *OrderRepository {
	return &OrderRepository{db: db}
}

func (r *OrderRepository) List(ctx context.Context) ([]domain.Order, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	rows, err := r.db.QueryContext(ctx, `
		SELECT id, table_id, items, status, subtotal::text, tax::text, total::text,
			waiter_id, waiter_name, COALESCE(estimated_time, ''),
			created_at, updated_at
		FROM orders`)
	if err != nil {
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}
	defer rows.Close()

	orders := []domain.Order{}
	for rows.Next() {
		var (
			order    domain.Order
			rawItems []byte
			subtotal string
			tax      string
			total    string
		)

		if err := rows.Scan(
			&order.ID,
			&order.TableID,
			&rawItems,
			&order.Status,
			&subtotal,
			&tax,
			&total,
			&order.WaiterID,
			&order.WaiterName,
			&order.EstimatedTime,
			&order.CreatedAt,
			&order.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan order: %w", err)
		}

		// decimal columns come back as text so the value survives exactly as
		// the store holds it
		if order.Subtotal, err = parseMoney(subtotal); err != nil {
			return nil, fmt.Errorf("failed to parse subtotal for order %s: %w", order.ID, err)
		}
		if order.Tax, err = parseMoney(tax); err != nil {
			return nil, fmt.Errorf("failed to parse tax for order %s: %w", order.ID, err)
		}
		if order.Total, err = parseMoney(total); err != nil {
			return nil, fmt.Errorf("failed to parse total for order %s: %w", order.ID, err)
		}

		if err := json.Unmarshal(rawItems, &order.Items); err != nil {
			return nil, fmt.Errorf("failed to decode items for order %s: %w", order.ID, err)
		}

		orders = append(orders, order)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate orders: %w", err)
	}

	return orders, nil
}

func (r *OrderRepository) Create(ctx context.Context, order *domain.Order) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	items, err := json.Marshal(order.Items)
	if err != nil {
		return "", fmt.Errorf("failed to encode items: %w", err)
	}

	if order.ID == "" {
		order.ID = uuid.NewString()
	}

	_, err = r.db.ExecContext(ctx, `
		INSERT INTO orders (
			id, table_id, items, status, total, tax,
			subtotal, waiter_id, waiter_name, estimated_time
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
		order.ID,
		order.TableID,
		items,
		order.Status,
		order.Total,
		order.Tax,
		order.Subtotal,
		order.WaiterID,
		order.WaiterName,
		order.EstimatedTime,
	)
	if err != nil {
		return "", fmt.Errorf("failed to create order: %w", err)
	}

	return order.ID, nil
}

func parseMoney(text string) (float64, error) {
	value, err := decimal.NewFromString(text)
	if err != nil {
		return 0, err
	}

	return value.InexactFloat64(), nil
}
