package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/IGBS-Global/Quisin-V11/internal/domain"
)

type OrderEventRepository struct {
	db *sql.DB
}

func NewOrderEventRepository(db *sql.DB) *OrderEventRepository {
	return &OrderEventRepository{db: db}
}

func (r *OrderEventRepository) Create(ctx context.Context, event *domain.OrderEventRecord) error {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	_, err := r.db.ExecContext(ctx, `
		INSERT INTO order_events (order_id, event_type, table_id, waiter_id, total)
		VALUES ($1, $2, $3, $4, $5)`,
		event.OrderID,
		event.EventType,
		event.TableID,
		event.WaiterID,
		event.Total,
	)
	if err != nil {
		return fmt.Errorf("failed to create order event: %w", err)
	}

	return nil
}

func (r *OrderEventRepository) ListByOrderID(ctx context.Context, orderID string, limit int) ([]domain.OrderEventRecord, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	rows, err := r.db.QueryContext(ctx, `
		SELECT id, order_id, event_type, table_id, waiter_id, total::text, created_at
		FROM order_events
		WHERE order_id = $1
		ORDER BY created_at DESC
		LIMIT $2`,
		orderID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list order events: %w", err)
	}
	defer rows.Close()

	events := []domain.OrderEventRecord{}
	for rows.Next() {
		var (
			event domain.OrderEventRecord
			total string
		)

		if err := rows.Scan(
			&event.ID,
			&event.OrderID,
			&event.EventType,
			&event.TableID,
			&event.WaiterID,
			&total,
			&event.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan order event: %w", err)
		}

		if event.Total, err = parseMoney(total); err != nil {
			return nil, fmt.Errorf("failed to parse total for order event %d: %w", event.ID, err)
		}

		events = append(events, event)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate order events: %w", err)
	}

	return events, nil
}
