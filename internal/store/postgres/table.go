package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/IGBS-Global/Quisin-V11/internal/domain"
	"github.com/google/uuid"
)

type TableRepository struct {
	db *sql.DB
}

func NewTableRepository(db *sql.DB) *TableRepository {
	return &TableRepository{db: db}
}

func (r *TableRepository) List(ctx context.Context) ([]domain.Table, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	rows, err := r.db.QueryContext(ctx, `
		SELECT id, number, seats, COALESCE(location, ''),
			COALESCE(status, 'available'), created_at
		FROM tables`)
	if err != nil {
		return nil, fmt.Errorf("failed to list tables: %w", err)
	}
	defer rows.Close()

	tables := []domain.Table{}
	for rows.Next() {
		var table domain.Table
		if err := rows.Scan(
			&table.ID,
			&table.Number,
			&table.Seats,
			&table.Location,
			&table.Status,
			&table.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan table: %w", err)
		}
		tables = append(tables, table)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate tables: %w", err)
	}

	return tables, nil
}

func (r *TableRepository) Create(ctx context.Context, table *domain.Table) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	if table.ID == "" {
		table.ID = uuid.NewString()
	}
	if table.Status == "" {
		table.Status = domain.TableStatusAvailable
	}

	_, err := r.db.ExecContext(ctx, `
		INSERT INTO tables (id, number, seats, location, status)
		VALUES ($1, $2, $3, $4, $5)`,
		table.ID,
		table.Number,
		table.Seats,
		table.Location,
		table.Status,
	)
	if err != nil {
		return "", fmt.Errorf("failed to create table: %w", err)
	}

	return table.ID, nil
}
