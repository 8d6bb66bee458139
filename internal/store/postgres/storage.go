package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
)

type Storage struct {
	db     *sql.DB
	config Config
}

type Config struct {
	URL          string
	MaxOpenConns int
	MaxIdleConns int
	MaxIdleTime  time.Duration
	MaxLifetime  time.Duration
	Timeout      time.Duration
}

func New(cfg Config) (*Storage, error) {
	db, err := sql.Open("pgx", cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("failed to open postgres pool: %w", err)
	}

	configurePool(db, cfg)

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Timeout)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping postgres: %w", err)
	}

	return &Storage{
		db:     db,
		config: cfg,
	}, nil
}

func configurePool(db *sql.DB, cfg Config) {
	db.SetMaxOpenConns(cfg.MaxOpenConns)
	db.SetMaxIdleConns(cfg.MaxIdleConns)
	db.SetConnMaxIdleTime(cfg.MaxIdleTime)
	db.SetConnMaxLifetime(cfg.MaxLifetime)
}

func (s *Storage) Close() error {
	return s.db.Close()
}

func (s *Storage) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

func (s *Storage) DB() *sql.DB {
	return s.db
}

// CreateSchema bootstraps every table with create-if-absent semantics, so it
// is safe to run on every startup.
func (s *Storage) CreateSchema(ctx context.Context) error {
	statements := []struct {
		table string
		ddl   string
	}{
		{"menu_items", `
			CREATE TABLE IF NOT EXISTS menu_items (
				id SERIAL PRIMARY KEY,
				name TEXT NOT NULL,
				description TEXT,
				price DECIMAL NOT NULL,
				currency TEXT NOT NULL,
				category TEXT NOT NULL,
				meal_type TEXT NOT NULL,
				image TEXT,
				ingredients JSONB,
				allergens JSONB,
				condiments JSONB,
				available BOOLEAN DEFAULT true,
				preparation_time TEXT,
				calories INTEGER,
				spicy_level INTEGER,
				is_vegetarian BOOLEAN,
				is_vegan BOOLEAN,
				is_gluten_free BOOLEAN
			)`},
		{"staff", `
			CREATE TABLE IF NOT EXISTS staff (
				id TEXT PRIMARY KEY,
				name TEXT NOT NULL,
				email TEXT NOT NULL,
				phone TEXT,
				shift_start TEXT,
				shift_end TEXT,
				shift_days JSONB,
				username TEXT NOT NULL,
				password TEXT NOT NULL,
				status TEXT DEFAULT 'active',
				created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
			)`},
		{"tables", `
			CREATE TABLE IF NOT EXISTS tables (
				id TEXT PRIMARY KEY,
				number TEXT NOT NULL,
				seats INTEGER NOT NULL,
				location TEXT,
				status TEXT DEFAULT 'available',
				created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
			)`},
		{"orders", `
			CREATE TABLE IF NOT EXISTS orders (
				id TEXT PRIMARY KEY,
				table_id TEXT NOT NULL,
				items JSONB NOT NULL,
				status TEXT NOT NULL,
				total DECIMAL NOT NULL,
				tax DECIMAL NOT NULL,
				subtotal DECIMAL NOT NULL,
				waiter_id TEXT NOT NULL,
				waiter_name TEXT NOT NULL,
				estimated_time TEXT,
				created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
				updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
			)`},
		{"order_events", `
			CREATE TABLE IF NOT EXISTS order_events (
				id SERIAL PRIMARY KEY,
				order_id TEXT NOT NULL,
				event_type TEXT NOT NULL,
				table_id TEXT NOT NULL,
				waiter_id TEXT NOT NULL,
				total DECIMAL NOT NULL,
				created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
			)`},
	}

	for _, stmt := range statements {
		if _, err := s.db.ExecContext(ctx, stmt.ddl); err != nil {
			return fmt.Errorf("failed to create %s table: %w", stmt.table, err)
		}
	}

	return nil
}
