package database

import (
	"context"
	"fmt"
	"time"

	"hamshark/internal/config"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
)

// NewPool creates a PostgreSQL connection pool and verifies it with a
// bounded ping.
func NewPool(ctx context.Context, cfg config.DatabaseConfig, logger zerolog.Logger) (*pgxpool.Pool, error) {
	poolConfig, err := pgxpool.ParseConfig(cfg.ConnectionString())
	if err != nil {
		return nil, fmt.Errorf("failed to parse database config: %w", err)
	}

	poolConfig.MaxConns = int32(cfg.MaxConnections)
	poolConfig.MinConns = int32(cfg.MinConnections)
	poolConfig.MaxConnLifetime = time.Duration(cfg.MaxConnLifetime) * time.Second
	poolConfig.MaxConnIdleTime = 30 * time.Minute
	poolConfig.HealthCheckPeriod = 1 * time.Minute

	logger.Info().
		Str("host", cfg.Host).
		Int("port", cfg.Port).
		Str("database", cfg.Database).
		Int("max_connections", cfg.MaxConnections).
		Int("min_connections", cfg.MinConnections).
		Msg("creating database connection pool")

	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create connection pool: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := pool.Ping(pingCtx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	logger.Info().Msg("database connection pool created successfully")

	return pool, nil
}

// EnsureSchema creates the menu and order tables when they do not exist
// yet. Seeding the menu is left to ops tooling; an empty menu_items table
// simply serves an empty catalogue.
func EnsureSchema(ctx context.Context, pool *pgxpool.Pool, logger zerolog.Logger) error {
	schema := `
		CREATE TABLE IF NOT EXISTS menu_items (
			id VARCHAR(50) PRIMARY KEY,
			name VARCHAR(255) NOT NULL,
			description TEXT NOT NULL DEFAULT '',
			price VARCHAR(20) NOT NULL,
			category VARCHAR(100) NOT NULL,
			cuisine VARCHAR(100) NOT NULL,
			is_vegetarian BOOLEAN NOT NULL DEFAULT FALSE,
			is_vegan BOOLEAN NOT NULL DEFAULT FALSE,
			spice_level VARCHAR(20) NOT NULL DEFAULT 'mild',
			nutrition JSONB,
			ingredients TEXT[] NOT NULL DEFAULT '{}',
			allergens TEXT[] NOT NULL DEFAULT '{}',
			image_url TEXT NOT NULL DEFAULT '',
			tags TEXT[] NOT NULL DEFAULT '{}',
			is_available BOOLEAN NOT NULL DEFAULT TRUE
		);

		CREATE TABLE IF NOT EXISTS orders (
			id UUID PRIMARY KEY,
			user_id VARCHAR(50),
			items JSONB NOT NULL,
			subtotal VARCHAR(20) NOT NULL,
			tax VARCHAR(20) NOT NULL,
			total VARCHAR(20) NOT NULL,
			status VARCHAR(20) NOT NULL,
			truck_location VARCHAR(255) NOT NULL DEFAULT '',
			loyalty_points_earned INTEGER NOT NULL DEFAULT 0,
			surprise_gifts TEXT[] NOT NULL DEFAULT '{}',
			created_at TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP
		);

		CREATE INDEX IF NOT EXISTS idx_orders_user_id ON orders(user_id);
		CREATE INDEX IF NOT EXISTS idx_menu_items_category ON menu_items(category);
		CREATE INDEX IF NOT EXISTS idx_menu_items_cuisine ON menu_items(cuisine);
	`

	if _, err := pool.Exec(ctx, schema); err != nil {
		return fmt.Errorf("failed to ensure schema: %w", err)
	}

	logger.Info().Msg("database schema ensured")
	return nil
}
