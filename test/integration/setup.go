package integration

import (
	"context"
	"fmt"
	"testing"
	"time"

	"hamshark/internal/database"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

// TestDB represents a test database instance.
type TestDB struct {
	Container *postgres.PostgresContainer
	Pool      *pgxpool.Pool
	ConnStr   string
}

// SetupTestDB creates a PostgreSQL test container and connection pool.
func SetupTestDB(t *testing.T) *TestDB {
	t.Helper()

	ctx := context.Background()

	// Create PostgreSQL container
	postgresContainer, err := postgres.Run(ctx,
		"postgres:16-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second)),
	)
	if err != nil {
		t.Fatalf("failed to start postgres container: %v", err)
	}

	// Get connection string
	connStr, err := postgresContainer.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		t.Fatalf("failed to get connection string: %v", err)
	}

	// The container publishes a random host port, so the pool is built
	// from the container's own connection string.
	poolConfig, err := pgxpool.ParseConfig(connStr)
	if err != nil {
		t.Fatalf("failed to parse connection string: %v", err)
	}
	poolConfig.MaxConns = 10
	poolConfig.MinConns = 2

	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		t.Fatalf("failed to create connection pool: %v", err)
	}

	// Verify connection
	if err := pool.Ping(ctx); err != nil {
		t.Fatalf("failed to ping database: %v", err)
	}

	// Create schema
	if err := database.EnsureSchema(ctx, pool, zerolog.Nop()); err != nil {
		t.Fatalf("failed to create schema: %v", err)
	}

	t.Cleanup(func() {
		pool.Close()
		if err := postgresContainer.Terminate(ctx); err != nil {
			t.Logf("failed to terminate container: %v", err)
		}
	})

	return &TestDB{
		Container: postgresContainer,
		Pool:      pool,
		ConnStr:   connStr,
	}
}

// SeedMenuItems inserts test menu data into the database.
func SeedMenuItems(t *testing.T, pool *pgxpool.Pool) {
	t.Helper()

	ctx := context.Background()

	items := []struct {
		id         string
		name       string
		price      string
		category   string
		cuisine    string
		vegetarian bool
		available  bool
		nutrition  string
	}{
		{"ni1", "Paneer Tikka Wrap", "180.00", "Wraps", "North Indian", true, true,
			`{"calories": 420, "protein": 18, "carbs": 45, "fat": 16, "fiber": 4, "sodium": 680}`},
		{"ni2", "Butter Chicken", "280.00", "Curry", "North Indian", false, true,
			`{"calories": 650, "protein": 38, "carbs": 28, "fat": 42, "fiber": 3, "sodium": 890}`},
		{"si1", "Masala Dosa", "150.00", "Dosa", "South Indian", true, true,
			`{"calories": 380, "protein": 8, "carbs": 62, "fat": 12, "fiber": 5, "sodium": 520}`},
		{"bd2", "Masala Chai", "30.00", "Beverage", "Beverages & Desserts", true, true,
			`{"calories": 80, "protein": 3, "carbs": 12, "fat": 2.5, "fiber": 0, "sodium": 40}`},
		{"x1", "Retired Special", "99.00", "Curry", "North Indian", true, false,
			`{"calories": 300, "protein": 10, "carbs": 40, "fat": 8, "fiber": 2, "sodium": 400}`},
	}

	for _, item := range items {
		_, err := pool.Exec(ctx,
			`INSERT INTO menu_items (id, name, price, category, cuisine, is_vegetarian, is_available, nutrition)
			 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
			item.id, item.name, item.price, item.category, item.cuisine,
			item.vegetarian, item.available, []byte(item.nutrition),
		)
		if err != nil {
			t.Fatalf("failed to seed menu item %s: %v", item.id, err)
		}
	}
}

// CleanupDB cleans all data from test tables.
func CleanupDB(t *testing.T, pool *pgxpool.Pool) {
	t.Helper()

	ctx := context.Background()

	tables := []string{"orders", "menu_items"}
	for _, table := range tables {
		_, err := pool.Exec(ctx, fmt.Sprintf("DELETE FROM %s", table))
		if err != nil {
			t.Logf("failed to clean table %s: %v", table, err)
		}
	}
}
