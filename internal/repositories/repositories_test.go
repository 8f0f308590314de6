package repositories

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

// testPool connects to the database named by TEST_DATABASE_URL and ensures
// the tables these tests touch exist. Tests are skipped when the variable
// is unset, so the suite runs without a database.
func testPool(t *testing.T) *pgxpool.Pool {
	t.Helper()

	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		t.Fatalf("connecting to test database: %v", err)
	}
	t.Cleanup(pool.Close)

	if err := pool.Ping(ctx); err != nil {
		t.Fatalf("pinging test database: %v", err)
	}

	schema := []string{
		`CREATE TABLE IF NOT EXISTS children (
			id SERIAL PRIMARY KEY,
			guardian_id TEXT NOT NULL DEFAULT '',
			name TEXT NOT NULL,
			cohort TEXT NOT NULL,
			class_label TEXT NOT NULL DEFAULT '',
			dietary_prefs TEXT[] NOT NULL DEFAULT '{}',
			allergens TEXT[] NOT NULL DEFAULT '{}',
			created_at TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP,
			updated_at TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP
		)`,
		`CREATE TABLE IF NOT EXISTS selections (
			id SERIAL PRIMARY KEY,
			child_id INTEGER NOT NULL REFERENCES children(id),
			date DATE NOT NULL,
			status TEXT NOT NULL DEFAULT 'skip',
			UNIQUE(child_id, date)
		)`,
		`CREATE TABLE IF NOT EXISTS deliveries (
			id SERIAL PRIMARY KEY,
			child_id INTEGER NOT NULL REFERENCES children(id),
			date DATE NOT NULL,
			route_name TEXT NOT NULL,
			status TEXT NOT NULL DEFAULT 'PENDING',
			delivered_at TIMESTAMPTZ
		)`,
	}
	for _, stmt := range schema {
		if _, err := pool.Exec(ctx, stmt); err != nil {
			t.Fatalf("creating test schema: %v", err)
		}
	}

	return pool
}

// seedChild inserts a child and removes it (with dependents) after the test
func seedChild(t *testing.T, pool *pgxpool.Pool) int {
	t.Helper()

	var id int
	err := pool.QueryRow(context.Background(),
		`INSERT INTO children (name, cohort) VALUES ('Test Child', 'KG') RETURNING id`,
	).Scan(&id)
	if err != nil {
		t.Fatalf("seeding child: %v", err)
	}

	t.Cleanup(func() {
		ctx := context.Background()
		pool.Exec(ctx, `DELETE FROM selections WHERE child_id = $1`, id)
		pool.Exec(ctx, `DELETE FROM deliveries WHERE child_id = $1`, id)
		pool.Exec(ctx, `DELETE FROM children WHERE id = $1`, id)
	})

	return id
}
