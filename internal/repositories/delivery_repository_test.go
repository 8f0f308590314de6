package repositories

import (
	"context"
	"errors"
	"testing"

	"lunchbox-backend/internal/models"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

func seedDelivery(t *testing.T, pool *pgxpool.Pool, childID int) int {
	t.Helper()

	var id int
	err := pool.QueryRow(context.Background(),
		`INSERT INTO deliveries (child_id, date, route_name, status)
		 VALUES ($1, '2026-09-01', 'North', $2) RETURNING id`,
		childID, models.DeliveryPending,
	).Scan(&id)
	if err != nil {
		t.Fatalf("seeding delivery: %v", err)
	}
	return id
}

// A second mark-delivered returns the stored terminal record with the
// original timestamp and reports that no transition happened.
func TestMarkDeliveredIdempotent(t *testing.T) {
	pool := testPool(t)
	repo := NewDeliveryRepository(pool)
	childID := seedChild(t, pool)
	id := seedDelivery(t, pool, childID)
	ctx := context.Background()

	first, transitioned, err := repo.MarkDelivered(ctx, id)
	if err != nil {
		t.Fatalf("first mark: %v", err)
	}
	if !transitioned {
		t.Fatal("first mark: expected a transition")
	}
	if first.Status != models.DeliveryDelivered {
		t.Fatalf("first mark: status = %q, want DELIVERED", first.Status)
	}
	if first.DeliveredAt == nil {
		t.Fatal("first mark: expected deliveredAt to be set")
	}

	second, transitioned, err := repo.MarkDelivered(ctx, id)
	if err != nil {
		t.Fatalf("second mark: %v", err)
	}
	if transitioned {
		t.Fatal("second mark: expected no transition")
	}
	if second.Status != models.DeliveryDelivered {
		t.Fatalf("second mark: status = %q, want DELIVERED", second.Status)
	}
	if second.DeliveredAt == nil || !second.DeliveredAt.Equal(*first.DeliveredAt) {
		t.Errorf("second mark: deliveredAt = %v, want the original %v",
			second.DeliveredAt, first.DeliveredAt)
	}
}

func TestMarkDeliveredMissingStop(t *testing.T) {
	pool := testPool(t)
	repo := NewDeliveryRepository(pool)

	_, _, err := repo.MarkDelivered(context.Background(), -1)
	if !errors.Is(err, pgx.ErrNoRows) {
		t.Errorf("err = %v, want pgx.ErrNoRows", err)
	}
}
