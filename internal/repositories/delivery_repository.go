package repositories

import (
	"context"
	"errors"

	"lunchbox-backend/internal/models"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type DeliveryRepository struct {
	DB *pgxpool.Pool
}

func NewDeliveryRepository(db *pgxpool.Pool) *DeliveryRepository {
	return &DeliveryRepository{DB: db}
}

// ListByDate returns the day's deliveries in dispatch order (route sheet
// order is preserved by id)
func (r *DeliveryRepository) ListByDate(ctx context.Context, date string) ([]*models.Delivery, error) {
	rows, err := r.DB.Query(ctx,
		`SELECT id, child_id, to_char(date, 'YYYY-MM-DD'), route_name, status, delivered_at
		 FROM deliveries WHERE date = $1 ORDER BY id`, date,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var deliveries []*models.Delivery
	for rows.Next() {
		var d models.Delivery
		err := rows.Scan(&d.ID, &d.ChildID, &d.Date, &d.RouteName, &d.Status, &d.DeliveredAt)
		if err != nil {
			return nil, err
		}
		deliveries = append(deliveries, &d)
	}

	return deliveries, rows.Err()
}

// Get retrieves a delivery by ID
func (r *DeliveryRepository) Get(ctx context.Context, id int) (*models.Delivery, error) {
	var d models.Delivery
	err := r.DB.QueryRow(ctx,
		`SELECT id, child_id, to_char(date, 'YYYY-MM-DD'), route_name, status, delivered_at
		 FROM deliveries WHERE id = $1`, id,
	).Scan(&d.ID, &d.ChildID, &d.Date, &d.RouteName, &d.Status, &d.DeliveredAt)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

// MarkDelivered sets a stop DELIVERED with the server timestamp. The
// guarded UPDATE only touches non-DELIVERED rows, so repeating the call
// for an already-delivered stop returns the stored terminal record with
// its original timestamp, never an error. The bool reports whether this
// call performed the transition; concurrent calls race on the UPDATE and
// exactly one of them wins it.
func (r *DeliveryRepository) MarkDelivered(ctx context.Context, id int) (*models.Delivery, bool, error) {
	var d models.Delivery
	err := r.DB.QueryRow(ctx,
		`UPDATE deliveries
		 SET status = $1, delivered_at = NOW()
		 WHERE id = $2 AND status <> $1
		 RETURNING id, child_id, to_char(date, 'YYYY-MM-DD'), route_name, status, delivered_at`,
		models.DeliveryDelivered, id,
	).Scan(&d.ID, &d.ChildID, &d.Date, &d.RouteName, &d.Status, &d.DeliveredAt)
	if err == nil {
		return &d, true, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return nil, false, err
	}

	// Already delivered: return the terminal record unchanged
	d2, err := r.Get(ctx, id)
	return d2, false, err
}
