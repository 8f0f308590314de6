package repositories

import (
	"context"

	"lunchbox-backend/internal/models"

	"github.com/jackc/pgx/v5/pgxpool"
)

type SubscriptionRepository struct {
	DB *pgxpool.Pool
}

func NewSubscriptionRepository(db *pgxpool.Pool) *SubscriptionRepository {
	return &SubscriptionRepository{DB: db}
}

// ListByChild returns a child's subscriptions, newest first, so the
// active one is always the head of the list
func (r *SubscriptionRepository) ListByChild(ctx context.Context, childID int) ([]*models.Subscription, error) {
	rows, err := r.DB.Query(ctx,
		`SELECT id, child_id, plan_id, status,
		        to_char(start_date, 'YYYY-MM-DD'), to_char(next_renewal, 'YYYY-MM-DD'),
		        price, currency, created_at
		 FROM subscriptions WHERE child_id = $1 ORDER BY created_at DESC, id DESC`, childID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var subs []*models.Subscription
	for rows.Next() {
		var s models.Subscription
		err := rows.Scan(&s.ID, &s.ChildID, &s.PlanID, &s.Status,
			&s.StartDate, &s.NextRenewal, &s.Price, &s.Currency, &s.CreatedAt)
		if err != nil {
			return nil, err
		}
		subs = append(subs, &s)
	}

	return subs, rows.Err()
}

// Get retrieves a subscription by ID
func (r *SubscriptionRepository) Get(ctx context.Context, id int) (*models.Subscription, error) {
	var s models.Subscription
	err := r.DB.QueryRow(ctx,
		`SELECT id, child_id, plan_id, status,
		        to_char(start_date, 'YYYY-MM-DD'), to_char(next_renewal, 'YYYY-MM-DD'),
		        price, currency, created_at
		 FROM subscriptions WHERE id = $1`, id,
	).Scan(&s.ID, &s.ChildID, &s.PlanID, &s.Status,
		&s.StartDate, &s.NextRenewal, &s.Price, &s.Currency, &s.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

// ListActive returns all ACTIVE subscriptions (analytics input)
func (r *SubscriptionRepository) ListActive(ctx context.Context) ([]*models.Subscription, error) {
	rows, err := r.DB.Query(ctx,
		`SELECT id, child_id, plan_id, status,
		        to_char(start_date, 'YYYY-MM-DD'), to_char(next_renewal, 'YYYY-MM-DD'),
		        price, currency, created_at
		 FROM subscriptions WHERE status = $1`, models.SubStatusActive,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var subs []*models.Subscription
	for rows.Next() {
		var s models.Subscription
		err := rows.Scan(&s.ID, &s.ChildID, &s.PlanID, &s.Status,
			&s.StartDate, &s.NextRenewal, &s.Price, &s.Currency, &s.CreatedAt)
		if err != nil {
			return nil, err
		}
		subs = append(subs, &s)
	}

	return subs, rows.Err()
}

// ChangePlan replaces the child's active subscription and issues the cycle
// invoice in one transaction, keeping the one-active-subscription invariant
// and invoice issuance atomic.
func (r *SubscriptionRepository) ChangePlan(ctx context.Context, sub *models.Subscription, inv *models.Invoice) error {
	tx, err := r.DB.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	_, err = tx.Exec(ctx,
		`UPDATE subscriptions SET status = $1 WHERE child_id = $2 AND status = $3`,
		models.SubStatusReplaced, sub.ChildID, models.SubStatusActive,
	)
	if err != nil {
		return err
	}

	err = tx.QueryRow(ctx,
		`INSERT INTO subscriptions(child_id, plan_id, status, start_date, next_renewal, price, currency)
		 VALUES($1, $2, $3, $4, $5, $6, $7)
		 RETURNING id, created_at`,
		sub.ChildID, sub.PlanID, sub.Status, sub.StartDate, sub.NextRenewal,
		sub.Price, sub.Currency,
	).Scan(&sub.ID, &sub.CreatedAt)
	if err != nil {
		return err
	}

	inv.SubscriptionID = sub.ID
	err = tx.QueryRow(ctx,
		`INSERT INTO invoices(subscription_id, period_start, period_end, amount, status)
		 VALUES($1, $2, $3, $4, $5)
		 RETURNING id`,
		inv.SubscriptionID, inv.PeriodStart, inv.PeriodEnd, inv.Amount, inv.Status,
	).Scan(&inv.ID)
	if err != nil {
		return err
	}

	return tx.Commit(ctx)
}

// CouponExists reports whether a coupon code is known and active. The
// server is the sole authority on coupon validity; the client only
// previews the discount.
func (r *SubscriptionRepository) CouponExists(ctx context.Context, code string) (bool, error) {
	var exists bool
	err := r.DB.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM coupon_codes WHERE code = $1 AND active)`, code,
	).Scan(&exists)
	return exists, err
}
