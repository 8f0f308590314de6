package repositories

import (
	"context"

	"lunchbox-backend/internal/models"

	"github.com/jackc/pgx/v5/pgxpool"
)

type WaitlistRepository struct {
	DB *pgxpool.Pool
}

func NewWaitlistRepository(db *pgxpool.Pool) *WaitlistRepository {
	return &WaitlistRepository{DB: db}
}

// Create stores an opt-in; re-submitting the same contact is a no-op
func (r *WaitlistRepository) Create(ctx context.Context, channel, contact string) error {
	_, err := r.DB.Exec(ctx,
		`INSERT INTO waitlist_signups(channel, contact)
		 VALUES($1, $2)
		 ON CONFLICT (channel, contact) DO NOTHING`,
		channel, contact,
	)
	return err
}

// List returns all signups, newest first
func (r *WaitlistRepository) List(ctx context.Context) ([]*models.WaitlistSignup, error) {
	rows, err := r.DB.Query(ctx,
		`SELECT id, channel, contact, created_at
		 FROM waitlist_signups ORDER BY created_at DESC`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var signups []*models.WaitlistSignup
	for rows.Next() {
		var s models.WaitlistSignup
		if err := rows.Scan(&s.ID, &s.Channel, &s.Contact, &s.CreatedAt); err != nil {
			return nil, err
		}
		signups = append(signups, &s)
	}

	return signups, rows.Err()
}
