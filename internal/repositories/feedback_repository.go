package repositories

import (
	"context"

	"lunchbox-backend/internal/models"

	"github.com/jackc/pgx/v5/pgxpool"
)

type FeedbackRepository struct {
	DB *pgxpool.Pool
}

func NewFeedbackRepository(db *pgxpool.Pool) *FeedbackRepository {
	return &FeedbackRepository{DB: db}
}

// Create stores a guardian's rating for a date
func (r *FeedbackRepository) Create(ctx context.Context, f *models.Feedback) error {
	return r.DB.QueryRow(ctx,
		`INSERT INTO feedback(child_id, date, rating, tags, comment)
		 VALUES($1, $2, $3, $4, $5)
		 RETURNING id, created_at`,
		f.ChildID, f.Date, f.Rating, f.Tags, f.Comment,
	).Scan(&f.ID, &f.CreatedAt)
}

// ListSince returns feedback with date on or after the given date
// (analytics uses the trailing week)
func (r *FeedbackRepository) ListSince(ctx context.Context, date string) ([]*models.Feedback, error) {
	rows, err := r.DB.Query(ctx,
		`SELECT id, child_id, to_char(date, 'YYYY-MM-DD'), rating, tags, comment, created_at
		 FROM feedback WHERE date >= $1 ORDER BY created_at DESC`, date,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var list []*models.Feedback
	for rows.Next() {
		var f models.Feedback
		err := rows.Scan(&f.ID, &f.ChildID, &f.Date, &f.Rating, &f.Tags, &f.Comment, &f.CreatedAt)
		if err != nil {
			return nil, err
		}
		list = append(list, &f)
	}

	return list, rows.Err()
}
