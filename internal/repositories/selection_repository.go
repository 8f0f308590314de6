package repositories

import (
	"context"

	"lunchbox-backend/internal/models"

	"github.com/jackc/pgx/v5/pgxpool"
)

type SelectionRepository struct {
	DB *pgxpool.Pool
}

func NewSelectionRepository(db *pgxpool.Pool) *SelectionRepository {
	return &SelectionRepository{DB: db}
}

// Toggle flips the skip state for (childID, date): delete the record if it
// exists, insert it otherwise. The unique index on (child_id, date) makes
// the flip race-safe; two concurrent toggles serialize on the index and
// the second one simply flips again.
func (r *SelectionRepository) Toggle(ctx context.Context, childID int, date string) (bool, *models.Selection, error) {
	tag, err := r.DB.Exec(ctx,
		`DELETE FROM selections WHERE child_id = $1 AND date = $2`, childID, date,
	)
	if err != nil {
		return false, nil, err
	}
	if tag.RowsAffected() > 0 {
		// Record existed: the child is back to deliver-as-scheduled
		return false, nil, nil
	}

	sel := &models.Selection{ChildID: childID, Date: date, Status: models.SelectionSkip}
	err = r.DB.QueryRow(ctx,
		`INSERT INTO selections(child_id, date, status)
		 VALUES($1, $2, $3)
		 ON CONFLICT (child_id, date) DO UPDATE SET status = EXCLUDED.status
		 RETURNING id`,
		childID, date, models.SelectionSkip,
	).Scan(&sel.ID)
	if err != nil {
		return false, nil, err
	}
	return true, sel, nil
}

// ListByChild returns all skip records for a child
func (r *SelectionRepository) ListByChild(ctx context.Context, childID int) ([]*models.Selection, error) {
	rows, err := r.DB.Query(ctx,
		`SELECT id, child_id, to_char(date, 'YYYY-MM-DD'), status
		 FROM selections WHERE child_id = $1 ORDER BY date`, childID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var selections []*models.Selection
	for rows.Next() {
		var s models.Selection
		if err := rows.Scan(&s.ID, &s.ChildID, &s.Date, &s.Status); err != nil {
			return nil, err
		}
		selections = append(selections, &s)
	}

	return selections, rows.Err()
}

// SkippedChildIDs returns the set of children skipping a given date
// (packlist input)
func (r *SelectionRepository) SkippedChildIDs(ctx context.Context, date string) (map[int]bool, error) {
	rows, err := r.DB.Query(ctx,
		`SELECT child_id FROM selections WHERE date = $1`, date,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	skipped := make(map[int]bool)
	for rows.Next() {
		var id int
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		skipped[id] = true
	}

	return skipped, rows.Err()
}
