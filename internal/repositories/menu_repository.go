package repositories

import (
	"context"

	"lunchbox-backend/internal/models"

	"github.com/jackc/pgx/v5/pgxpool"
)

type MenuRepository struct {
	DB *pgxpool.Pool
}

func NewMenuRepository(db *pgxpool.Pool) *MenuRepository {
	return &MenuRepository{DB: db}
}

// ListRange returns published menus with date in [from, to], ordered by
// date then cohort
func (r *MenuRepository) ListRange(ctx context.Context, from, to string) ([]*models.MenuItem, error) {
	rows, err := r.DB.Query(ctx,
		`SELECT id, to_char(date, 'YYYY-MM-DD'), cohort, title, items,
		        kcal, protein, carbs, fat, allergens, COALESCE(theme, '')
		 FROM menus
		 WHERE date >= $1 AND date <= $2
		 ORDER BY date, cohort`, from, to,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var menus []*models.MenuItem
	for rows.Next() {
		var m models.MenuItem
		err := rows.Scan(&m.ID, &m.Date, &m.Cohort, &m.Title, &m.Items,
			&m.Kcal, &m.Protein, &m.Carbs, &m.Fat, &m.Allergens, &m.Theme)
		if err != nil {
			return nil, err
		}
		menus = append(menus, &m)
	}

	return menus, rows.Err()
}

// GetByDate returns the menu published for a date and cohort, if any
func (r *MenuRepository) GetByDate(ctx context.Context, date, cohort string) (*models.MenuItem, error) {
	var m models.MenuItem
	err := r.DB.QueryRow(ctx,
		`SELECT id, to_char(date, 'YYYY-MM-DD'), cohort, title, items,
		        kcal, protein, carbs, fat, allergens, COALESCE(theme, '')
		 FROM menus WHERE date = $1 AND cohort = $2`, date, cohort,
	).Scan(&m.ID, &m.Date, &m.Cohort, &m.Title, &m.Items,
		&m.Kcal, &m.Protein, &m.Carbs, &m.Fat, &m.Allergens, &m.Theme)
	if err != nil {
		return nil, err
	}
	return &m, nil
}
