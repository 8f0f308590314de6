package repositories

import (
	"context"

	"lunchbox-backend/internal/models"

	"github.com/jackc/pgx/v5/pgxpool"
)

type ChildRepository struct {
	DB *pgxpool.Pool
}

func NewChildRepository(db *pgxpool.Pool) *ChildRepository {
	return &ChildRepository{DB: db}
}

// List returns all enrolled children in enrollment order
func (r *ChildRepository) List(ctx context.Context) ([]*models.Child, error) {
	rows, err := r.DB.Query(ctx,
		`SELECT id, guardian_id, name, cohort, class_label, dietary_prefs, allergens, created_at, updated_at
		 FROM children ORDER BY id`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var children []*models.Child
	for rows.Next() {
		var c models.Child
		err := rows.Scan(&c.ID, &c.GuardianID, &c.Name, &c.Cohort, &c.ClassLabel,
			&c.DietaryPrefs, &c.Allergens, &c.CreatedAt, &c.UpdatedAt)
		if err != nil {
			return nil, err
		}
		children = append(children, &c)
	}

	return children, rows.Err()
}

// Get retrieves a child by ID
func (r *ChildRepository) Get(ctx context.Context, id int) (*models.Child, error) {
	var c models.Child
	err := r.DB.QueryRow(ctx,
		`SELECT id, guardian_id, name, cohort, class_label, dietary_prefs, allergens, created_at, updated_at
		 FROM children WHERE id = $1`, id,
	).Scan(&c.ID, &c.GuardianID, &c.Name, &c.Cohort, &c.ClassLabel,
		&c.DietaryPrefs, &c.Allergens, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// Create enrolls a new child
func (r *ChildRepository) Create(ctx context.Context, child *models.Child) error {
	return r.DB.QueryRow(ctx,
		`INSERT INTO children(guardian_id, name, cohort, class_label, dietary_prefs, allergens)
		 VALUES($1, $2, $3, $4, $5, $6)
		 RETURNING id, created_at, updated_at`,
		child.GuardianID, child.Name, child.Cohort, child.ClassLabel,
		child.DietaryPrefs, child.Allergens,
	).Scan(&child.ID, &child.CreatedAt, &child.UpdatedAt)
}
