package models

import "time"

// Cohort values group children by school stage for menu selection
const (
	CohortKG     = "KG"
	CohortJunior = "I-III"
	CohortSenior = "IV-VIII"
)

// Child is a guardian's enrolled child. Identity is immutable; the
// preference lists are mutable.
type Child struct {
	ID           int       `json:"id"`
	GuardianID   string    `json:"guardianId"`
	Name         string    `json:"name"`
	Cohort       string    `json:"cohort"`
	ClassLabel   string    `json:"classLabel"`
	DietaryPrefs []string  `json:"dietaryPrefs"`
	Allergens    []string  `json:"allergens"`
	CreatedAt    time.Time `json:"-"`
	UpdatedAt    time.Time `json:"-"`
}

// CreateChildRequest represents the request body for enrolling a child
type CreateChildRequest struct {
	GuardianID   string   `json:"guardianId"`
	Name         string   `json:"name"`
	Cohort       string   `json:"cohort"`
	ClassLabel   string   `json:"classLabel"`
	DietaryPrefs []string `json:"dietaryPrefs"`
	Allergens    []string `json:"allergens"`
}
