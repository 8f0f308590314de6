package models

// MenuItem is a published menu for a date + cohort, immutable once listed.
// Allergens is a comma-joined tag list to match the published format.
type MenuItem struct {
	ID        int    `json:"id"`
	Date      string `json:"date"`
	Cohort    string `json:"cohort"`
	Title     string `json:"title"`
	Items     string `json:"items"`
	Kcal      int    `json:"kcal"`
	Protein   int    `json:"protein"`
	Carbs     int    `json:"carbs"`
	Fat       int    `json:"fat"`
	Allergens string `json:"allergens"`
	Theme     string `json:"theme,omitempty"`
}
