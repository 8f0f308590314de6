package models

// SelectionSkip is the only selection status; the record's existence for
// (childId, date) is the skip signal, absence means deliver as scheduled.
const SelectionSkip = "skip"

type Selection struct {
	ID      int    `json:"id"`
	ChildID int    `json:"childId"`
	Date    string `json:"date"`
	Status  string `json:"status"`
}

// ToggleSelectionRequest flips the skip state for (childId, date)
type ToggleSelectionRequest struct {
	ChildID int    `json:"childId"`
	Date    string `json:"date"`
	Status  string `json:"status"`
}

// ToggleSelectionResponse carries the authoritative resulting state so
// clients can reconcile optimistic toggles.
type ToggleSelectionResponse struct {
	Skipped   bool       `json:"skipped"`
	Selection *Selection `json:"selection,omitempty"`
}
