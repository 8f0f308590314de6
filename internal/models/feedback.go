package models

import "time"

// Feedback is a guardian's 1-tap rating for a delivered lunch
type Feedback struct {
	ID        int       `json:"id"`
	ChildID   int       `json:"childId"`
	Date      string    `json:"date"`
	Rating    int       `json:"rating"`
	Tags      string    `json:"tags"`
	Comment   string    `json:"comment"`
	CreatedAt time.Time `json:"-"`
}

type CreateFeedbackRequest struct {
	ChildID int    `json:"childId"`
	Date    string `json:"date"`
	Rating  int    `json:"rating"`
	Tags    string `json:"tags"`
	Comment string `json:"comment"`
}
