package models

import "time"

// Plan identifiers; pricing lives in services.PlanPrice
const (
	PlanWeekly  = "WEEKLY"
	PlanMonthly = "MONTHLY"
)

// Subscription statuses. A child has at most one ACTIVE subscription;
// changing plan marks the previous row REPLACED in the same transaction.
const (
	SubStatusActive   = "ACTIVE"
	SubStatusReplaced = "REPLACED"
)

type Subscription struct {
	ID          int       `json:"id"`
	ChildID     int       `json:"childId"`
	PlanID      string    `json:"planId"`
	Status      string    `json:"status"`
	StartDate   string    `json:"startDate"`
	NextRenewal string    `json:"nextRenewal"`
	Price       int       `json:"price"`
	Currency    string    `json:"currency"`
	CreatedAt   time.Time `json:"-"`
}

// ChangePlanRequest creates or changes a child's plan. CouponCode is
// validated server-side; the client-side amount is a preview only.
type ChangePlanRequest struct {
	ChildID     int    `json:"childId"`
	PlanID      string `json:"planId"`
	CouponCode  string `json:"couponCode,omitempty"`
	UseReferral bool   `json:"useReferral"`
}
