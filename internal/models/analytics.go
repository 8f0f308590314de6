package models

// AnalyticsSummary is a read-only derived view; it never feeds back into
// billing.
type AnalyticsSummary struct {
	MRR                int     `json:"mrr"`
	ActiveSubs         int     `json:"activeSubs"`
	OnTimeRate         int     `json:"onTimeRate"`         // percent, 0-100
	AvgRating          float64 `json:"avgRating"`          // 0 when no feedback
	PaymentSuccessRate int     `json:"paymentSuccessRate"` // percent, 0-100
	InvoicesPaid       int     `json:"invoicesPaid"`
	InvoicesDue        int     `json:"invoicesDue"`
}

// Packlist is the kitchen view for one date: who gets a box after skips
// are excluded, with per-cohort totals and allergen alerts.
type Packlist struct {
	Date         string         `json:"date"`
	MenuTitle    string         `json:"menuTitle"`
	TotalBoxes   int            `json:"totalBoxes"`
	CohortTotals map[string]int `json:"cohortTotals"`
	Alerts       []string       `json:"alerts"`
	Children     []Child        `json:"children"`
}
