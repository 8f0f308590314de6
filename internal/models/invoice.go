package models

import "time"

// Invoice statuses. Amount is fixed at issuance; payment mutates only
// status, method and paid_at.
const (
	InvoiceDue    = "DUE"
	InvoicePaid   = "PAID"
	InvoiceFailed = "FAILED"
)

// Payment methods accepted by the pay endpoint
const (
	PaymentMethodUPI  = "UPI"
	PaymentMethodCard = "CARD"
)

type Invoice struct {
	ID             int        `json:"id"`
	SubscriptionID int        `json:"subscriptionId"`
	PeriodStart    string     `json:"periodStart"`
	PeriodEnd      string     `json:"periodEnd"`
	Amount         int        `json:"amount"`
	Status         string     `json:"status"`
	Method         string     `json:"method,omitempty"`
	PaidAt         *time.Time `json:"paidAt,omitempty"`
}

// PayInvoiceRequest represents the request body for paying an invoice
type PayInvoiceRequest struct {
	Method string `json:"method"`
}
