package models

import "time"

// Online transaction statuses (Razorpay gateway flow)
const (
	OnlineTxStatusCreated = "CREATED"
	OnlineTxStatusSuccess = "SUCCESS"
	OnlineTxStatusFailed  = "FAILED"
)

// OnlineTransaction tracks a Razorpay order created for an invoice, from
// order creation through signature verification or webhook capture.
type OnlineTransaction struct {
	ID                int        `json:"id"`
	RazorpayOrderID   string     `json:"razorpay_order_id"`
	RazorpayPaymentID string     `json:"razorpay_payment_id,omitempty"`
	InvoiceID         int        `json:"invoice_id"`
	Amount            int        `json:"amount"`
	Status            string     `json:"status"`
	FailureReason     string     `json:"failure_reason,omitempty"`
	CreatedAt         time.Time  `json:"created_at"`
	CompletedAt       *time.Time `json:"completed_at,omitempty"`
}

// CreateOrderRequest asks the gateway for an order against a DUE invoice
type CreateOrderRequest struct {
	InvoiceID int `json:"invoiceId"`
}

// CreateOrderResponse carries what the checkout widget needs
type CreateOrderResponse struct {
	OrderID  string `json:"orderId"`
	Amount   int    `json:"amount"` // paise
	Currency string `json:"currency"`
	KeyID    string `json:"keyId"`
}

// VerifyPaymentRequest is the checkout callback payload
type VerifyPaymentRequest struct {
	RazorpayOrderID   string `json:"razorpay_order_id"`
	RazorpayPaymentID string `json:"razorpay_payment_id"`
	RazorpaySignature string `json:"razorpay_signature"`
}
