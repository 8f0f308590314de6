package services

import (
	"context"
	"errors"

	"lunchbox-backend/internal/cache"
	"lunchbox-backend/internal/metrics"
	"lunchbox-backend/internal/models"
	"lunchbox-backend/internal/repositories"
)

// ErrInvalidPaymentMethod is returned for methods other than UPI or CARD
var ErrInvalidPaymentMethod = errors.New("invalid payment method")

type InvoiceService struct {
	invoiceRepo *repositories.InvoiceRepository
}

func NewInvoiceService(invoiceRepo *repositories.InvoiceRepository) *InvoiceService {
	return &InvoiceService{invoiceRepo: invoiceRepo}
}

// Get retrieves an invoice by ID
func (s *InvoiceService) Get(ctx context.Context, id int) (*models.Invoice, error) {
	return s.invoiceRepo.Get(ctx, id)
}

// ListBySubscription returns invoices for a subscription, newest first
func (s *InvoiceService) ListBySubscription(ctx context.Context, subscriptionID int) ([]*models.Invoice, error) {
	return s.invoiceRepo.ListBySubscription(ctx, subscriptionID)
}

// Pay settles a DUE invoice with the given method. The amount is fixed at
// issuance; only status, method and the payment timestamp change. Paying
// a non-DUE invoice surfaces repositories.ErrInvoiceNotDue, which callers
// render as a business rejection distinct from transport failures.
func (s *InvoiceService) Pay(ctx context.Context, id int, method string) (*models.Invoice, error) {
	if method != models.PaymentMethodUPI && method != models.PaymentMethodCard {
		return nil, ErrInvalidPaymentMethod
	}

	inv, err := s.invoiceRepo.Pay(ctx, id, method)
	if err != nil {
		outcome := "error"
		if errors.Is(err, repositories.ErrInvoiceNotDue) {
			outcome = "rejected"
		}
		metrics.PaymentsTotal.WithLabelValues(method, outcome).Inc()
		return nil, err
	}

	metrics.PaymentsTotal.WithLabelValues(method, "paid").Inc()
	cache.InvalidateBillingCaches(ctx)
	return inv, nil
}
