package services

import (
	"testing"

	"lunchbox-backend/internal/models"
)

func deliveriesWithStatus(statuses ...string) []*models.Delivery {
	out := make([]*models.Delivery, len(statuses))
	for i, s := range statuses {
		out[i] = &models.Delivery{ID: i + 1, Status: s}
	}
	return out
}

func invoicesWithStatus(statuses ...string) []*models.Invoice {
	out := make([]*models.Invoice, len(statuses))
	for i, s := range statuses {
		out[i] = &models.Invoice{ID: i + 1, Status: s}
	}
	return out
}

func TestOnTimeRate(t *testing.T) {
	// 2 delivered, 1 exception, 1 pending: pending is not counted either way
	got := OnTimeRate(deliveriesWithStatus(
		models.DeliveryDelivered, models.DeliveryDelivered,
		models.DeliveryException, models.DeliveryPending,
	))
	if got != 67 {
		t.Errorf("OnTimeRate = %d, want 67", got)
	}
}

func TestOnTimeRateEmptyDay(t *testing.T) {
	if got := OnTimeRate(nil); got != 0 {
		t.Errorf("OnTimeRate(nil) = %d, want 0", got)
	}
	// Only pending stops: nothing completed yet
	if got := OnTimeRate(deliveriesWithStatus(models.DeliveryPending)); got != 0 {
		t.Errorf("OnTimeRate(pending only) = %d, want 0", got)
	}
}

func TestOnTimeRateAllDelivered(t *testing.T) {
	got := OnTimeRate(deliveriesWithStatus(
		models.DeliveryDelivered, models.DeliveryDelivered, models.DeliveryDelivered,
	))
	if got != 100 {
		t.Errorf("OnTimeRate = %d, want 100", got)
	}
}

func TestPaymentSuccessRate(t *testing.T) {
	rate, paid, due := PaymentSuccessRate(invoicesWithStatus(
		models.InvoiceDue, models.InvoicePaid, models.InvoicePaid,
	))
	if rate != 67 {
		t.Errorf("rate = %d, want 67", rate)
	}
	if paid != 2 || due != 1 {
		t.Errorf("paid, due = %d, %d, want 2, 1", paid, due)
	}
}

func TestPaymentSuccessRateNoInvoices(t *testing.T) {
	rate, paid, due := PaymentSuccessRate(nil)
	if rate != 0 || paid != 0 || due != 0 {
		t.Errorf("got %d, %d, %d, want all zero", rate, paid, due)
	}
}

// FAILED invoices are outside the PAID/DUE ratio
func TestPaymentSuccessRateIgnoresFailed(t *testing.T) {
	rate, paid, due := PaymentSuccessRate(invoicesWithStatus(
		models.InvoicePaid, models.InvoiceFailed,
	))
	if rate != 100 {
		t.Errorf("rate = %d, want 100", rate)
	}
	if paid != 1 || due != 0 {
		t.Errorf("paid, due = %d, %d, want 1, 0", paid, due)
	}
}

func TestAverageRating(t *testing.T) {
	feedback := []*models.Feedback{
		{Rating: 5}, {Rating: 4}, {Rating: 3},
	}
	if got := AverageRating(feedback); got != 4.0 {
		t.Errorf("AverageRating = %v, want 4.0", got)
	}
	if got := AverageRating(nil); got != 0 {
		t.Errorf("AverageRating(nil) = %v, want 0", got)
	}
}

func TestComputeMRR(t *testing.T) {
	subs := []*models.Subscription{
		{PlanID: models.PlanWeekly, Price: 499, Status: models.SubStatusActive},
		{PlanID: models.PlanMonthly, Price: 1799, Status: models.SubStatusActive},
		{PlanID: models.PlanMonthly, Price: 1799, Status: models.SubStatusReplaced},
	}
	// 499*4 + 1799; the replaced row contributes nothing
	if got := ComputeMRR(subs); got != 3795 {
		t.Errorf("ComputeMRR = %d, want 3795", got)
	}
}

func TestRateBounds(t *testing.T) {
	for _, deliveries := range [][]*models.Delivery{
		nil,
		deliveriesWithStatus(models.DeliveryDelivered),
		deliveriesWithStatus(models.DeliveryException),
		deliveriesWithStatus(models.DeliveryDelivered, models.DeliveryException, models.DeliveryPending),
	} {
		got := OnTimeRate(deliveries)
		if got < 0 || got > 100 {
			t.Errorf("OnTimeRate = %d, out of [0, 100]", got)
		}
	}
}
