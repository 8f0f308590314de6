package services

import (
	"context"
	"encoding/json"
	"time"

	"lunchbox-backend/internal/cache"
	"lunchbox-backend/internal/models"
	"lunchbox-backend/internal/repositories"
	"lunchbox-backend/internal/timeutil"
)

// AnalyticsService derives dashboard metrics from current list state.
// Everything here is a read-only view; none of it feeds back into billing.
type AnalyticsService struct {
	subscriptionRepo *repositories.SubscriptionRepository
	deliveryRepo     *repositories.DeliveryRepository
	invoiceRepo      *repositories.InvoiceRepository
	feedbackRepo     *repositories.FeedbackRepository
}

func NewAnalyticsService(
	subscriptionRepo *repositories.SubscriptionRepository,
	deliveryRepo *repositories.DeliveryRepository,
	invoiceRepo *repositories.InvoiceRepository,
	feedbackRepo *repositories.FeedbackRepository,
) *AnalyticsService {
	return &AnalyticsService{
		subscriptionRepo: subscriptionRepo,
		deliveryRepo:     deliveryRepo,
		invoiceRepo:      invoiceRepo,
		feedbackRepo:     feedbackRepo,
	}
}

// ComputeMRR sums the monthly-equivalent value of active subscriptions
func ComputeMRR(subs []*models.Subscription) int {
	mrr := 0
	for _, s := range subs {
		if s.Status != models.SubStatusActive {
			continue
		}
		mrr += MonthlyEquivalent(s)
	}
	return mrr
}

// OnTimeRate is DELIVERED / (DELIVERED + EXCEPTION) as a rounded percent.
// PENDING stops are not yet completed and do not count either way. The
// denominator floors to 1, so an empty day yields 0 rather than NaN.
func OnTimeRate(deliveries []*models.Delivery) int {
	delivered, completed := 0, 0
	for _, d := range deliveries {
		switch d.Status {
		case models.DeliveryDelivered:
			delivered++
			completed++
		case models.DeliveryException:
			completed++
		}
	}
	if completed == 0 {
		completed = 1
	}
	return roundPercent(delivered, completed)
}

// AverageRating is the mean feedback rating, 0 when there is none
func AverageRating(feedback []*models.Feedback) float64 {
	if len(feedback) == 0 {
		return 0
	}
	sum := 0
	for _, f := range feedback {
		sum += f.Rating
	}
	return float64(sum) / float64(len(feedback))
}

// PaymentSuccessRate is PAID / (PAID + DUE) as a rounded percent, with the
// same zero-denominator guard as OnTimeRate. Also returns the raw counts.
func PaymentSuccessRate(invoices []*models.Invoice) (rate, paid, due int) {
	for _, inv := range invoices {
		switch inv.Status {
		case models.InvoicePaid:
			paid++
		case models.InvoiceDue:
			due++
		}
	}
	total := paid + due
	if total == 0 {
		total = 1
	}
	return roundPercent(paid, total), paid, due
}

func roundPercent(num, den int) int {
	return int(float64(num)/float64(den)*100 + 0.5)
}

// Summary assembles today's dashboard metrics, cached briefly since the
// admin view polls it
func (s *AnalyticsService) Summary(ctx context.Context) (*models.AnalyticsSummary, error) {
	if data, ok := cache.GetCached(ctx, cache.AnalyticsKey); ok {
		var summary models.AnalyticsSummary
		if err := json.Unmarshal(data, &summary); err == nil {
			return &summary, nil
		}
	}

	subs, err := s.subscriptionRepo.ListActive(ctx)
	if err != nil {
		return nil, err
	}
	deliveries, err := s.deliveryRepo.ListByDate(ctx, timeutil.Today())
	if err != nil {
		return nil, err
	}
	invoices, err := s.invoiceRepo.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	weekAgo := timeutil.Now().AddDate(0, 0, -7).Format(timeutil.DateLayout)
	feedback, err := s.feedbackRepo.ListSince(ctx, weekAgo)
	if err != nil {
		return nil, err
	}

	rate, paid, due := PaymentSuccessRate(invoices)
	summary := &models.AnalyticsSummary{
		MRR:                ComputeMRR(subs),
		ActiveSubs:         len(subs),
		OnTimeRate:         OnTimeRate(deliveries),
		AvgRating:          AverageRating(feedback),
		PaymentSuccessRate: rate,
		InvoicesPaid:       paid,
		InvoicesDue:        due,
	}

	if data, err := json.Marshal(summary); err == nil {
		cache.SetCached(ctx, cache.AnalyticsKey, data, time.Minute)
	}

	return summary, nil
}
