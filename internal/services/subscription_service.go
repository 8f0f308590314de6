package services

import (
	"context"
	"errors"
	"fmt"

	"lunchbox-backend/internal/cache"
	"lunchbox-backend/internal/models"
	"lunchbox-backend/internal/repositories"
	"lunchbox-backend/internal/timeutil"
)

// ErrInvalidCoupon is a business rejection: the code is unknown or
// inactive. The client's previewed discount must not survive it.
var ErrInvalidCoupon = errors.New("invalid coupon code")

type SubscriptionService struct {
	subscriptionRepo *repositories.SubscriptionRepository
	childRepo        *repositories.ChildRepository
}

func NewSubscriptionService(
	subscriptionRepo *repositories.SubscriptionRepository,
	childRepo *repositories.ChildRepository,
) *SubscriptionService {
	return &SubscriptionService{
		subscriptionRepo: subscriptionRepo,
		childRepo:        childRepo,
	}
}

// ListByChild returns the child's subscriptions, active first
func (s *SubscriptionService) ListByChild(ctx context.Context, childID int) ([]*models.Subscription, error) {
	return s.subscriptionRepo.ListByChild(ctx, childID)
}

// ChangePlan creates or changes a child's plan. The final amount is
// computed server-side from the fixed price table and validated
// discounts; the previous active subscription is replaced and the cycle
// invoice issued in one transaction.
func (s *SubscriptionService) ChangePlan(ctx context.Context, req *models.ChangePlanRequest) (*models.Subscription, error) {
	if _, err := s.childRepo.Get(ctx, req.ChildID); err != nil {
		return nil, fmt.Errorf("child not found: %w", err)
	}

	hasCoupon := false
	if req.CouponCode != "" {
		ok, err := s.subscriptionRepo.CouponExists(ctx, req.CouponCode)
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, ErrInvalidCoupon
		}
		hasCoupon = true
	}

	amount, err := FinalAmount(req.PlanID, hasCoupon, req.UseReferral)
	if err != nil {
		return nil, err
	}

	start := timeutil.Now()
	renewal := start.AddDate(0, 0, 7)
	if req.PlanID == models.PlanMonthly {
		renewal = start.AddDate(0, 1, 0)
	}

	sub := &models.Subscription{
		ChildID:     req.ChildID,
		PlanID:      req.PlanID,
		Status:      models.SubStatusActive,
		StartDate:   start.Format(timeutil.DateLayout),
		NextRenewal: renewal.Format(timeutil.DateLayout),
		Price:       amount,
		Currency:    "INR",
	}
	inv := &models.Invoice{
		PeriodStart: sub.StartDate,
		PeriodEnd:   sub.NextRenewal,
		Amount:      amount,
		Status:      models.InvoiceDue,
	}

	if err := s.subscriptionRepo.ChangePlan(ctx, sub, inv); err != nil {
		return nil, fmt.Errorf("failed to change plan: %w", err)
	}

	cache.InvalidateBillingCaches(ctx)
	return sub, nil
}
