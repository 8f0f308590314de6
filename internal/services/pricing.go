package services

import (
	"fmt"

	"lunchbox-backend/internal/models"
)

// Fixed discount amounts in whole rupees. Coupon validity is decided by
// the coupon_codes table; the discount value itself is flat.
const (
	CouponDiscount   = 100
	ReferralDiscount = 50
)

// planPrices is the fixed per-cycle price table in whole rupees
var planPrices = map[string]int{
	models.PlanWeekly:  499,
	models.PlanMonthly: 1799,
}

// PlanPrice returns the per-cycle base price for a plan
func PlanPrice(planID string) (int, error) {
	price, ok := planPrices[planID]
	if !ok {
		return 0, fmt.Errorf("unknown plan %q", planID)
	}
	return price, nil
}

// FinalAmount computes the amount due for a plan after discounts,
// clamped at zero. hasCoupon must reflect a server-validated coupon.
func FinalAmount(planID string, hasCoupon, useReferral bool) (int, error) {
	base, err := PlanPrice(planID)
	if err != nil {
		return 0, err
	}

	discount := 0
	if hasCoupon {
		discount += CouponDiscount
	}
	if useReferral {
		discount += ReferralDiscount
	}

	amount := base - discount
	if amount < 0 {
		amount = 0
	}
	return amount, nil
}

// MonthlyEquivalent normalizes a subscription's price to a monthly figure
// for MRR: weekly cycles bill ~4 times a month, monthly as-is.
func MonthlyEquivalent(sub *models.Subscription) int {
	if sub.PlanID == models.PlanWeekly {
		return sub.Price * 4
	}
	return sub.Price
}
