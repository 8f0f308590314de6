package services

import (
	"testing"

	"lunchbox-backend/internal/models"
)

func TestPlanPrice(t *testing.T) {
	weekly, err := PlanPrice(models.PlanWeekly)
	if err != nil {
		t.Fatalf("PlanPrice(WEEKLY) returned error: %v", err)
	}
	if weekly != 499 {
		t.Errorf("weekly price = %d, want 499", weekly)
	}

	monthly, err := PlanPrice(models.PlanMonthly)
	if err != nil {
		t.Fatalf("PlanPrice(MONTHLY) returned error: %v", err)
	}
	if monthly != 1799 {
		t.Errorf("monthly price = %d, want 1799", monthly)
	}

	if _, err := PlanPrice("YEARLY"); err == nil {
		t.Error("expected error for unknown plan")
	}
}

func TestFinalAmount(t *testing.T) {
	tests := []struct {
		name        string
		planID      string
		hasCoupon   bool
		useReferral bool
		want        int
	}{
		{"weekly base", models.PlanWeekly, false, false, 499},
		{"weekly coupon", models.PlanWeekly, true, false, 399},
		{"weekly referral", models.PlanWeekly, false, true, 449},
		{"weekly both", models.PlanWeekly, true, true, 349},
		{"monthly both", models.PlanMonthly, true, true, 1649},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := FinalAmount(tt.planID, tt.hasCoupon, tt.useReferral)
			if err != nil {
				t.Fatalf("FinalAmount returned error: %v", err)
			}
			if got != tt.want {
				t.Errorf("FinalAmount = %d, want %d", got, tt.want)
			}
		})
	}
}

// The amount never goes negative, whatever discounts stack up
func TestFinalAmountClampsAtZero(t *testing.T) {
	got, err := FinalAmount(models.PlanWeekly, true, true)
	if err != nil {
		t.Fatal(err)
	}
	if got < 0 {
		t.Errorf("FinalAmount = %d, must not be negative", got)
	}
}

func TestMonthlyEquivalent(t *testing.T) {
	weekly := &models.Subscription{PlanID: models.PlanWeekly, Price: 499}
	if got := MonthlyEquivalent(weekly); got != 1996 {
		t.Errorf("weekly MonthlyEquivalent = %d, want 1996", got)
	}

	monthly := &models.Subscription{PlanID: models.PlanMonthly, Price: 1799}
	if got := MonthlyEquivalent(monthly); got != 1799 {
		t.Errorf("monthly MonthlyEquivalent = %d, want 1799", got)
	}
}
