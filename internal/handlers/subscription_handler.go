package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"lunchbox-backend/internal/models"
	"lunchbox-backend/internal/services"
	"lunchbox-backend/pkg/utils"
)

type SubscriptionHandler struct {
	Service *services.SubscriptionService
}

func NewSubscriptionHandler(s *services.SubscriptionService) *SubscriptionHandler {
	return &SubscriptionHandler{Service: s}
}

// ListSubscriptions returns a child's subscriptions, newest first
// GET /api/subscriptions?childId=N
func (h *SubscriptionHandler) ListSubscriptions(w http.ResponseWriter, r *http.Request) {
	childID, err := strconv.Atoi(r.URL.Query().Get("childId"))
	if err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid childId")
		return
	}

	subs, err := h.Service.ListByChild(r.Context(), childID)
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "Failed to list subscriptions")
		return
	}
	if subs == nil {
		subs = []*models.Subscription{}
	}

	utils.JSON(w, http.StatusOK, subs)
}

// ChangePlan creates or changes a child's plan. The amount is computed
// server-side; a rejected coupon fails the whole operation.
// POST /api/subscriptions
func (h *SubscriptionHandler) ChangePlan(w http.ResponseWriter, r *http.Request) {
	var req models.ChangePlanRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.ChildID <= 0 {
		utils.Error(w, http.StatusBadRequest, "Invalid childId")
		return
	}
	if req.PlanID != models.PlanWeekly && req.PlanID != models.PlanMonthly {
		utils.Error(w, http.StatusBadRequest, "Invalid planId")
		return
	}

	sub, err := h.Service.ChangePlan(r.Context(), &req)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCoupon) {
			utils.Error(w, http.StatusUnprocessableEntity, "Invalid coupon code")
			return
		}
		utils.Error(w, http.StatusInternalServerError, "Failed to change plan")
		return
	}

	utils.JSON(w, http.StatusCreated, sub)
}
