package handlers

import (
	"net/http"

	"lunchbox-backend/internal/services"
	"lunchbox-backend/pkg/utils"
)

type AnalyticsHandler struct {
	Service *services.AnalyticsService
}

func NewAnalyticsHandler(s *services.AnalyticsService) *AnalyticsHandler {
	return &AnalyticsHandler{Service: s}
}

// GetSummary returns the dashboard metrics snapshot
// GET /api/analytics/summary
func (h *AnalyticsHandler) GetSummary(w http.ResponseWriter, r *http.Request) {
	summary, err := h.Service.Summary(r.Context())
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "Failed to compute analytics")
		return
	}

	utils.JSON(w, http.StatusOK, summary)
}
