package handlers

import (
	"encoding/json"
	"net/http"

	"lunchbox-backend/internal/cache"
	"lunchbox-backend/internal/models"
	"lunchbox-backend/internal/repositories"
	"lunchbox-backend/internal/timeutil"
	"lunchbox-backend/pkg/utils"
)

type FeedbackHandler struct {
	Repo *repositories.FeedbackRepository
}

func NewFeedbackHandler(repo *repositories.FeedbackRepository) *FeedbackHandler {
	return &FeedbackHandler{Repo: repo}
}

// CreateFeedback records a guardian's rating for a delivered lunch
// POST /api/feedback
func (h *FeedbackHandler) CreateFeedback(w http.ResponseWriter, r *http.Request) {
	var req models.CreateFeedbackRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.ChildID <= 0 {
		utils.Error(w, http.StatusBadRequest, "Invalid childId")
		return
	}
	if req.Rating < 1 || req.Rating > 5 {
		utils.Error(w, http.StatusBadRequest, "Rating must be between 1 and 5")
		return
	}
	if _, err := timeutil.ParseDate(req.Date); err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid date, expected YYYY-MM-DD")
		return
	}

	f := &models.Feedback{
		ChildID: req.ChildID,
		Date:    req.Date,
		Rating:  req.Rating,
		Tags:    req.Tags,
		Comment: req.Comment,
	}
	if err := h.Repo.Create(r.Context(), f); err != nil {
		utils.Error(w, http.StatusInternalServerError, "Failed to save feedback")
		return
	}

	// Average rating feeds the analytics summary
	cache.InvalidateKeys(r.Context(), cache.AnalyticsKey)
	utils.JSON(w, http.StatusCreated, f)
}
