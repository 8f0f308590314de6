package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"lunchbox-backend/internal/cache"
	"lunchbox-backend/internal/models"
	"lunchbox-backend/internal/repositories"
	"lunchbox-backend/pkg/utils"
)

type ChildHandler struct {
	Repo *repositories.ChildRepository
}

func NewChildHandler(repo *repositories.ChildRepository) *ChildHandler {
	return &ChildHandler{Repo: repo}
}

var validCohorts = map[string]bool{
	models.CohortKG:     true,
	models.CohortJunior: true,
	models.CohortSenior: true,
}

// ListChildren returns all enrolled children
func (h *ChildHandler) ListChildren(w http.ResponseWriter, r *http.Request) {
	if data, ok := cache.GetCached(r.Context(), cache.ChildrenKey); ok {
		w.Header().Set("Content-Type", "application/json")
		w.Write(data)
		return
	}

	children, err := h.Repo.List(r.Context())
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "Failed to list children")
		return
	}
	if children == nil {
		children = []*models.Child{}
	}

	if data, err := json.Marshal(children); err == nil {
		cache.SetCached(r.Context(), cache.ChildrenKey, data, 5*time.Minute)
	}

	utils.JSON(w, http.StatusOK, children)
}

// CreateChild enrolls a child
func (h *ChildHandler) CreateChild(w http.ResponseWriter, r *http.Request) {
	var req models.CreateChildRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if req.Name == "" {
		utils.Error(w, http.StatusBadRequest, "Name is required")
		return
	}
	if !validCohorts[req.Cohort] {
		utils.Error(w, http.StatusBadRequest, "Invalid cohort")
		return
	}

	child := &models.Child{
		GuardianID:   req.GuardianID,
		Name:         req.Name,
		Cohort:       req.Cohort,
		ClassLabel:   req.ClassLabel,
		DietaryPrefs: req.DietaryPrefs,
		Allergens:    req.Allergens,
	}
	if err := h.Repo.Create(r.Context(), child); err != nil {
		utils.Error(w, http.StatusInternalServerError, "Failed to enroll child")
		return
	}

	cache.InvalidateChildCaches(r.Context())
	utils.JSON(w, http.StatusCreated, child)
}
