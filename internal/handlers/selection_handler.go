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

type SelectionHandler struct {
	Service *services.SelectionService
}

func NewSelectionHandler(s *services.SelectionService) *SelectionHandler {
	return &SelectionHandler{Service: s}
}

// ToggleSelection flips the skip state for (childId, date) and returns
// the authoritative result
// POST /api/selections
func (h *SelectionHandler) ToggleSelection(w http.ResponseWriter, r *http.Request) {
	var req models.ToggleSelectionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.ChildID <= 0 {
		utils.Error(w, http.StatusBadRequest, "Invalid childId")
		return
	}

	resp, err := h.Service.Toggle(r.Context(), req.ChildID, req.Date)
	if err != nil {
		if errors.Is(err, services.ErrInvalidDate) {
			utils.Error(w, http.StatusBadRequest, "Invalid date, expected YYYY-MM-DD")
			return
		}
		utils.Error(w, http.StatusInternalServerError, "Failed to toggle selection")
		return
	}

	utils.JSON(w, http.StatusOK, resp)
}

// ListSelections returns a child's full skip set
// GET /api/selections?childId=N
func (h *SelectionHandler) ListSelections(w http.ResponseWriter, r *http.Request) {
	childID, err := strconv.Atoi(r.URL.Query().Get("childId"))
	if err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid childId")
		return
	}

	selections, err := h.Service.ListByChild(r.Context(), childID)
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "Failed to list selections")
		return
	}
	if selections == nil {
		selections = []*models.Selection{}
	}

	utils.JSON(w, http.StatusOK, selections)
}
