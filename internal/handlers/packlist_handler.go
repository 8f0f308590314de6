package handlers

import (
	"net/http"

	"lunchbox-backend/internal/services"
	"lunchbox-backend/internal/timeutil"
	"lunchbox-backend/pkg/utils"
)

type PacklistHandler struct {
	Service *services.PacklistService
}

func NewPacklistHandler(s *services.PacklistService) *PacklistHandler {
	return &PacklistHandler{Service: s}
}

// GetPacklist returns the kitchen packing view for a date
// GET /ops/packlist?date=YYYY-MM-DD
func (h *PacklistHandler) GetPacklist(w http.ResponseWriter, r *http.Request) {
	date := r.URL.Query().Get("date")
	if date == "" {
		date = timeutil.Today()
	}
	if _, err := timeutil.ParseDate(date); err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid date, expected YYYY-MM-DD")
		return
	}

	packlist, err := h.Service.Build(r.Context(), date)
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "Failed to build packlist")
		return
	}

	utils.JSON(w, http.StatusOK, packlist)
}

// GetPacklistCSV streams the packlist as the kitchen export CSV
// GET /ops/packlist.csv?date=YYYY-MM-DD
func (h *PacklistHandler) GetPacklistCSV(w http.ResponseWriter, r *http.Request) {
	date := r.URL.Query().Get("date")
	if date == "" {
		date = timeutil.Today()
	}
	if _, err := timeutil.ParseDate(date); err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid date, expected YYYY-MM-DD")
		return
	}

	packlist, err := h.Service.Build(r.Context(), date)
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "Failed to build packlist")
		return
	}
	data, err := services.PacklistCSV(packlist)
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "Failed to render packlist")
		return
	}

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", `attachment; filename="packlist_`+date+`.csv"`)
	w.Write(data)
}
