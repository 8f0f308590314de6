package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"lunchbox-backend/internal/cache"
	"lunchbox-backend/internal/models"
	"lunchbox-backend/internal/repositories"
	"lunchbox-backend/internal/timeutil"
	"lunchbox-backend/pkg/utils"
)

type MenuHandler struct {
	Repo *repositories.MenuRepository
}

func NewMenuHandler(repo *repositories.MenuRepository) *MenuHandler {
	return &MenuHandler{Repo: repo}
}

// ListMenus returns published menus in a date range
// GET /api/menus?from=YYYY-MM-DD&to=YYYY-MM-DD
func (h *MenuHandler) ListMenus(w http.ResponseWriter, r *http.Request) {
	from := r.URL.Query().Get("from")
	to := r.URL.Query().Get("to")
	if _, err := timeutil.ParseDate(from); err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid from date, expected YYYY-MM-DD")
		return
	}
	if _, err := timeutil.ParseDate(to); err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid to date, expected YYYY-MM-DD")
		return
	}

	key := fmt.Sprintf(cache.MenusKeyFmt, from, to)
	if data, ok := cache.GetCached(r.Context(), key); ok {
		w.Header().Set("Content-Type", "application/json")
		w.Write(data)
		return
	}

	menus, err := h.Repo.ListRange(r.Context(), from, to)
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "Failed to list menus")
		return
	}
	if menus == nil {
		menus = []*models.MenuItem{}
	}

	// Menus are immutable once published, so a longer TTL is safe
	if data, err := json.Marshal(menus); err == nil {
		cache.SetCached(r.Context(), key, data, 10*time.Minute)
	}

	utils.JSON(w, http.StatusOK, menus)
}
