package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"lunchbox-backend/internal/cache"
	"lunchbox-backend/internal/models"
	"lunchbox-backend/internal/services"
	"lunchbox-backend/internal/timeutil"
	"lunchbox-backend/pkg/utils"

	"github.com/gorilla/mux"
	"github.com/jackc/pgx/v5"
)

type DeliveryHandler struct {
	Service *services.DeliveryService
}

func NewDeliveryHandler(s *services.DeliveryService) *DeliveryHandler {
	return &DeliveryHandler{Service: s}
}

// ListDeliveries returns a day's deliveries as a flat list. Clients group
// by routeName themselves; the pre-grouped view lives at /deliveries/routes.
// GET /api/deliveries?date=YYYY-MM-DD
func (h *DeliveryHandler) ListDeliveries(w http.ResponseWriter, r *http.Request) {
	date := r.URL.Query().Get("date")
	if date == "" {
		date = timeutil.Today()
	}
	if _, err := timeutil.ParseDate(date); err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid date, expected YYYY-MM-DD")
		return
	}

	key := fmt.Sprintf(cache.DeliveriesFmt, date)
	if data, ok := cache.GetCached(r.Context(), key); ok {
		w.Header().Set("Content-Type", "application/json")
		w.Write(data)
		return
	}

	deliveries, err := h.Service.ListByDate(r.Context(), date)
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "Failed to list deliveries")
		return
	}
	if deliveries == nil {
		deliveries = []*models.Delivery{}
	}

	// Short TTL: the board also gets push updates over the websocket
	if data, err := json.Marshal(deliveries); err == nil {
		cache.SetCached(r.Context(), key, data, 30*time.Second)
	}

	utils.JSON(w, http.StatusOK, deliveries)
}

// ListRoutes returns the same day's deliveries grouped by route for
// dispatch boards that want the server-side grouping
// GET /api/deliveries/routes?date=YYYY-MM-DD
func (h *DeliveryHandler) ListRoutes(w http.ResponseWriter, r *http.Request) {
	date := r.URL.Query().Get("date")
	if date == "" {
		date = timeutil.Today()
	}
	if _, err := timeutil.ParseDate(date); err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid date, expected YYYY-MM-DD")
		return
	}

	key := fmt.Sprintf(cache.RoutesFmt, date)
	if data, ok := cache.GetCached(r.Context(), key); ok {
		w.Header().Set("Content-Type", "application/json")
		w.Write(data)
		return
	}

	routes, err := h.Service.ListRoutes(r.Context(), date)
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "Failed to list deliveries")
		return
	}
	if routes == nil {
		routes = []models.Route{}
	}

	if data, err := json.Marshal(routes); err == nil {
		cache.SetCached(r.Context(), key, data, 30*time.Second)
	}

	utils.JSON(w, http.StatusOK, routes)
}

// MarkDelivered marks a stop delivered. Calling it again for the same
// stop returns the stored terminal record unchanged.
// POST /api/deliveries/{id}/mark-delivered
func (h *DeliveryHandler) MarkDelivered(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid delivery ID")
		return
	}

	delivery, err := h.Service.MarkDelivered(r.Context(), id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			utils.Error(w, http.StatusNotFound, "Delivery not found")
			return
		}
		utils.Error(w, http.StatusInternalServerError, "Failed to mark delivered")
		return
	}

	utils.JSON(w, http.StatusOK, delivery)
}
