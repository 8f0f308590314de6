package handlers

import (
	"net/http"

	"lunchbox-backend/internal/health"
	"lunchbox-backend/pkg/utils"
)

type HealthHandler struct {
	Checker *health.HealthChecker
}

func NewHealthHandler(checker *health.HealthChecker) *HealthHandler {
	return &HealthHandler{Checker: checker}
}

// BasicHealth reports liveness plus dependency status
func (h *HealthHandler) BasicHealth(w http.ResponseWriter, r *http.Request) {
	status := h.Checker.CheckBasic()

	code := http.StatusOK
	if status.Status != "healthy" {
		code = http.StatusServiceUnavailable
	}
	utils.JSON(w, code, status)
}

// ReadinessHealth is the readiness probe for Kubernetes
func (h *HealthHandler) ReadinessHealth(w http.ResponseWriter, r *http.Request) {
	h.BasicHealth(w, r)
}
