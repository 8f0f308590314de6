package handlers

import (
	"encoding/json"
	"net/http"
	"regexp"
	"strings"

	"lunchbox-backend/internal/models"
	"lunchbox-backend/internal/repositories"
	"lunchbox-backend/pkg/utils"
)

// Validation patterns for landing-page opt-ins. The phone pattern is
// E.164-ish: optional +, no leading zero, 8 to 15 digits.
var (
	emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)
	phonePattern = regexp.MustCompile(`^\+?[1-9]\d{7,14}$`)
)

type NotifyHandler struct {
	Repo *repositories.WaitlistRepository
}

func NewNotifyHandler(repo *repositories.WaitlistRepository) *NotifyHandler {
	return &NotifyHandler{Repo: repo}
}

// NotifyEmail records an email opt-in from the landing page
// POST /api/notify/email
func (h *NotifyHandler) NotifyEmail(w http.ResponseWriter, r *http.Request) {
	var req models.NotifyEmailRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	email := strings.TrimSpace(req.Email)
	if !emailPattern.MatchString(email) {
		utils.Error(w, http.StatusBadRequest, "Invalid email address")
		return
	}

	if err := h.Repo.Create(r.Context(), models.OptInEmail, email); err != nil {
		utils.Error(w, http.StatusInternalServerError, "Failed to save signup")
		return
	}

	utils.JSON(w, http.StatusOK, map[string]bool{"ok": true})
}

// NotifyWhatsApp records a WhatsApp opt-in from the landing page
// POST /api/notify/whatsapp
func (h *NotifyHandler) NotifyWhatsApp(w http.ResponseWriter, r *http.Request) {
	var req models.NotifyWhatsAppRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	// Spaces and dashes are presentation, not identity
	phone := strings.NewReplacer(" ", "", "-", "").Replace(strings.TrimSpace(req.Phone))
	if !phonePattern.MatchString(phone) {
		utils.Error(w, http.StatusBadRequest, "Invalid phone number")
		return
	}

	if err := h.Repo.Create(r.Context(), models.OptInWhatsApp, phone); err != nil {
		utils.Error(w, http.StatusInternalServerError, "Failed to save signup")
		return
	}

	utils.JSON(w, http.StatusOK, map[string]bool{"ok": true})
}
