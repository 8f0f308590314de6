package handlers

import (
	"encoding/json"
	"log"
	"net/http"

	"lunchbox-backend/internal/auth"
	"lunchbox-backend/internal/models"
	"lunchbox-backend/internal/repositories"
	"lunchbox-backend/pkg/utils"
)

// AuthHandler issues dashboard tokens for ops and admin users
type AuthHandler struct {
	UserRepo   *repositories.UserRepository
	JWTManager *auth.JWTManager
}

func NewAuthHandler(userRepo *repositories.UserRepository, jwtManager *auth.JWTManager) *AuthHandler {
	return &AuthHandler{UserRepo: userRepo, JWTManager: jwtManager}
}

// Login authenticates a dashboard user and returns a JWT
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req models.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.Email == "" || req.Password == "" {
		utils.Error(w, http.StatusBadRequest, "Email and password are required")
		return
	}

	user, err := h.UserRepo.GetByEmail(r.Context(), req.Email)
	if err != nil {
		// Same message for unknown email and wrong password
		utils.Error(w, http.StatusUnauthorized, "Invalid credentials")
		return
	}
	if !auth.VerifyPassword(user.PasswordHash, req.Password) {
		utils.Error(w, http.StatusUnauthorized, "Invalid credentials")
		return
	}
	if !user.IsActive {
		utils.Error(w, http.StatusForbidden, "Account suspended. Please contact administrator.")
		return
	}

	token, err := h.JWTManager.GenerateToken(user)
	if err != nil {
		log.Printf("[Auth] Failed to generate token for %s: %v", user.Email, err)
		utils.Error(w, http.StatusInternalServerError, "Failed to generate token")
		return
	}

	utils.JSON(w, http.StatusOK, &models.AuthResponse{Token: token, User: user})
}
