package auth

import (
	"testing"

	"lunchbox-backend/internal/config"
	"lunchbox-backend/internal/models"
)

func testConfig(secret string) *config.Config {
	cfg := &config.Config{}
	cfg.JWT.Secret = secret
	cfg.JWT.ExpirationHours = 24
	cfg.JWT.Issuer = "lunchbox-backend"
	return cfg
}

func TestGenerateAndValidateToken(t *testing.T) {
	manager := NewJWTManager(testConfig("test-secret"))
	user := &models.User{ID: 7, Email: "ops@lunchbuddy.in", Role: "ops"}

	token, err := manager.GenerateToken(user)
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}
	if token == "" {
		t.Fatal("GenerateToken returned empty token")
	}

	claims, err := manager.ValidateToken(token)
	if err != nil {
		t.Fatalf("ValidateToken: %v", err)
	}
	if claims.UserID != 7 || claims.Email != "ops@lunchbuddy.in" || claims.Role != "ops" {
		t.Errorf("claims = %+v, want userID 7, email ops@lunchbuddy.in, role ops", claims)
	}
}

func TestValidateTokenWrongSecret(t *testing.T) {
	token, err := NewJWTManager(testConfig("secret-a")).GenerateToken(&models.User{ID: 1})
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	if _, err := NewJWTManager(testConfig("secret-b")).ValidateToken(token); err == nil {
		t.Error("expected validation to fail with a different secret")
	}
}

func TestValidateTokenGarbage(t *testing.T) {
	manager := NewJWTManager(testConfig("test-secret"))
	if _, err := manager.ValidateToken("not.a.token"); err == nil {
		t.Error("expected error for malformed token")
	}
}
