package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestNotifyEmailRejectsInvalidAddress(t *testing.T) {
	h := NewNotifyHandler(nil)

	for _, email := range []string{"", "plainaddress", "no@tld", "two@@example.com", "spaces in@example.com"} {
		body := strings.NewReader(`{"email": "` + email + `"}`)
		req := httptest.NewRequest(http.MethodPost, "/api/notify/email", body)
		rec := httptest.NewRecorder()
		h.NotifyEmail(rec, req)

		if rec.Code != http.StatusBadRequest {
			t.Errorf("email %q: status = %d, want 400", email, rec.Code)
		}

		var resp map[string]string
		if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
			t.Fatalf("email %q: decoding response: %v", email, err)
		}
		if resp["error"] == "" {
			t.Errorf("email %q: expected an error message in the response", email)
		}
	}
}

func TestNotifyWhatsAppRejectsInvalidNumber(t *testing.T) {
	h := NewNotifyHandler(nil)

	for _, phone := range []string{"", "0123456789", "12345", "+91-abc-12345", "+9198765432101234567"} {
		payload, _ := json.Marshal(map[string]string{"phone": phone})
		req := httptest.NewRequest(http.MethodPost, "/api/notify/whatsapp", strings.NewReader(string(payload)))
		rec := httptest.NewRecorder()
		h.NotifyWhatsApp(rec, req)

		if rec.Code != http.StatusBadRequest {
			t.Errorf("phone %q: status = %d, want 400", phone, rec.Code)
		}
	}
}

func TestNotifyEmailRejectsMalformedBody(t *testing.T) {
	h := NewNotifyHandler(nil)

	req := httptest.NewRequest(http.MethodPost, "/api/notify/email", strings.NewReader("{not json"))
	rec := httptest.NewRecorder()
	h.NotifyEmail(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}

func TestEmailPattern(t *testing.T) {
	valid := []string{"parent@example.com", "a.b+tag@school.edu.in"}
	for _, email := range valid {
		if !emailPattern.MatchString(email) {
			t.Errorf("emailPattern rejected valid address %q", email)
		}
	}
}

// The handler normalizes spaces and dashes before matching, so the raw
// pattern only needs to cover the compact form
func TestPhonePattern(t *testing.T) {
	valid := []string{"+919876543210", "919876543210", "98765432"}
	for _, phone := range valid {
		if !phonePattern.MatchString(phone) {
			t.Errorf("phonePattern rejected valid number %q", phone)
		}
	}

	invalid := []string{"0987654321", "+0123456789", "1234567"}
	for _, phone := range invalid {
		if phonePattern.MatchString(phone) {
			t.Errorf("phonePattern accepted invalid number %q", phone)
		}
	}
}
