package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func TestAPIKeyOpenWhenUnconfigured(t *testing.T) {
	handler := APIKey("")(okHandler())

	req := httptest.NewRequest(http.MethodGet, "/api/children", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, want 200 when no key is configured", rec.Code)
	}
}

func TestAPIKeyRejectsMissingOrWrongKey(t *testing.T) {
	handler := APIKey("secret")(okHandler())

	for _, sent := range []string{"", "wrong"} {
		req := httptest.NewRequest(http.MethodGet, "/api/children", nil)
		if sent != "" {
			req.Header.Set("X-Api-Key", sent)
		}
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		if rec.Code != http.StatusUnauthorized {
			t.Errorf("key %q: status = %d, want 401", sent, rec.Code)
		}
	}
}

func TestAPIKeyAcceptsCorrectKey(t *testing.T) {
	handler := APIKey("secret")(okHandler())

	req := httptest.NewRequest(http.MethodGet, "/api/children", nil)
	req.Header.Set("X-Api-Key", "secret")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, want 200 with the correct key", rec.Code)
	}
}
