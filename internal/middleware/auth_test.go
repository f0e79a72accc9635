package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/ClarkyAU/passforge/internal/crypto"
)

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})
}

func TestAdminAuthMissingHeader(t *testing.T) {
	handler := AdminAuth("test-secret")(okHandler())

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/wordlists", nil))

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("expected 401, got %d", rec.Code)
	}
}

func TestAdminAuthBadFormat(t *testing.T) {
	handler := AdminAuth("test-secret")(okHandler())

	for _, header := range []string{"Basic dXNlcjpwYXNz", "Bearer ", "token-without-scheme"} {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/wordlists", nil)
		req.Header.Set("Authorization", header)

		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		if rec.Code != http.StatusUnauthorized {
			t.Errorf("header %q: expected 401, got %d", header, rec.Code)
		}
	}
}

func TestAdminAuthInvalidToken(t *testing.T) {
	handler := AdminAuth("test-secret")(okHandler())

	req := httptest.NewRequest(http.MethodGet, "/api/v1/wordlists", nil)
	req.Header.Set("Authorization", "Bearer not-a-token")

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("expected 401, got %d", rec.Code)
	}
}

func TestAdminAuthWrongSecret(t *testing.T) {
	token, err := crypto.GenerateAdminToken("other-secret", time.Hour)
	if err != nil {
		t.Fatalf("GenerateAdminToken() unexpected error: %v", err)
	}

	handler := AdminAuth("test-secret")(okHandler())

	req := httptest.NewRequest(http.MethodGet, "/api/v1/wordlists", nil)
	req.Header.Set("Authorization", "Bearer "+token)

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("expected 401, got %d", rec.Code)
	}
}

func TestAdminAuthValidToken(t *testing.T) {
	token, err := crypto.GenerateAdminToken("test-secret", time.Hour)
	if err != nil {
		t.Fatalf("GenerateAdminToken() unexpected error: %v", err)
	}

	handler := AdminAuth("test-secret")(okHandler())

	req := httptest.NewRequest(http.MethodGet, "/api/v1/wordlists", nil)
	req.Header.Set("Authorization", "Bearer "+token)

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusNoContent {
		t.Errorf("expected 204, got %d", rec.Code)
	}
}
