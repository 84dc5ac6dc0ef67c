package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/kristjanb/petition/session"
)

func TestWithLoggingCallsNext(t *testing.T) {
	called := false
	handler := WithLogging(func(w http.ResponseWriter, r *http.Request) {
		called = true
		w.WriteHeader(http.StatusTeapot)
	})

	w := httptest.NewRecorder()
	handler(w, httptest.NewRequest("GET", "/", nil))

	if !called {
		t.Error("next handler not called")
	}
	if w.Code != http.StatusTeapot {
		t.Errorf("status = %d, want %d", w.Code, http.StatusTeapot)
	}
}

func TestWithRecovery(t *testing.T) {
	handler := WithRecovery(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	})

	w := httptest.NewRecorder()
	handler(w, httptest.NewRequest("GET", "/", nil))

	if w.Code != http.StatusInternalServerError {
		t.Errorf("status = %d, want 500", w.Code)
	}
}

func TestRequireLogin(t *testing.T) {
	sessions := session.NewManager()
	authenticated := sessions.Create(1)

	handler := RequireLogin(sessions, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	tests := []struct {
		name         string
		cookie       string
		wantStatus   int
		wantLocation string
	}{
		{
			name:         "no cookie redirects to login",
			wantStatus:   http.StatusFound,
			wantLocation: "/admin/login",
		},
		{
			name:         "stale session redirects to login",
			cookie:       "expired-session-id",
			wantStatus:   http.StatusFound,
			wantLocation: "/admin/login",
		},
		{
			name:       "authenticated session passes through",
			cookie:     authenticated,
			wantStatus: http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest("GET", "/admin", nil)
			if tt.cookie != "" {
				r.AddCookie(&http.Cookie{Name: session.CookieName, Value: tt.cookie})
			}

			w := httptest.NewRecorder()
			handler(w, r)

			if w.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", w.Code, tt.wantStatus)
			}
			if tt.wantLocation != "" && w.Header().Get("Location") != tt.wantLocation {
				t.Errorf("Location = %q, want %q", w.Header().Get("Location"), tt.wantLocation)
			}
		})
	}
}
