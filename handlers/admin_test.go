package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/kristjanb/petition/cliparse"
	"github.com/kristjanb/petition/session"
	"github.com/kristjanb/petition/storage/memory"
	"github.com/kristjanb/petition/testutil"
)

func newAdminHandler(t *testing.T) (*AdminHandler, *memory.Store, *session.Manager) {
	t.Helper()

	store := testutil.NewStore(t)
	sessions := session.NewManager()
	cfg := cliparse.Config{Environment: cliparse.EnvDevelopment}

	return NewAdminHandler(store, store, sessions, cfg), store, sessions
}

func sessionCookie(t *testing.T, w *httptest.ResponseRecorder) *http.Cookie {
	t.Helper()
	for _, c := range w.Result().Cookies() {
		if c.Name == session.CookieName {
			return c
		}
	}
	t.Fatal("no session cookie set")
	return nil
}

func TestLogin(t *testing.T) {
	t.Run("valid credentials establish a session", func(t *testing.T) {
		handler, store, sessions := newAdminHandler(t)
		userID := testutil.AddAdmin(t, store, "admin", "leyndarmál")

		w := httptest.NewRecorder()
		handler.Login(w, testutil.MakeFormRequest("POST", "/admin/login", url.Values{
			"username": {"admin"},
			"password": {"leyndarmál"},
		}))

		testutil.AssertRedirect(t, w, "/admin")

		cookie := sessionCookie(t, w)
		got, ok := sessions.UserID(cookie.Value)
		if !ok || got != userID {
			t.Errorf("session resolves to %d, %v; want %d, true", got, ok, userID)
		}
	})

	t.Run("wrong password leaves a one-time message", func(t *testing.T) {
		handler, store, _ := newAdminHandler(t)
		testutil.AddAdmin(t, store, "admin", "leyndarmál")

		w := httptest.NewRecorder()
		handler.Login(w, testutil.MakeFormRequest("POST", "/admin/login", url.Values{
			"username": {"admin"},
			"password": {"wrong"},
		}))

		testutil.AssertRedirect(t, w, "/admin/login")
		cookie := sessionCookie(t, w)

		// The message shows on the next login render, once.
		r := httptest.NewRequest("GET", "/admin/login", nil)
		r.AddCookie(cookie)
		w = httptest.NewRecorder()
		handler.LoginForm(w, r)

		testutil.AssertStatus(t, w, http.StatusOK)
		if !strings.Contains(w.Body.String(), "Notendanafn eða lykilorð vitlaust.") {
			t.Error("failure message missing on first render")
		}

		w = httptest.NewRecorder()
		handler.LoginForm(w, r)
		if strings.Contains(w.Body.String(), "Notendanafn eða lykilorð vitlaust.") {
			t.Error("failure message shown twice")
		}
	})

	t.Run("unknown username behaves like a wrong password", func(t *testing.T) {
		handler, _, _ := newAdminHandler(t)

		w := httptest.NewRecorder()
		handler.Login(w, testutil.MakeFormRequest("POST", "/admin/login", url.Values{
			"username": {"ghost"},
			"password": {"whatever"},
		}))

		testutil.AssertRedirect(t, w, "/admin/login")
	})
}

func TestLogout(t *testing.T) {
	handler, store, sessions := newAdminHandler(t)
	userID := testutil.AddAdmin(t, store, "admin", "leyndarmál")
	id := sessions.Create(userID)

	r := httptest.NewRequest("GET", "/admin/logout", nil)
	r.AddCookie(&http.Cookie{Name: session.CookieName, Value: id})
	w := httptest.NewRecorder()
	handler.Logout(w, r)

	if w.Code != http.StatusFound || w.Header().Get("Location") != "/" {
		t.Errorf("logout = %d %q, want 302 /", w.Code, w.Header().Get("Location"))
	}
	if _, ok := sessions.UserID(id); ok {
		t.Error("session survived logout")
	}

	cookie := sessionCookie(t, w)
	if cookie.MaxAge != -1 {
		t.Error("session cookie not cleared")
	}

	// Logout without any session still redirects home.
	w = httptest.NewRecorder()
	handler.Logout(w, httptest.NewRequest("GET", "/admin/logout", nil))
	if w.Code != http.StatusFound || w.Header().Get("Location") != "/" {
		t.Error("anonymous logout did not redirect home")
	}
}

func TestAdminList(t *testing.T) {
	handler, store, sessions := newAdminHandler(t)
	userID := testutil.AddAdmin(t, store, "admin", "leyndarmál")
	testutil.AddSignatures(t, store, 3)

	id := sessions.Create(userID)
	r := httptest.NewRequest("GET", "/admin", nil)
	r.AddCookie(&http.Cookie{Name: session.CookieName, Value: id})

	w := httptest.NewRecorder()
	handler.List(w, r)

	testutil.AssertStatus(t, w, http.StatusOK)
	body := w.Body.String()
	if !strings.Contains(body, "admin") {
		t.Error("username missing from admin page")
	}
	if !strings.Contains(body, "Signer 2") {
		t.Error("signatures missing from admin listing")
	}
	if !strings.Contains(body, "/admin/delete/") {
		t.Error("delete forms missing")
	}
}

func TestDelete(t *testing.T) {
	handler, store, _ := newAdminHandler(t)
	testutil.AddSignatures(t, store, 2)

	t.Run("existing id", func(t *testing.T) {
		r := httptest.NewRequest("POST", "/admin/delete/1", nil)
		r.SetPathValue("id", "1")

		w := httptest.NewRecorder()
		handler.Delete(w, r)

		testutil.AssertRedirect(t, w, "/admin")
		count, _ := store.Count(context.Background())
		if count != 1 {
			t.Errorf("count = %d, want 1", count)
		}
	})

	t.Run("absent id is a silent no-op", func(t *testing.T) {
		r := httptest.NewRequest("POST", "/admin/delete/9999", nil)
		r.SetPathValue("id", "9999")

		w := httptest.NewRecorder()
		handler.Delete(w, r)

		testutil.AssertRedirect(t, w, "/admin")
		count, _ := store.Count(context.Background())
		if count != 1 {
			t.Errorf("count = %d, want 1 (unchanged)", count)
		}
	})

	t.Run("malformed id still redirects", func(t *testing.T) {
		r := httptest.NewRequest("POST", "/admin/delete/abc", nil)
		r.SetPathValue("id", "abc")

		w := httptest.NewRecorder()
		handler.Delete(w, r)
		testutil.AssertRedirect(t, w, "/admin")
	})
}
