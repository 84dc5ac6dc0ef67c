package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/kristjanb/petition/cliparse"
	"github.com/kristjanb/petition/session"
	"github.com/kristjanb/petition/storage"
	"github.com/kristjanb/petition/templates"
)

const (
	adminTitle = "Undirskriftarlisti - Umsjón"
	loginTitle = "Innskráning"

	loginFailureMessage = "Notendanafn eða lykilorð vitlaust."
)

type AdminHandler struct {
	signatures storage.SignatureStore
	users      storage.UserStore
	sessions   *session.Manager
	cfg        cliparse.Config
}

func NewAdminHandler(signatures storage.SignatureStore, users storage.UserStore, sessions *session.Manager, cfg cliparse.Config) *AdminHandler {
	return &AdminHandler{
		signatures: signatures,
		users:      users,
		sessions:   sessions,
		cfg:        cfg,
	}
}

func (h *AdminHandler) secureCookies() bool {
	return !h.cfg.Development()
}

// username resolves the logged-in administrator's name for display.
// The route is already gated, so failures only cost the header label.
func (h *AdminHandler) username(r *http.Request) string {
	id, ok := session.ReadCookie(r)
	if !ok {
		return ""
	}
	userID, ok := h.sessions.UserID(id)
	if !ok {
		return ""
	}

	user, err := h.users.FindByID(r.Context(), userID)
	if err != nil {
		slog.Error("failed to resolve session user", "user_id", userID, "error", err)
		return ""
	}
	return user.Username
}

// List handles GET /admin
func (h *AdminHandler) List(w http.ResponseWriter, r *http.Request) {
	page := parsePage(r)

	registrations, err := h.signatures.List(r.Context(), page)
	if err != nil {
		slog.Error("failed to list signatures", "page", page, "error", err)
		registrations = nil
	}

	total, err := h.signatures.Count(r.Context())
	countOK := err == nil
	if err != nil {
		slog.Error("failed to count signatures", "error", err)
	}

	templates.Render(w, http.StatusOK, "admin.html", templates.AdminData{
		Title:         adminTitle,
		Username:      h.username(r),
		Registrations: registrations,
		Links:         buildLinks("/admin/", page, len(registrations)),
		Total:         total,
		Page:          pageInfo(page, total, countOK),
	})
}

// LoginForm handles GET /admin/login
func (h *AdminHandler) LoginForm(w http.ResponseWriter, r *http.Request) {
	var failure string
	if id, ok := session.ReadCookie(r); ok {
		failure = h.sessions.TakeFlash(id)
	}

	templates.Render(w, http.StatusOK, "login.html", templates.LoginData{
		Title:          loginTitle,
		FailureMessage: failure,
	})
}

// Login handles POST /admin/login
func (h *AdminHandler) Login(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	username := r.PostFormValue("username")
	password := r.PostFormValue("password")

	user, err := h.users.FindByUsername(r.Context(), username)
	switch {
	case errors.Is(err, storage.ErrNotFound):
		// Fall through to the shared failure path without revealing
		// whether the username exists.
	case err != nil:
		slog.Error("failed to look up user", "username", username, "error", err)
	default:
		if storage.ComparePasswords(password, user.Password) {
			id := h.sessions.Create(user.ID)
			session.WriteCookie(w, id, h.secureCookies())

			slog.Info("admin logged in", "username", username)
			http.Redirect(w, r, "/admin", http.StatusSeeOther)
			return
		}
	}

	// One-time failure message for the next login page render.
	sessionID, _ := session.ReadCookie(r)
	sessionID = h.sessions.SetFlash(sessionID, loginFailureMessage)
	session.WriteCookie(w, sessionID, h.secureCookies())

	http.Redirect(w, r, "/admin/login", http.StatusSeeOther)
}

// Logout handles GET /admin/logout. Tears the session down regardless
// of prior state.
func (h *AdminHandler) Logout(w http.ResponseWriter, r *http.Request) {
	if id, ok := session.ReadCookie(r); ok {
		h.sessions.Destroy(id)
	}
	session.ClearCookie(w, h.secureCookies())

	http.Redirect(w, r, "/", http.StatusFound)
}

// Delete handles POST /admin/delete/{id}. Deleting an id that does not
// exist is a silent no-op; either way the admin lands back on the
// listing.
func (h *AdminHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err == nil {
		if err := h.signatures.Delete(r.Context(), id); err != nil {
			slog.Error("failed to delete signature", "id", id, "error", err)
		} else {
			slog.Info("signature deleted", "id", id)
		}
	}

	http.Redirect(w, r, "/admin", http.StatusSeeOther)
}
