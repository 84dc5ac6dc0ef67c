package router

import (
	"net/http"

	"github.com/kristjanb/petition/cliparse"
	"github.com/kristjanb/petition/handlers"
	"github.com/kristjanb/petition/middleware"
	"github.com/kristjanb/petition/session"
	"github.com/kristjanb/petition/storage"
)

// Stores bundles the persistence dependencies the routes need.
type Stores struct {
	Signatures storage.SignatureStore
	Users      storage.UserStore
}

func NewRouter(stores Stores, sessions *session.Manager, cfg cliparse.Config) *http.ServeMux {
	mux := http.NewServeMux()

	// Initialize handlers
	public := handlers.NewPublicHandler(stores.Signatures)
	admin := handlers.NewAdminHandler(stores.Signatures, stores.Users, sessions, cfg)

	wrap := func(h http.HandlerFunc) http.HandlerFunc {
		return middleware.WithLogging(middleware.WithRecovery(h))
	}
	gated := func(h http.HandlerFunc) http.HandlerFunc {
		return wrap(middleware.RequireLogin(sessions, h))
	}

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Public listing and submission
	mux.HandleFunc("GET /", wrap(public.Index))
	mux.HandleFunc("POST /", wrap(public.Submit))

	// Admin session and listing; pagination links use the trailing
	// slash form, so both spellings resolve.
	mux.HandleFunc("GET /admin", gated(admin.List))
	mux.HandleFunc("GET /admin/{$}", gated(admin.List))
	mux.HandleFunc("GET /admin/login", wrap(admin.LoginForm))
	mux.HandleFunc("POST /admin/login", wrap(admin.Login))
	mux.HandleFunc("GET /admin/logout", wrap(admin.Logout))
	mux.HandleFunc("POST /admin/delete/{id}", gated(admin.Delete))

	return mux
}
