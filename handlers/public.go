package handlers

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/kristjanb/petition/models"
	"github.com/kristjanb/petition/storage"
	"github.com/kristjanb/petition/submission"
	"github.com/kristjanb/petition/templates"
)

const publicTitle = "Undirskriftarlisti"

type PublicHandler struct {
	store storage.SignatureStore
}

func NewPublicHandler(store storage.SignatureStore) *PublicHandler {
	return &PublicHandler{store: store}
}

// listing fetches one page of signatures plus the total count, degrading
// to an empty page when the store is unavailable. Failures are logged so
// operators can tell "no data" from "store unreachable"; visitors just
// see an empty list.
func (h *PublicHandler) listing(ctx context.Context, page int) ([]models.Signature, int, bool) {
	registrations, err := h.store.List(ctx, page)
	if err != nil {
		slog.Error("failed to list signatures", "page", page, "error", err)
		registrations = []models.Signature{}
	}

	total, err := h.store.Count(ctx)
	countOK := err == nil
	if err != nil {
		slog.Error("failed to count signatures", "error", err)
	}

	return registrations, total, countOK
}

// Index handles GET /
func (h *PublicHandler) Index(w http.ResponseWriter, r *http.Request) {
	// "GET /" is a catch-all pattern; anything but the root is a 404.
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}

	page := parsePage(r)
	registrations, total, countOK := h.listing(r.Context(), page)

	templates.Render(w, http.StatusOK, "index.html", templates.IndexData{
		Title:         publicTitle,
		Registrations: registrations,
		Links:         buildLinks("/", page, len(registrations)),
		Total:         total,
		Page:          pageInfo(page, total, countOK),
	})
}

// Submit handles POST /
func (h *PublicHandler) Submit(w http.ResponseWriter, r *http.Request) {
	// "POST /" is a catch-all pattern like "GET /".
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}

	if err := r.ParseForm(); err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	form := models.SubmissionForm{
		Name:       r.PostFormValue("name"),
		NationalID: r.PostFormValue("nationalId"),
		Comment:    r.PostFormValue("comment"),
		Anonymous:  r.PostFormValue("anonymous"),
	}

	// Sanitized before anything can be reflected back to the visitor.
	sanitized := submission.Sanitize(form)

	if errs := submission.Validate(form); len(errs) > 0 {
		page := parsePage(r)
		registrations, total, countOK := h.listing(r.Context(), page)

		templates.Render(w, http.StatusOK, "index.html", templates.IndexData{
			Title:         publicTitle,
			Form:          sanitized,
			Errors:        errs,
			Registrations: registrations,
			Links:         buildLinks("/", page, len(registrations)),
			Total:         total,
			Page:          pageInfo(page, total, countOK),
		})
		return
	}

	sig := submission.Normalize(sanitized)

	if err := h.store.Insert(r.Context(), sig); err != nil {
		if errors.Is(err, storage.ErrDuplicate) {
			slog.Info("duplicate signature rejected", "nationalId", sig.NationalID)
		} else {
			slog.Error("failed to insert signature", "error", err)
		}

		templates.Render(w, http.StatusOK, "error.html", templates.ErrorData{
			Title: "Gat ekki skráð!",
			Text:  "Hafðir þú skrifað undir áður?",
		})
		return
	}

	slog.Info("signature registered", "anonymous", sig.Anonymous)

	// Fresh GET so a refresh cannot re-submit the form.
	http.Redirect(w, r, "/", http.StatusSeeOther)
}
