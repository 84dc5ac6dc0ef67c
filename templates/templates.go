package templates

import (
	"bytes"
	"embed"
	"html/template"
	"log/slog"
	"net/http"

	"github.com/kristjanb/petition/models"
)

//go:embed templates/*.html
var templatesFS embed.FS

var funcs = template.FuncMap{
	"datetime": func(v interface{ Format(string) string }) string {
		return v.Format("02.01.2006 15:04")
	},
}

var templates = template.Must(
	template.New("").Funcs(funcs).ParseFS(templatesFS, "templates/*.html"),
)

// IndexData renders the public listing with the submission form.
type IndexData struct {
	Title         string
	Form          models.SubmissionForm
	Errors        []models.FieldError
	Registrations []models.Signature
	Links         models.Links
	Total         int
	Page          models.PageInfo
}

// ErrorsFor returns the validation messages attached to one form field.
func (d IndexData) ErrorsFor(field string) []string {
	var msgs []string
	for _, e := range d.Errors {
		if e.Field == field {
			msgs = append(msgs, e.Message)
		}
	}
	return msgs
}

// AdminData renders the admin listing.
type AdminData struct {
	Title         string
	Username      string
	Registrations []models.Signature
	Links         models.Links
	Total         int
	Page          models.PageInfo
}

// LoginData renders the admin login form.
type LoginData struct {
	Title          string
	FailureMessage string
}

// ErrorData renders a standalone message page.
type ErrorData struct {
	Title string
	Text  string
}

// Render executes the named template into the response. The template
// runs against a buffer first so a rendering failure can still become a
// clean 500 instead of a truncated page.
func Render(w http.ResponseWriter, status int, name string, data any) {
	var buf bytes.Buffer
	if err := templates.ExecuteTemplate(&buf, name, data); err != nil {
		slog.Error("failed to render template", "template", name, "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if _, err := buf.WriteTo(w); err != nil {
		slog.Error("failed to write response", "template", name, "error", err)
	}
}
