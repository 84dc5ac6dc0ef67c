/*
Package handlers contains the HTTP request handlers.

# Handler Types

Each handler is a struct with its store dependencies injected via a
constructor:

	public := handlers.NewPublicHandler(store)
	admin := handlers.NewAdminHandler(store, store, sessions, cfg)

  - PublicHandler: the signature listing and the submission pipeline
  - AdminHandler: login/logout, the gated admin listing, per-row delete

# Submission Flow

	POST / → sanitize → validate → re-render with field errors
	                            → normalize → insert → redirect /
	                                        → duplicate → "already signed?" page

Validation collects every violated rule; the form re-render carries the
sanitized input so nothing the visitor typed can smuggle markup back
into the page.

# Pagination

Both listings share buildLinks/pageInfo: self always, prev when page>1,
next when the fetched page is exactly full (a heuristic, see
pagination.go). Store failures degrade to an empty listing and are
logged; they are deliberately indistinguishable from "no data" for the
visitor.

# Admin Flow

	GET  /admin        → List (session required)
	GET  /admin/login  → LoginForm (shows one-time failure message)
	POST /admin/login  → Login (bcrypt check, flash on failure)
	GET  /admin/logout → Logout (unconditional teardown)
	POST /admin/delete/{id} → Delete (silent no-op for absent ids)
*/
package handlers
