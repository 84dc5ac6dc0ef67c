/*
Package main provides the entry point for the petition signature server.

The server collects petition signatures (name, national ID, optional
comment, optional anonymity) and renders a paginated public listing.
Administrators sign in to browse the same listing with per-row delete.

# Starting the Server

The server requires a PostgreSQL connection string:

	DATABASE_URL=postgres://... go run main.go

Or with flags:

	go run main.go -p 3000 -d "postgres://..."

# Configuration

  - DATABASE_URL (-d): PostgreSQL connection string (required)
  - PORT (-p): server port (default: 3000)
  - ENVIRONMENT (-e): "development" disables database TLS verification;
    anything else enforces it (default: development)

A .env file in the working directory is honored.

# Architecture

The server uses a handler-based architecture with dependency injection:

  - handlers: HTTP request handlers (public listing/submission, admin)
  - router: route definitions using Go 1.22+ routing
  - middleware: logging, panic recovery, session gate
  - submission: validation, sanitization, normalization pipeline
  - storage: store interfaces with postgres and in-memory backends
  - session: server-side admin sessions and cookies
  - templates: embedded server-rendered views
  - models: domain and view types
  - db: connection and schema
  - cliparse: configuration parsing

A separate seed binary (cmd/seed) fills the database with fixture
signatures for local development.

See package documentation for each component.
*/
package main
