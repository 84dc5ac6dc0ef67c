/*
Package models defines the domain and view types shared across the server.

# Domain Types

  - Signature: one persisted petition submission
  - User: administrator credentials (bcrypt hash)

# Form Types

  - SubmissionForm: raw form input, carried through sanitization and
    validation so failed submissions can be re-rendered with the
    visitor's (sanitized) values intact
  - FieldError: user-facing validation message for one field

# Pagination Types

  - Link, Links: self/prev/next navigation for a listing page
  - PageInfo: current page and last page number

The listing page size is fixed at PageSize (50).
*/
package models
