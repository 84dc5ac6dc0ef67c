package models

import "time"

// PageSize is the fixed number of signatures shown per listing page.
const PageSize = 50

// Signature is one persisted petition submission.
type Signature struct {
	ID         int64
	Name       string
	NationalID string
	Comment    string
	Anonymous  bool
	Signed     time.Time
}

// User is an administrator credential record. Password holds the bcrypt
// hash, never plaintext.
type User struct {
	ID       int64
	Username string
	Password string
}

// SubmissionForm carries raw form input through sanitization and
// validation. Anonymous keeps the raw checkbox value ("on" when checked)
// until normalization.
type SubmissionForm struct {
	Name       string
	NationalID string
	Comment    string
	Anonymous  string
}

// FieldError is a single user-facing validation message attached to the
// offending form field.
type FieldError struct {
	Field   string
	Message string
}

// Link is one pagination navigation target.
type Link struct {
	Href string
}

// Links holds the navigation links for a listing page. Prev and Next are
// nil when the corresponding page does not apply.
type Links struct {
	Self Link
	Prev *Link
	Next *Link
}

// PageInfo describes the current position within the listing. Last is 0
// when the total count was unavailable.
type PageInfo struct {
	Current int
	Last    int
}
