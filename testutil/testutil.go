package testutil

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/kristjanb/petition/models"
	"github.com/kristjanb/petition/storage/memory"
)

// NewStore creates an empty in-memory store.
func NewStore(t *testing.T) *memory.Store {
	t.Helper()
	return memory.New()
}

// AddSignatures inserts n signatures with distinct national IDs and
// strictly increasing signing times, so listings come back newest-first
// in a predictable order ("Signer n-1" leads).
func AddSignatures(t *testing.T, store *memory.Store, n int) {
	t.Helper()

	base := time.Now().Add(-time.Duration(n) * time.Minute)
	for i := 0; i < n; i++ {
		err := store.Insert(context.Background(), models.Signature{
			Name:       fmt.Sprintf("Signer %d", i),
			NationalID: fmt.Sprintf("%010d", i),
			Signed:     base.Add(time.Duration(i) * time.Minute),
		})
		if err != nil {
			t.Fatalf("Failed to insert fixture signature %d: %v", i, err)
		}
	}
}

// AddAdmin seeds an administrator with a bcrypt-hashed password and
// returns the user id.
func AddAdmin(t *testing.T, store *memory.Store, username, password string) int64 {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("Failed to hash fixture password: %v", err)
	}

	return store.AddUser(username, string(hash))
}

// MakeFormRequest creates an HTTP test request carrying form values.
func MakeFormRequest(method, path string, form url.Values) *http.Request {
	if form == nil {
		return httptest.NewRequest(method, path, nil)
	}

	req := httptest.NewRequest(method, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return req
}

// AssertStatus checks that the response has the expected status code.
func AssertStatus(t *testing.T, w *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if w.Code != expected {
		t.Errorf("Expected status %d, got %d. Body: %s", expected, w.Code, w.Body.String())
	}
}

// AssertRedirect checks for a redirect to the expected location.
func AssertRedirect(t *testing.T, w *httptest.ResponseRecorder, location string) {
	t.Helper()
	if w.Code != http.StatusFound && w.Code != http.StatusSeeOther {
		t.Fatalf("Expected redirect, got status %d. Body: %s", w.Code, w.Body.String())
	}
	if got := w.Header().Get("Location"); got != location {
		t.Errorf("Expected redirect to %q, got %q", location, got)
	}
}
