package storage

import (
	"context"
	"errors"

	"golang.org/x/crypto/bcrypt"

	"github.com/kristjanb/petition/models"
)

var (
	// ErrNotFound signals legitimate absence, as opposed to a failed
	// lookup which surfaces as any other error.
	ErrNotFound = errors.New("not found")

	// ErrDuplicate signals a uniqueness violation on insert, most
	// commonly a national ID that already signed.
	ErrDuplicate = errors.New("duplicate record")
)

// SignatureStore persists petition signatures.
type SignatureStore interface {
	// Insert stores one signature. Returns ErrDuplicate when the
	// national ID already signed.
	Insert(ctx context.Context, sig models.Signature) error

	// List returns up to models.PageSize signatures for the 1-based
	// page, ordered by signing time descending.
	List(ctx context.Context, page int) ([]models.Signature, error)

	// Count returns the total number of signatures.
	Count(ctx context.Context) (int, error)

	// Delete removes a signature by id. Deleting an id that does not
	// exist is a no-op, not an error.
	Delete(ctx context.Context, id int64) error
}

// UserStore reads administrator credentials.
type UserStore interface {
	// FindByUsername returns the matching user, ErrNotFound when no row
	// matches, or another error when the lookup itself failed.
	FindByUsername(ctx context.Context, username string) (models.User, error)

	// FindByID returns the matching user or ErrNotFound.
	FindByID(ctx context.Context, id int64) (models.User, error)
}

// ComparePasswords checks a plaintext password against a bcrypt hash.
// The comparison is constant-time by construction of bcrypt.
func ComparePasswords(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
