package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"

	"github.com/kristjanb/petition/models"
	"github.com/kristjanb/petition/storage"
)

// uniqueViolation is the PostgreSQL error code for a unique constraint
// violation.
const uniqueViolation = "23505"

// Store implements the storage interfaces backed by PostgreSQL.
type Store struct {
	db *sql.DB
}

var _ storage.SignatureStore = (*Store)(nil)
var _ storage.UserStore = (*Store)(nil)

// New creates a Store using the provided database handle.
func New(db *sql.DB) *Store {
	return &Store{db: db}
}

// --- SignatureStore ---------------------------------------------------------

func (s *Store) Insert(ctx context.Context, sig models.Signature) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO signatures (name, nationalId, comment, anonymous)
		VALUES ($1, $2, $3, $4)
	`, sig.Name, sig.NationalID, sig.Comment, sig.Anonymous)

	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
			return storage.ErrDuplicate
		}
		return fmt.Errorf("failed to insert signature: %w", err)
	}

	return nil
}

func (s *Store) List(ctx context.Context, page int) ([]models.Signature, error) {
	if page < 1 {
		page = 1
	}
	offset := (page - 1) * models.PageSize

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, name, nationalId, comment, anonymous, signed
		FROM signatures
		ORDER BY signed DESC
		OFFSET $1 LIMIT $2
	`, offset, models.PageSize)
	if err != nil {
		return nil, fmt.Errorf("failed to list signatures: %w", err)
	}
	defer rows.Close()

	signatures := []models.Signature{}
	for rows.Next() {
		var sig models.Signature
		if err := rows.Scan(&sig.ID, &sig.Name, &sig.NationalID, &sig.Comment, &sig.Anonymous, &sig.Signed); err != nil {
			return nil, fmt.Errorf("failed to scan signature: %w", err)
		}
		signatures = append(signatures, sig)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read signatures: %w", err)
	}

	return signatures, nil
}

func (s *Store) Count(ctx context.Context) (int, error) {
	var count int
	err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM signatures`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count signatures: %w", err)
	}
	return count, nil
}

func (s *Store) Delete(ctx context.Context, id int64) error {
	// No existence check: deleting an absent id is a silent no-op.
	_, err := s.db.ExecContext(ctx, `DELETE FROM signatures WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete signature: %w", err)
	}
	return nil
}

// --- UserStore --------------------------------------------------------------

func (s *Store) FindByUsername(ctx context.Context, username string) (models.User, error) {
	var user models.User
	err := s.db.QueryRowContext(ctx, `
		SELECT id, username, password FROM users WHERE username = $1
	`, username).Scan(&user.ID, &user.Username, &user.Password)

	if errors.Is(err, sql.ErrNoRows) {
		return models.User{}, storage.ErrNotFound
	}
	if err != nil {
		return models.User{}, fmt.Errorf("failed to find user by username: %w", err)
	}

	return user, nil
}

func (s *Store) FindByID(ctx context.Context, id int64) (models.User, error) {
	var user models.User
	err := s.db.QueryRowContext(ctx, `
		SELECT id, username, password FROM users WHERE id = $1
	`, id).Scan(&user.ID, &user.Username, &user.Password)

	if errors.Is(err, sql.ErrNoRows) {
		return models.User{}, storage.ErrNotFound
	}
	if err != nil {
		return models.User{}, fmt.Errorf("failed to find user by id: %w", err)
	}

	return user, nil
}
