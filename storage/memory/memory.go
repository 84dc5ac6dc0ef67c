package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/kristjanb/petition/models"
	"github.com/kristjanb/petition/storage"
)

// Store implements the storage interfaces in memory. Intended for tests;
// behavior mirrors the postgres store including the uniqueness constraint
// on national IDs.
type Store struct {
	mu         sync.Mutex
	nextID     int64
	signatures []models.Signature
	users      []models.User
}

var _ storage.SignatureStore = (*Store)(nil)
var _ storage.UserStore = (*Store)(nil)

// New creates an empty Store.
func New() *Store {
	return &Store{nextID: 1}
}

// --- SignatureStore ---------------------------------------------------------

func (s *Store) Insert(_ context.Context, sig models.Signature) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, existing := range s.signatures {
		if existing.NationalID == sig.NationalID {
			return storage.ErrDuplicate
		}
	}

	sig.ID = s.nextID
	s.nextID++
	if sig.Signed.IsZero() {
		sig.Signed = time.Now()
	}
	s.signatures = append(s.signatures, sig)

	return nil
}

func (s *Store) List(_ context.Context, page int) ([]models.Signature, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if page < 1 {
		page = 1
	}

	ordered := make([]models.Signature, len(s.signatures))
	copy(ordered, s.signatures)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].Signed.After(ordered[j].Signed)
	})

	offset := (page - 1) * models.PageSize
	if offset >= len(ordered) {
		return []models.Signature{}, nil
	}

	end := offset + models.PageSize
	if end > len(ordered) {
		end = len(ordered)
	}

	return ordered[offset:end], nil
}

func (s *Store) Count(_ context.Context) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.signatures), nil
}

func (s *Store) Delete(_ context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, sig := range s.signatures {
		if sig.ID == id {
			s.signatures = append(s.signatures[:i], s.signatures[i+1:]...)
			return nil
		}
	}

	// Absent id: silent no-op.
	return nil
}

// --- UserStore --------------------------------------------------------------

// AddUser seeds an administrator record and returns its id.
func (s *Store) AddUser(username, passwordHash string) int64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.nextID
	s.nextID++
	s.users = append(s.users, models.User{ID: id, Username: username, Password: passwordHash})
	return id
}

func (s *Store) FindByUsername(_ context.Context, username string) (models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, user := range s.users {
		if user.Username == username {
			return user, nil
		}
	}
	return models.User{}, storage.ErrNotFound
}

func (s *Store) FindByID(_ context.Context, id int64) (models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, user := range s.users {
		if user.ID == id {
			return user, nil
		}
	}
	return models.User{}, storage.ErrNotFound
}
