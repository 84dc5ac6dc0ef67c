package session

import (
	"sync"

	"github.com/google/uuid"
)

// Manager holds server-side admin sessions. Session state never leaves
// the process; the client only carries the opaque session id.
type Manager struct {
	mu       sync.Mutex
	sessions map[string]*state
}

type state struct {
	userID int64
	flash  string
}

// NewManager creates an empty session Manager.
func NewManager() *Manager {
	return &Manager{sessions: make(map[string]*state)}
}

// Create establishes an authenticated session for the user and returns
// the new session id.
func (m *Manager) Create(userID int64) string {
	id := uuid.NewString()

	m.mu.Lock()
	defer m.mu.Unlock()
	m.sessions[id] = &state{userID: userID}

	return id
}

// UserID resolves a session id to the authenticated user. The second
// return is false for unknown or anonymous sessions.
func (m *Manager) UserID(id string) (int64, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	s, ok := m.sessions[id]
	if !ok || s.userID == 0 {
		return 0, false
	}
	return s.userID, true
}

// Destroy removes a session. Destroying an unknown id is a no-op.
func (m *Manager) Destroy(id string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.sessions, id)
}

// SetFlash stores a one-time message on the session, creating an
// anonymous session when the id is unknown. Returns the session id the
// message lives on.
func (m *Manager) SetFlash(id, message string) string {
	m.mu.Lock()
	defer m.mu.Unlock()

	s, ok := m.sessions[id]
	if !ok {
		id = uuid.NewString()
		s = &state{}
		m.sessions[id] = s
	}
	s.flash = message

	return id
}

// TakeFlash returns the pending one-time message and clears it.
func (m *Manager) TakeFlash(id string) string {
	m.mu.Lock()
	defer m.mu.Unlock()

	s, ok := m.sessions[id]
	if !ok || s.flash == "" {
		return ""
	}

	message := s.flash
	s.flash = ""

	// An anonymous session that only carried the flash is spent.
	if s.userID == 0 {
		delete(m.sessions, id)
	}

	return message
}
