package state

import (
	"sync"

	"github.com/airvista/vista/internal/session"
)

// Persister saves session snapshots durably. *session.FileStore satisfies
// it; tests supply an in-memory fake.
type Persister interface {
	Save(session.Snapshot) error
}

// SessionStore holds the authenticated user record. It is the only store
// with a persistence requirement: each mutation applies the transition,
// then explicitly hands the new snapshot to the persister.
type SessionStore struct {
	mu        sync.Mutex
	user      *session.User
	persister Persister
}

// NewSessionStore builds a store rehydrated from snap. A nil persister
// disables persistence (handy in tests).
func NewSessionStore(snap session.Snapshot, persister Persister) *SessionStore {
	s := &SessionStore{persister: persister}
	if snap.Authenticated && snap.User != nil {
		copied := *snap.User
		s.user = &copied
	}
	return s
}

// Login sets the user record and the authenticated flag in one transition,
// then persists.
func (s *SessionStore) Login(user session.User) {
	s.mu.Lock()
	s.user = &user
	snap := s.snapshotLocked()
	s.mu.Unlock()
	s.persist(snap)
}

// Logout clears the record and flag, then persists the cleared state.
func (s *SessionStore) Logout() {
	s.mu.Lock()
	s.user = nil
	snap := s.snapshotLocked()
	s.mu.Unlock()
	s.persist(snap)
}

// UpdateUser merges the non-empty fields of upd into the current user and
// persists. No-op when logged out.
func (s *SessionStore) UpdateUser(upd session.Update) {
	s.mu.Lock()
	if s.user == nil {
		s.mu.Unlock()
		return
	}
	merged := s.user.Apply(upd)
	s.user = &merged
	snap := s.snapshotLocked()
	s.mu.Unlock()
	s.persist(snap)
}

// User returns a copy of the authenticated user, or nil.
func (s *SessionStore) User() *session.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.user == nil {
		return nil
	}
	copied := *s.user
	return &copied
}

// Authenticated reports whether a user is logged in.
func (s *SessionStore) Authenticated() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.user != nil
}

// Snapshot returns the serializable form of the current state.
func (s *SessionStore) Snapshot() session.Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

func (s *SessionStore) snapshotLocked() session.Snapshot {
	if s.user == nil {
		return session.Snapshot{}
	}
	copied := *s.user
	return session.Snapshot{Authenticated: true, User: &copied}
}

// persist runs outside the lock; a failed write leaves in-memory state
// authoritative for this process.
func (s *SessionStore) persist(snap session.Snapshot) {
	if s.persister == nil {
		return
	}
	_ = s.persister.Save(snap)
}
