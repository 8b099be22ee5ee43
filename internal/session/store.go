package session

import (
	"errors"
	"sync"
	"time"

	"siteforge_server/internal/assets"
	"siteforge_server/internal/types"
)

var (
	// ErrNotFound reports an unknown or already deleted session.
	ErrNotFound = errors.New("session not found")
	// ErrBusy reports a session with a generation still in flight.
	// Overlapping submissions against one session are refused, not queued.
	ErrBusy = errors.New("a generation is already in flight for this session")
)

// Session is one generated project held in memory together with the only
// live asset set for it. The store hands out value snapshots copied under
// its lock; the Document a snapshot points at is never mutated after
// installation, so reading it needs no further coordination. Arena carries
// its own lock.
type Session struct {
	ID        string
	Document  *types.StructuredDocument
	Arena     *assets.Arena
	CreatedAt time.Time
}

// Store keeps sessions in memory behind one lock. There is deliberately no
// persistence: a session lives until it is replaced or deleted, mirroring
// the transient document lifecycle.
type Store struct {
	mu       sync.RWMutex
	sessions map[string]*Session
	inflight map[string]bool
}

func NewStore() *Store {
	return &Store{
		sessions: make(map[string]*Session),
		inflight: make(map[string]bool),
	}
}

// Acquire reserves id for a generation call. It fails with ErrBusy while a
// prior generation for the same id has not settled.
func (s *Store) Acquire(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.inflight[id] {
		return ErrBusy
	}
	s.inflight[id] = true
	return nil
}

// Release clears the in-flight mark. Called on every outcome, success or
// failure, so the session always returns to a retryable state.
func (s *Store) Release(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.inflight, id)
}

// Put installs doc as the session's current document and materializes a
// fresh asset set for it. Replacing an existing session reuses its arena:
// materialization revokes the previous handle set before the new one goes
// live, so two sets are never live at once. The document pointer is only
// ever swapped whole under the store lock, never mutated in place.
func (s *Store) Put(id string, doc *types.StructuredDocument) Session {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[id]
	if !ok {
		sess = &Session{
			ID:        id,
			Arena:     assets.NewArena(id),
			CreatedAt: time.Now(),
		}
		s.sessions[id] = sess
	}
	sess.Document = doc
	sess.Arena.Materialize(doc.Files)
	return *sess
}

// Get returns a snapshot of the session for id, copied under the lock so a
// concurrent replacement cannot race a reader dereferencing the document.
func (s *Store) Get(id string) (Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sess, ok := s.sessions[id]
	if !ok {
		return Session{}, ErrNotFound
	}
	return *sess, nil
}

// Delete drops the session and revokes its whole handle set.
func (s *Store) Delete(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[id]
	if !ok {
		return ErrNotFound
	}
	sess.Arena.Revoke()
	delete(s.sessions, id)
	return nil
}

// Len reports the number of live sessions, for the health endpoint.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}
