package core

import (
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/JonMunkholm/procurement/internal/table"
)

var (
	// ErrSessionNotFound is returned for unknown or expired session ids.
	ErrSessionNotFound = errors.New("session not found")

	// ErrTooManySessions is returned when the store is at capacity.
	ErrTooManySessions = errors.New("too many sessions")
)

// pageRequest is a server-side page the table asked for.
type pageRequest struct {
	page     int
	pageSize int
}

// Session is one mounted list view: a table plus the scope it was loaded for.
// All access to the table goes through the session lock.
type Session struct {
	ID   string
	View ViewDefinition

	mu       sync.Mutex
	scope    Scope
	table    *table.Table
	pending  *pageRequest
	created  time.Time
	lastUsed time.Time
}

// requestPage is the server-side sink. It runs with mu held.
func (s *Session) requestPage(page, pageSize int) {
	s.pending = &pageRequest{page: page, pageSize: pageSize}
}

// takePending returns and clears the outstanding page request.
func (s *Session) takePending() (pageRequest, bool) {
	if s.pending == nil {
		return pageRequest{}, false
	}
	req := *s.pending
	s.pending = nil
	return req, true
}

// SessionStore holds live sessions keyed by id.
type SessionStore struct {
	mu       sync.RWMutex
	sessions map[string]*Session
	ttl      time.Duration
	max      int
	now      func() time.Time
}

// NewSessionStore creates a store that keeps idle sessions for ttl and holds
// at most max sessions.
func NewSessionStore(ttl time.Duration, max int) *SessionStore {
	return &SessionStore{
		sessions: make(map[string]*Session),
		ttl:      ttl,
		max:      max,
		now:      time.Now,
	}
}

// newSession allocates a session with a fresh id. It is not stored yet.
func (st *SessionStore) newSession(def ViewDefinition, scope Scope) *Session {
	now := st.now()
	return &Session{
		ID:       uuid.NewString(),
		View:     def,
		scope:    scope,
		created:  now,
		lastUsed: now,
	}
}

// Add stores a session. Expired sessions are swept first when the store is full.
func (st *SessionStore) Add(s *Session) error {
	st.mu.Lock()
	defer st.mu.Unlock()

	if st.max > 0 && len(st.sessions) >= st.max {
		st.sweepLocked()
		if len(st.sessions) >= st.max {
			return ErrTooManySessions
		}
	}
	st.sessions[s.ID] = s
	return nil
}

// Get returns a live session and marks it used.
func (st *SessionStore) Get(id string) (*Session, error) {
	st.mu.Lock()
	defer st.mu.Unlock()

	s, ok := st.sessions[id]
	if !ok {
		return nil, ErrSessionNotFound
	}
	now := st.now()
	if st.expired(s, now) {
		delete(st.sessions, id)
		return nil, ErrSessionNotFound
	}
	s.lastUsed = now
	return s, nil
}

// Delete removes a session. It reports whether the session existed.
func (st *SessionStore) Delete(id string) bool {
	st.mu.Lock()
	defer st.mu.Unlock()

	_, ok := st.sessions[id]
	delete(st.sessions, id)
	return ok
}

// Len returns the number of stored sessions, including expired ones not yet swept.
func (st *SessionStore) Len() int {
	st.mu.RLock()
	defer st.mu.RUnlock()
	return len(st.sessions)
}

// Sweep removes expired sessions and returns how many were removed.
func (st *SessionStore) Sweep() int {
	st.mu.Lock()
	defer st.mu.Unlock()
	return st.sweepLocked()
}

func (st *SessionStore) sweepLocked() int {
	now := st.now()
	removed := 0
	for id, s := range st.sessions {
		if st.expired(s, now) {
			delete(st.sessions, id)
			removed++
		}
	}
	return removed
}

func (st *SessionStore) expired(s *Session, now time.Time) bool {
	return st.ttl > 0 && now.Sub(s.lastUsed) > st.ttl
}
