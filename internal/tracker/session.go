package tracker

import (
	"sync"
	"time"
)

// Step is the onboarding dialogue position. Strictly linear: no
// skipping, no backtracking.
type Step int

const (
	StepHandle Step = iota
	StepTarget
	StepStartDate
)

func (s Step) String() string {
	switch s {
	case StepHandle:
		return "awaiting_handle"
	case StepTarget:
		return "awaiting_target"
	case StepStartDate:
		return "awaiting_start_date"
	}
	return "unknown"
}

// Session is one account's in-flight onboarding dialogue. Transient and
// in-memory only; a restart simply drops it.
type Session struct {
	ExternalID  int64
	ResourceID  int64
	DisplayName string
	Step        Step

	Handle    string
	Target    int
	StartDate time.Time

	CreatedAt time.Time
}

// SessionStore is the process-scoped onboarding session map. Sessions
// older than the TTL are discarded by Sweep, not by rejecting input.
type SessionStore struct {
	mu       sync.Mutex
	ttl      time.Duration
	clock    Clock
	sessions map[int64]*Session
}

func NewSessionStore(ttl time.Duration, clock Clock) *SessionStore {
	return &SessionStore{
		ttl:      ttl,
		clock:    clock,
		sessions: make(map[int64]*Session),
	}
}

// Start creates (or replaces) the session for externalID.
func (s *SessionStore) Start(externalID, resourceID int64, displayName string) *Session {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess := &Session{
		ExternalID:  externalID,
		ResourceID:  resourceID,
		DisplayName: displayName,
		Step:        StepHandle,
		CreatedAt:   s.clock.Now(),
	}
	s.sessions[externalID] = sess
	return sess
}

// Get returns the live session for externalID, if any.
func (s *SessionStore) Get(externalID int64) (*Session, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.sessions[externalID]
	return sess, ok
}

// Remove destroys the session for externalID.
func (s *SessionStore) Remove(externalID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, externalID)
}

// Sweep drops sessions past the TTL and reports how many were removed.
func (s *SessionStore) Sweep() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	cutoff := s.clock.Now().Add(-s.ttl)
	removed := 0
	for id, sess := range s.sessions {
		if sess.CreatedAt.Before(cutoff) {
			delete(s.sessions, id)
			removed++
		}
	}
	return removed
}

// Len reports the number of live sessions.
func (s *SessionStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}
