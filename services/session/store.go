// File: services/session/store.go
package session

import (
	"sync"
	"time"

	"flywise/models"
	"flywise/utils"

	"go.uber.org/zap"
)

// DefaultTTL is how long a session may idle before it is considered dead.
const DefaultTTL = 30 * time.Minute

// Store owns every live ConversationSession, keyed by normalized phone
// number. Map access is guarded by a single RWMutex; turn processing for a
// given phone is serialized by a dedicated per-phone mutex so that two
// messages from the same user can never race on session data, while
// different users proceed fully in parallel.
type Store struct {
	mu       sync.RWMutex
	sessions map[string]*models.ConversationSession
	locks    map[string]*sync.Mutex
	ttl      time.Duration
}

// NewStore returns a session store with the given idle TTL.
// A non-positive ttl falls back to DefaultTTL.
func NewStore(ttl time.Duration) *Store {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Store{
		sessions: make(map[string]*models.ConversationSession),
		locks:    make(map[string]*sync.Mutex),
		ttl:      ttl,
	}
}

// TTL returns the configured idle timeout.
func (s *Store) TTL() time.Duration {
	return s.ttl
}

// GetOrCreate returns the live session for the phone number, constructing a
// fresh one when none exists or the existing one has expired. Expired
// sessions are discarded, never reused, so stale slot data cannot leak into
// a new conversation.
func (s *Store) GetOrCreate(phone string) *models.ConversationSession {
	key := utils.NormalizePhone(phone)

	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[key]
	if !ok || sess.IsExpired(s.ttl) {
		sess = models.NewConversationSession(phone)
		s.sessions[key] = sess
	}
	return sess
}

// Get returns the session for the phone number without creating one.
func (s *Store) Get(phone string) (*models.ConversationSession, bool) {
	key := utils.NormalizePhone(phone)

	s.mu.RLock()
	defer s.mu.RUnlock()

	sess, ok := s.sessions[key]
	return sess, ok
}

// Reset unconditionally removes the session for the phone number.
// Absence is not an error.
func (s *Store) Reset(phone string) {
	key := utils.NormalizePhone(phone)

	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, key)
}

// Count returns the number of sessions currently held, expired or not.
func (s *Store) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}

// ListActive returns a snapshot of all non-expired sessions for the
// administrative inspection surface.
func (s *Store) ListActive() []*models.ConversationSession {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*models.ConversationSession, 0, len(s.sessions))
	for _, sess := range s.sessions {
		if !sess.IsExpired(s.ttl) {
			out = append(out, sess)
		}
	}
	return out
}

// SweepExpired removes every session whose idle time exceeds the TTL and
// returns how many were removed. Expiry is evaluated on a snapshot so the
// map lock is never held across the whole sweep.
func (s *Store) SweepExpired() int {
	s.mu.RLock()
	expired := make([]string, 0)
	for key, sess := range s.sessions {
		if sess.IsExpired(s.ttl) {
			expired = append(expired, key)
		}
	}
	s.mu.RUnlock()

	if len(expired) == 0 {
		return 0
	}

	removed := 0
	s.mu.Lock()
	for _, key := range expired {
		// Re-check: the session may have been replaced by a live one
		// between the snapshot and this delete.
		// Turn locks are deliberately left in place: a sweep must never
		// invalidate a mutex another goroutine may be holding.
		if sess, ok := s.sessions[key]; ok && sess.IsExpired(s.ttl) {
			delete(s.sessions, key)
			removed++
		}
	}
	s.mu.Unlock()

	if removed > 0 {
		utils.GetLogger().Debug("Session sweep completed", zap.Int("removed", removed))
	}
	return removed
}

// TurnLock acquires the per-phone turn mutex. Callers must pair it with
// TurnUnlock; the engine holds it for the full duration of one turn.
func (s *Store) TurnLock(phone string) {
	key := utils.NormalizePhone(phone)

	s.mu.Lock()
	lock, ok := s.locks[key]
	if !ok {
		lock = &sync.Mutex{}
		s.locks[key] = lock
	}
	s.mu.Unlock()

	lock.Lock()
}

// TurnUnlock releases the per-phone turn mutex.
func (s *Store) TurnUnlock(phone string) {
	key := utils.NormalizePhone(phone)

	s.mu.RLock()
	lock, ok := s.locks[key]
	s.mu.RUnlock()

	if ok {
		lock.Unlock()
	}
}
