package mem

import (
	"encoding/json"
	"sync"
	"time"
)

// PlanBlobVersion tags every stored blob so the layout can evolve without
// silently misreading older sessions. Reads with a different version fail
// closed as if the session never existed.
const PlanBlobVersion = 1

type PlanBlob struct {
	Version int             `json:"version"`
	SavedAt time.Time       `json:"saved_at"`
	Plan    json.RawMessage `json:"plan"`
}

// PlanSessionStore holds the single active itinerary per session id. The
// store is the only shared mutable state in the process, so it carries its
// own locking.
type PlanSessionStore interface {
	Put(sessionID string, plan json.RawMessage, ttl time.Duration)

	// Get returns the stored plan bytes exactly as written, or false when
	// the session is missing, expired, or tagged with another blob version.
	Get(sessionID string) (json.RawMessage, bool)

	Delete(sessionID string)
}

type sessionEntry struct {
	blob      PlanBlob
	expiresAt time.Time
}

type PlanSessions struct {
	mu   sync.RWMutex
	data map[string]sessionEntry
}

func NewPlanSessions() *PlanSessions {
	return &PlanSessions{
		data: make(map[string]sessionEntry),
	}
}

func (s *PlanSessions) Put(sessionID string, plan json.RawMessage, ttl time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[sessionID] = sessionEntry{
		blob: PlanBlob{
			Version: PlanBlobVersion,
			SavedAt: time.Now(),
			Plan:    plan,
		},
		expiresAt: time.Now().Add(ttl),
	}
}

func (s *PlanSessions) Get(sessionID string) (json.RawMessage, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.data[sessionID]
	if !ok {
		return nil, false
	}
	if time.Now().After(e.expiresAt) {
		delete(s.data, sessionID) // cleanup expired
		return nil, false
	}
	if e.blob.Version != PlanBlobVersion {
		return nil, false
	}
	return e.blob.Plan, true
}

func (s *PlanSessions) Delete(sessionID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.data, sessionID)
}
