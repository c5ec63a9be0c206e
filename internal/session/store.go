// Package session implements the in-memory conversation store. Sessions are
// append-only message logs keyed by opaque ids; they live for the process
// lifetime with no eviction.
package session

import (
	"sync"

	"github.com/google/uuid"
	"github.com/pocketai/backend/internal/domain"
)

// systemGreeting seeds every new session so the generator always has its
// persona before the first user message.
const systemGreeting = "You are Pocket AI, a helpful shopping assistant for an e-commerce website. " +
	"You help users find products, answer questions about shopping, and provide " +
	"recommendations. Be concise, friendly, and helpful. If asked about products, " +
	"focus on those that would be found in our store catalog."

// Store is a thread-safe session store. Creation and append for a given id
// run inside one critical section, so concurrent requests for the same new
// id never create duplicate sessions or lose messages.
type Store struct {
	mu       sync.Mutex
	sessions map[string][]domain.Message
}

// NewStore creates an empty session store
func NewStore() *Store {
	return &Store{sessions: make(map[string][]domain.Message)}
}

// GetOrCreate returns the messages for the given session id. An empty or
// unknown id yields a freshly generated id with exactly one pre-seeded
// system message.
func (s *Store) GetOrCreate(sessionID string) (string, []domain.Message) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if sessionID != "" {
		if msgs, ok := s.sessions[sessionID]; ok {
			return sessionID, copyMessages(msgs)
		}
	}

	sessionID = uuid.NewString()
	s.sessions[sessionID] = []domain.Message{
		{Role: domain.RoleSystem, Content: systemGreeting},
	}
	return sessionID, copyMessages(s.sessions[sessionID])
}

// Append adds a message to a session's log. Unknown ids are ignored;
// callers obtain a valid id through GetOrCreate first.
func (s *Store) Append(sessionID string, msg domain.Message) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.sessions[sessionID]; !ok {
		return
	}
	s.sessions[sessionID] = append(s.sessions[sessionID], msg)
}

// Messages returns a copy of the session's full message log, or nil for an
// unknown id.
func (s *Store) Messages(sessionID string) []domain.Message {
	s.mu.Lock()
	defer s.mu.Unlock()

	msgs, ok := s.sessions[sessionID]
	if !ok {
		return nil
	}
	return copyMessages(msgs)
}

// Len returns the number of sessions in the store (for debugging/monitoring)
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}

func copyMessages(msgs []domain.Message) []domain.Message {
	out := make([]domain.Message, len(msgs))
	copy(out, msgs)
	return out
}
