package sessions

import (
	"errors"
	"sync"

	"github.com/google/uuid"

	"tankar/quote_backend/internal/domain/quote"
)

// ErrNotFound is returned for unknown or already-discarded sessions.
var ErrNotFound = errors.New("session not found")

// Store keeps per-session quote state in memory. A session lives until it is
// explicitly discarded or the process exits; nothing is persisted.
type Store struct {
	mu     sync.RWMutex
	quotes map[string]*quote.Quote
}

func New() *Store {
	return &Store{quotes: make(map[string]*quote.Quote)}
}

// Create opens a new session with an empty quote and returns its id.
func (s *Store) Create() string {
	id := uuid.NewString()
	s.mu.Lock()
	s.quotes[id] = quote.New()
	s.mu.Unlock()
	return id
}

// Update runs fn against the session's quote under the store lock, so each
// user action is one atomic mutation with no interleaving.
func (s *Store) Update(id string, fn func(*quote.Quote) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	q, ok := s.quotes[id]
	if !ok {
		return ErrNotFound
	}
	return fn(q)
}

// View runs fn against the session's quote under a read lock. fn must not
// mutate the quote.
func (s *Store) View(id string, fn func(*quote.Quote) error) error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	q, ok := s.quotes[id]
	if !ok {
		return ErrNotFound
	}
	return fn(q)
}

// Delete discards the session. Unknown ids are ignored.
func (s *Store) Delete(id string) {
	s.mu.Lock()
	delete(s.quotes, id)
	s.mu.Unlock()
}
