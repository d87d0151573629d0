package auth

import (
	"sync"

	"github.com/adergachev/recipevault/internal/common"
)

// Session is the metadata recorded for an issued token.
type Session struct {
	UserID    string
	ExpiresAt int64 // epoch seconds
}

// Registry is the concurrent map from token string to its session metadata.
// A token present here was issued by the Authority and has not been revoked.
type Registry struct {
	mu       sync.Mutex
	sessions map[string]Session
}

func NewRegistry() *Registry {
	return &Registry{sessions: make(map[string]Session)}
}

// Put records a freshly issued token.
func (r *Registry) Put(token string, s Session) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sessions[token] = s
}

// Revoke removes a token. Revoking an absent token is a no-op.
func (r *Registry) Revoke(token string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.sessions, token)
}

// Validate checks the token against the stored session under one lock:
// absence or disagreement with the parsed body yields ErrTokenUnknown, and
// an entry past its expiry is removed (lazy cleanup) and reported as
// ErrTokenExpired.
func (r *Registry) Validate(token string, parsed Session, now int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored, ok := r.sessions[token]
	if !ok || stored != parsed {
		return common.ErrTokenUnknown
	}
	if now >= stored.ExpiresAt {
		delete(r.sessions, token)
		return common.ErrTokenExpired
	}
	return nil
}

// Len reports the number of live entries.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.sessions)
}
