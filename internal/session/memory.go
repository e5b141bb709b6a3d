package session

import (
	"context"
	"sync"
	"time"
)

// MemoryRepository keeps sessions in process memory. It backs local development and tests.
type MemoryRepository struct {
	mu       sync.RWMutex
	sessions map[string]Session
}

// NewMemoryRepository creates an empty in-memory session store
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{sessions: make(map[string]Session)}
}

func (r *MemoryRepository) Create(ctx context.Context, sess *Session) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sessions[sess.ID] = *sess
	return nil
}

func (r *MemoryRepository) Get(ctx context.Context, sessionID string) (*Session, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	sess, ok := r.sessions[sessionID]
	if !ok {
		return nil, ErrSessionNotFound
	}
	return &sess, nil
}

func (r *MemoryRepository) Update(ctx context.Context, sess *Session) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cur, ok := r.sessions[sess.ID]
	if !ok {
		return ErrSessionNotFound
	}
	cur.LastSeenAt = sess.LastSeenAt
	r.sessions[sess.ID] = cur
	return nil
}

func (r *MemoryRepository) Delete(ctx context.Context, sessionID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.sessions, sessionID)
	return nil
}

func (r *MemoryRepository) DeleteExpired(ctx context.Context) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	now := time.Now()
	var n int64
	for id, sess := range r.sessions {
		if sess.ExpiresAt.Before(now) {
			delete(r.sessions, id)
			n++
		}
	}
	return n, nil
}
