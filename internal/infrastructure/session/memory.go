package session

import (
	"context"
	"hash/fnv"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/gct/report-admin/internal/core/domain"
)

const shardCount = 16

type memoryEntry struct {
	sess     domain.UserSession
	deadline time.Time
}

type memoryShard struct {
	mu       sync.RWMutex
	sessions map[string]memoryEntry
}

// MemoryStore is a process-local SessionStore sharded across independently
// locked buckets, so operations on different session ids rarely contend.
type MemoryStore struct {
	shards [shardCount]*memoryShard
	ttl    time.Duration
	now    func() time.Time
}

// NewMemoryStore builds an empty store. A non-positive ttl falls back to 30m.
func NewMemoryStore(ttl time.Duration) *MemoryStore {
	if ttl <= 0 {
		ttl = defaultTTL
	}
	s := &MemoryStore{ttl: ttl, now: time.Now}
	for i := range s.shards {
		s.shards[i] = &memoryShard{sessions: make(map[string]memoryEntry)}
	}
	return s
}

func (s *MemoryStore) shard(id string) *memoryShard {
	h := fnv.New32a()
	_, _ = h.Write([]byte(id))
	return s.shards[h.Sum32()%shardCount]
}

func (s *MemoryStore) Create(_ context.Context, sess domain.UserSession) (string, error) {
	id := uuid.NewString()
	sh := s.shard(id)

	sh.mu.Lock()
	sh.sessions[id] = memoryEntry{sess: sess, deadline: s.now().Add(s.ttl)}
	sh.mu.Unlock()

	return id, nil
}

func (s *MemoryStore) Get(_ context.Context, id string) (*domain.UserSession, error) {
	sh := s.shard(id)

	sh.mu.RLock()
	entry, ok := sh.sessions[id]
	sh.mu.RUnlock()
	if !ok {
		return nil, nil
	}

	if s.now().After(entry.deadline) {
		sh.mu.Lock()
		// Re-check under the write lock: a concurrent Get may have refreshed it.
		if cur, ok := sh.sessions[id]; ok && s.now().After(cur.deadline) {
			delete(sh.sessions, id)
		}
		sh.mu.Unlock()
		return nil, nil
	}

	// Sliding expiry, same policy as the Redis store.
	sh.mu.Lock()
	if cur, ok := sh.sessions[id]; ok {
		cur.deadline = s.now().Add(s.ttl)
		sh.sessions[id] = cur
	}
	sh.mu.Unlock()

	sess := entry.sess
	return &sess, nil
}

func (s *MemoryStore) Invalidate(_ context.Context, id string) error {
	sh := s.shard(id)
	sh.mu.Lock()
	delete(sh.sessions, id)
	sh.mu.Unlock()
	return nil
}

func (s *MemoryStore) InvalidateUser(_ context.Context, userID, exceptID string) error {
	for _, sh := range s.shards {
		sh.mu.Lock()
		for id, entry := range sh.sessions {
			if entry.sess.UserID == userID && id != exceptID {
				delete(sh.sessions, id)
			}
		}
		sh.mu.Unlock()
	}
	return nil
}
