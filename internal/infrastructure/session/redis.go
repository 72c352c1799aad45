// Package session provides the SessionStore implementations: a Redis-backed
// store for deployments and a sharded in-memory store for tests and
// single-node setups without Redis.
package session

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/gct/report-admin/internal/core/domain"
)

const defaultTTL = 30 * time.Minute

const (
	sessionKeyPrefix = "session:"
	userIndexPrefix  = "user_sessions:"
)

// RedisStore keeps sessions as TTL'd JSON values plus a per-user set of
// session ids so password changes can drop a user's other sessions.
// The TTL is an idle timeout: it is refreshed on every successful Get.
type RedisStore struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisStore wraps the given client. A non-positive ttl falls back to 30m.
func NewRedisStore(client *redis.Client, ttl time.Duration) *RedisStore {
	if ttl <= 0 {
		ttl = defaultTTL
	}
	return &RedisStore{client: client, ttl: ttl}
}

func (s *RedisStore) Create(ctx context.Context, sess domain.UserSession) (string, error) {
	payload, err := json.Marshal(sess)
	if err != nil {
		return "", fmt.Errorf("marshal session: %w", err)
	}

	id := uuid.NewString()

	pipe := s.client.TxPipeline()
	pipe.Set(ctx, sessionKeyPrefix+id, payload, s.ttl)
	pipe.SAdd(ctx, userIndexPrefix+sess.UserID, id)
	// The index must outlive the longest-lived member; it is pruned lazily.
	pipe.Expire(ctx, userIndexPrefix+sess.UserID, s.ttl)
	if _, err := pipe.Exec(ctx); err != nil {
		return "", fmt.Errorf("create session: %w", err)
	}

	return id, nil
}

func (s *RedisStore) Get(ctx context.Context, id string) (*domain.UserSession, error) {
	raw, err := s.client.Get(ctx, sessionKeyPrefix+id).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get session: %w", err)
	}

	var sess domain.UserSession
	if err := json.Unmarshal(raw, &sess); err != nil {
		return nil, fmt.Errorf("decode session: %w", err)
	}

	// Sliding expiry: each authenticated request keeps the session alive.
	pipe := s.client.Pipeline()
	pipe.Expire(ctx, sessionKeyPrefix+id, s.ttl)
	pipe.Expire(ctx, userIndexPrefix+sess.UserID, s.ttl)
	_, _ = pipe.Exec(ctx)

	return &sess, nil
}

func (s *RedisStore) Invalidate(ctx context.Context, id string) error {
	sess, err := s.Get(ctx, id)
	if err != nil {
		return err
	}
	if sess == nil {
		return nil
	}

	pipe := s.client.TxPipeline()
	pipe.Del(ctx, sessionKeyPrefix+id)
	pipe.SRem(ctx, userIndexPrefix+sess.UserID, id)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("invalidate session: %w", err)
	}
	return nil
}

func (s *RedisStore) InvalidateUser(ctx context.Context, userID, exceptID string) error {
	ids, err := s.client.SMembers(ctx, userIndexPrefix+userID).Result()
	if err == redis.Nil || len(ids) == 0 {
		return nil
	}
	if err != nil {
		return fmt.Errorf("list user sessions: %w", err)
	}

	pipe := s.client.TxPipeline()
	for _, id := range ids {
		if id == exceptID {
			continue
		}
		pipe.Del(ctx, sessionKeyPrefix+id)
		pipe.SRem(ctx, userIndexPrefix+userID, id)
	}
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("invalidate user sessions: %w", err)
	}
	return nil
}
