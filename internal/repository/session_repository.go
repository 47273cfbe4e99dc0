package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	appErrors "github.com/facile-ph/enlistment-api/pkg/errors"
)

// SessionRepository persists saved selection blobs in Redis, keyed by
// session ID. The blob is opaque here; the selection service owns its
// shape.
type SessionRepository struct {
	client *redis.Client
	logger *zap.Logger
}

// NewSessionRepository constructs a session repository.
func NewSessionRepository(client *redis.Client, logger *zap.Logger) *SessionRepository {
	return &SessionRepository{client: client, logger: logger}
}

func sessionKey(id string) string {
	return "session:" + id
}

// Get retrieves and unmarshals a stored blob into dest.
func (r *SessionRepository) Get(ctx context.Context, id string, dest interface{}) error {
	if r.client == nil {
		return appErrors.ErrCacheMiss
	}

	raw, err := r.client.Get(ctx, sessionKey(id)).Bytes()
	if err != nil {
		if err == redis.Nil {
			return appErrors.ErrCacheMiss
		}
		return fmt.Errorf("redis get session %s: %w", id, err)
	}

	if err := json.Unmarshal(raw, dest); err != nil {
		return fmt.Errorf("unmarshal session %s: %w", id, err)
	}
	return nil
}

// Set stores a blob under the session ID with the given TTL.
func (r *SessionRepository) Set(ctx context.Context, id string, value interface{}, ttl time.Duration) error {
	if r.client == nil {
		return nil
	}

	payload, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("marshal session %s: %w", id, err)
	}

	if err := r.client.Set(ctx, sessionKey(id), payload, ttl).Err(); err != nil {
		return fmt.Errorf("redis set session %s: %w", id, err)
	}
	return nil
}

// Delete removes a stored session.
func (r *SessionRepository) Delete(ctx context.Context, id string) error {
	if r.client == nil {
		return nil
	}
	if err := r.client.Del(ctx, sessionKey(id)).Err(); err != nil {
		return fmt.Errorf("redis delete session %s: %w", id, err)
	}
	return nil
}

// Close releases the underlying Redis connection if present.
func (r *SessionRepository) Close() error {
	if r.client == nil {
		return nil
	}
	return r.client.Close()
}
