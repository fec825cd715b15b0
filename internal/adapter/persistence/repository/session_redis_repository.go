package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"plumbing_estimator/internal/domain/entities"
	"plumbing_estimator/internal/usecase/interfaces"

	"github.com/redis/go-redis/v9"
)

const (
	sessionNamespace = "matlist"
	sessionPrefix    = "session"

	defaultSessionTTL = 12 * time.Hour
)

// sessionStore is the part of *redis.Client the repository uses.
type sessionStore interface {
	Set(ctx context.Context, key string, value any, ttl time.Duration) *redis.StatusCmd
	Get(ctx context.Context, key string) *redis.StringCmd
	Del(ctx context.Context, keys ...string) *redis.IntCmd
}

// SessionRedisRepository stores material list sessions as JSON documents.
// Every save pushes the expiry forward, so idle sessions age out.
type SessionRedisRepository struct {
	store sessionStore
	ttl   time.Duration
}

var _ interfaces.ISessionRepository = (*SessionRedisRepository)(nil)

func NewSessionRedisRepository(store sessionStore, ttl time.Duration) *SessionRedisRepository {
	if ttl <= 0 {
		ttl = defaultSessionTTL
	}
	return &SessionRedisRepository{store: store, ttl: ttl}
}

func sessionKey(id string) string {
	return buildKey(sessionNamespace, sessionPrefix, id)
}

func (r *SessionRedisRepository) Save(ctx context.Context, s entities.MaterialListSession) error {
	if s.ID == "" {
		return errors.New("session id is required")
	}
	payload, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("encoding session: %w", err)
	}
	return r.store.Set(ctx, sessionKey(s.ID), payload, r.ttl).Err()
}

func (r *SessionRedisRepository) GetByID(ctx context.Context, id string) (entities.MaterialListSession, error) {
	raw, err := r.store.Get(ctx, sessionKey(id)).Bytes()
	if errors.Is(err, redis.Nil) {
		return entities.MaterialListSession{}, nil
	}
	if err != nil {
		return entities.MaterialListSession{}, err
	}
	var s entities.MaterialListSession
	if err := json.Unmarshal(raw, &s); err != nil {
		return entities.MaterialListSession{}, fmt.Errorf("decoding session %s: %w", id, err)
	}
	return s, nil
}

func (r *SessionRedisRepository) Delete(ctx context.Context, id string) error {
	return r.store.Del(ctx, sessionKey(id)).Err()
}
