// Package session provides durable implementations of the session store.
package session

import (
	"context"
	"encoding/json"
	"time"

	"marketfront/config"
	"marketfront/internal/domain/entity"
	"marketfront/internal/domain/store"

	"github.com/go-redis/redis/v8"
	"github.com/pkg/errors"
)

const keyPrefix = "session:"

// redisStore persists sessions in Redis with a TTL matching the session
// lifetime, so expiry needs no sweeper.
type redisStore struct {
	client *redis.Client
}

// NewRedisStore connects to Redis and returns a SessionStore backed by it.
func NewRedisStore(ctx context.Context, cfg *config.RedisConfig) (store.SessionStore, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		return nil, errors.Wrap(err, "connect to redis")
	}

	return &redisStore{client: client}, nil
}

// Save writes the session record under its ID.
func (s *redisStore) Save(ctx context.Context, session *entity.Session) error {
	raw, err := json.Marshal(session)
	if err != nil {
		return errors.Wrap(err, "marshal session")
	}

	ttl := time.Until(session.ExpiresAt)
	if ttl <= 0 {
		return errors.New("session already expired")
	}

	if err := s.client.Set(ctx, keyPrefix+session.ID, raw, ttl).Err(); err != nil {
		return errors.Wrap(err, "write session record")
	}

	return nil
}

// Load retrieves a session record by ID.
func (s *redisStore) Load(ctx context.Context, sessionID string) (*entity.Session, error) {
	raw, err := s.client.Get(ctx, keyPrefix+sessionID).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, store.ErrSessionNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "read session record")
	}

	session := &entity.Session{}
	if err := json.Unmarshal(raw, session); err != nil {
		// A record that no longer parses is corruption, not a transient
		// failure. Callers clear the session in response.
		return nil, store.ErrSessionCorrupted
	}

	return session, nil
}

// Delete removes the session record.
func (s *redisStore) Delete(ctx context.Context, sessionID string) error {
	if err := s.client.Del(ctx, keyPrefix+sessionID).Err(); err != nil {
		return errors.Wrap(err, "delete session record")
	}

	return nil
}
