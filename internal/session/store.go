package session

import (
	"context"
	"fmt"
	"time"

	redisv9 "github.com/redis/go-redis/v9"
)

// RedisStore keeps one record per user: key session:token:<user_id>, value
// the last issued JWT, TTL equal to the token lifetime. Existence of the
// key is the sole signal of an active session, so deleting it revokes the
// session immediately even though the JWT signature stays valid until exp.
type RedisStore struct {
	client *redisv9.Client
}

func NewRedisStore(client *redisv9.Client) *RedisStore {
	return &RedisStore{client: client}
}

func (s *RedisStore) Save(ctx context.Context, userID uint, token string, ttl time.Duration) error {
	if err := s.client.Set(ctx, s.key(userID), token, ttl).Err(); err != nil {
		return fmt.Errorf("redis set session token failed: %w", err)
	}
	return nil
}

func (s *RedisStore) Get(ctx context.Context, userID uint) (string, bool, error) {
	token, err := s.client.Get(ctx, s.key(userID)).Result()
	if err == redisv9.Nil {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("redis get session token failed: %w", err)
	}
	return token, true, nil
}

func (s *RedisStore) Delete(ctx context.Context, userID uint) error {
	if err := s.client.Del(ctx, s.key(userID)).Err(); err != nil {
		return fmt.Errorf("redis delete session token failed: %w", err)
	}
	return nil
}

func (s *RedisStore) key(userID uint) string {
	return fmt.Sprintf("session:token:%d", userID)
}
