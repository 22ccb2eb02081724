package repository

import (
	"context"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"gamedex/internal/domain/repository"
	"gamedex/pkg/errors"
)

const preferenceKeyPrefix = "prefs:"

type redisPreferenceStore struct {
	client *goredis.Client
}

// NewRedisPreferenceStore backs the device preference store with Redis.
func NewRedisPreferenceStore(client *goredis.Client) repository.PreferenceStore {
	return &redisPreferenceStore{client: client}
}

func (s *redisPreferenceStore) Get(ctx context.Context, key string) (string, bool, error) {
	value, err := s.client.Get(ctx, preferenceKeyPrefix+key).Result()
	if err == goredis.Nil {
		return "", false, nil
	}
	if err != nil {
		return "", false, errors.Internal("Failed to read preference", err)
	}
	return value, true, nil
}

func (s *redisPreferenceStore) Set(ctx context.Context, key, value string, ttl time.Duration) error {
	if err := s.client.Set(ctx, preferenceKeyPrefix+key, value, ttl).Err(); err != nil {
		return errors.Internal("Failed to write preference", err)
	}
	return nil
}

func (s *redisPreferenceStore) Delete(ctx context.Context, key string) error {
	if err := s.client.Del(ctx, preferenceKeyPrefix+key).Err(); err != nil {
		return errors.Internal("Failed to delete preference", err)
	}
	return nil
}
