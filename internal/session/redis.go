package session

import (
	"context"
	"errors"
	"fmt"

	"github.com/bytedance/sonic"
	"github.com/redis/go-redis/v9"

	"llmpad/pkg"
)

// RedisStore keeps the snapshot under a single Redis key with no TTL,
// for people who want the session to follow them between machines.
type RedisStore struct {
	client *redis.Client
	key    string
}

func NewRedisStore(ctx context.Context, url, key string) (*RedisStore, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("failed to parse redis URL: %w", err)
	}

	client := redis.NewClient(opts)
	if _, err := client.Ping(ctx).Result(); err != nil {
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}

	return &RedisStore{client: client, key: key}, nil
}

func (s *RedisStore) Save(ctx context.Context, snap pkg.SessionSnapshot) error {
	data, err := sonic.Marshal(snap)
	if err != nil {
		return fmt.Errorf("failed to marshal session: %w", err)
	}
	if err := s.client.Set(ctx, s.key, data, 0).Err(); err != nil {
		return fmt.Errorf("failed to set session key: %w", err)
	}
	return nil
}

func (s *RedisStore) Load(ctx context.Context) (pkg.SessionSnapshot, error) {
	data, err := s.client.Get(ctx, s.key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return pkg.SessionSnapshot{}, ErrNoSnapshot
		}
		return pkg.SessionSnapshot{}, fmt.Errorf("failed to get session key: %w", err)
	}

	var snap pkg.SessionSnapshot
	if err := sonic.UnmarshalString(data, &snap); err != nil {
		return pkg.SessionSnapshot{}, nil
	}
	return snap, nil
}

func (s *RedisStore) Exists(ctx context.Context) bool {
	n, err := s.client.Exists(ctx, s.key).Result()
	return err == nil && n > 0
}
