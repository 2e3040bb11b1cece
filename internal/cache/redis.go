package cache

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
)

const (
	// Key prefix for the per-tournament index of derived cache keys
	keyIndexPrefix = "leaderboard_keys:"
)

// Config holds configuration for the Redis cache
type Config struct {
	// Redis client
	RedisClient *redis.Client
}

// redisCache implements the Cache interface using Redis
type redisCache struct {
	client *redis.Client
}

// NewRedis creates a new Redis-backed cache
func NewRedis(cfg *Config) (*redisCache, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.RedisClient == nil {
		return nil, errors.New("redis client cannot be nil")
	}

	// Test connection
	if err := cfg.RedisClient.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &redisCache{
		client: cfg.RedisClient,
	}, nil
}

// Get retrieves a cached payload by key
func (c *redisCache) Get(ctx context.Context, input *GetInput) (*GetOutput, error) {
	if input == nil || input.Key == "" {
		return nil, errors.New("input and key cannot be empty")
	}

	payload, err := c.client.Get(ctx, input.Key).Bytes()
	if err != nil {
		if err == redis.Nil {
			return &GetOutput{Hit: false}, nil
		}
		return nil, fmt.Errorf("failed to get cache key %s: %w", input.Key, err)
	}

	return &GetOutput{
		Hit:     true,
		Payload: payload,
	}, nil
}

// Set stores a payload under a key and indexes it for its tournament
func (c *redisCache) Set(ctx context.Context, input *SetInput) error {
	if input == nil || input.Key == "" || input.TournamentID == "" {
		return errors.New("input, key and tournament ID cannot be empty")
	}

	indexKey := fmt.Sprintf("%s%s", keyIndexPrefix, input.TournamentID)

	pipe := c.client.Pipeline()
	pipe.Set(ctx, input.Key, input.Payload, input.TTL)
	pipe.SAdd(ctx, indexKey, input.Key)

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to set cache key %s: %w", input.Key, err)
	}

	return nil
}

// InvalidateTournament removes every cached key indexed for a tournament.
// Only the indexed keys are deleted; nothing is pattern-matched.
func (c *redisCache) InvalidateTournament(ctx context.Context, input *InvalidateTournamentInput) error {
	if input == nil || input.TournamentID == "" {
		return errors.New("input and tournament ID cannot be empty")
	}

	indexKey := fmt.Sprintf("%s%s", keyIndexPrefix, input.TournamentID)
	keys, err := c.client.SMembers(ctx, indexKey).Result()
	if err != nil {
		return fmt.Errorf("failed to read cache key index: %w", err)
	}

	pipe := c.client.Pipeline()
	if len(keys) > 0 {
		pipe.Del(ctx, keys...)
	}
	pipe.Del(ctx, indexKey)

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to invalidate tournament cache: %w", err)
	}

	return nil
}
