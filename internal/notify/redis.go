package notify

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// Event is the payload published on a tournament's leaderboard channel
type Event struct {
	TournamentID string    `json:"tournament_id"`
	Round        int       `json:"round"`
	ChangedAt    time.Time `json:"changed_at"`
}

// Config holds configuration for the Redis notifier
type Config struct {
	// Redis client
	RedisClient *redis.Client
}

// redisNotifier implements the Notifier interface using Redis pub/sub
type redisNotifier struct {
	client *redis.Client
}

// NewRedis creates a new Redis-backed notifier
func NewRedis(cfg *Config) (*redisNotifier, error) {
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

	return &redisNotifier{
		client: cfg.RedisClient,
	}, nil
}

// PublishLeaderboardChanged announces that a tournament's leaderboard changed
func (n *redisNotifier) PublishLeaderboardChanged(ctx context.Context, input *PublishLeaderboardChangedInput) error {
	if input == nil || input.TournamentID == "" {
		return errors.New("input and tournament ID cannot be empty")
	}

	event := Event{
		TournamentID: input.TournamentID,
		Round:        input.Round,
		ChangedAt:    input.ChangedAt,
	}

	eventJSON, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	if err := n.client.Publish(ctx, Channel(input.TournamentID), eventJSON).Err(); err != nil {
		return fmt.Errorf("failed to publish leaderboard change: %w", err)
	}

	return nil
}
