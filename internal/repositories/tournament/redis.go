package tournament

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/vanhoutenbos/golfapp/internal/models"
)

const (
	// Key prefix for Redis
	tournamentKeyPrefix = "tournament:"
)

// ErrTournamentNotFound is returned when a tournament is not found
var ErrTournamentNotFound = errors.New("tournament not found")

// Config holds configuration for the Redis tournament repository
type Config struct {
	// Redis client
	RedisClient *redis.Client
}

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client *redis.Client
}

// NewRedis creates a new Redis-backed tournament repository
func NewRedis(cfg *Config) (*redisRepository, error) {
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

	return &redisRepository{
		client: cfg.RedisClient,
	}, nil
}

// SaveTournament persists a tournament to Redis
func (r *redisRepository) SaveTournament(ctx context.Context, input *SaveTournamentInput) error {
	if input == nil || input.Tournament == nil {
		return errors.New("input and tournament cannot be nil")
	}

	tournament := input.Tournament
	if tournament.ID == "" {
		return errors.New("tournament ID cannot be empty")
	}

	tournamentJSON, err := json.Marshal(tournament)
	if err != nil {
		return fmt.Errorf("failed to marshal tournament: %w", err)
	}

	key := fmt.Sprintf("%s%s", tournamentKeyPrefix, tournament.ID)
	if err := r.client.Set(ctx, key, tournamentJSON, 0).Err(); err != nil {
		return fmt.Errorf("failed to save tournament: %w", err)
	}

	return nil
}

// GetTournament retrieves a tournament by ID from Redis
func (r *redisRepository) GetTournament(ctx context.Context, input *GetTournamentInput) (*models.Tournament, error) {
	if input == nil || input.TournamentID == "" {
		return nil, errors.New("input and tournament ID cannot be empty")
	}

	key := fmt.Sprintf("%s%s", tournamentKeyPrefix, input.TournamentID)
	tournamentJSON, err := r.client.Get(ctx, key).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, ErrTournamentNotFound
		}
		return nil, fmt.Errorf("failed to get tournament: %w", err)
	}

	var tournament models.Tournament
	if err := json.Unmarshal([]byte(tournamentJSON), &tournament); err != nil {
		return nil, fmt.Errorf("failed to unmarshal tournament: %w", err)
	}

	return &tournament, nil
}
