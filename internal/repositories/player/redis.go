package player

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/vanhoutenbos/golfapp/internal/models"
)

const (
	// Key prefixes for Redis
	playerKeyPrefix            = "player:"
	tournamentPlayersKeyPrefix = "tournament_players:"
)

// ErrPlayerNotFound is returned when a player is not found
var ErrPlayerNotFound = errors.New("player not found")

// Config holds configuration for the Redis player repository
type Config struct {
	// Redis client
	RedisClient *redis.Client
}

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client *redis.Client
}

// NewRedis creates a new Redis-backed player repository
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

// SavePlayer persists a player and registers them on the tournament roster
func (r *redisRepository) SavePlayer(ctx context.Context, input *SavePlayerInput) error {
	if input == nil || input.Player == nil {
		return errors.New("input and player cannot be nil")
	}

	player := input.Player
	if player.ID == "" {
		return errors.New("player ID cannot be empty")
	}

	playerJSON, err := json.Marshal(player)
	if err != nil {
		return fmt.Errorf("failed to marshal player: %w", err)
	}

	pipe := r.client.Pipeline()

	playerKey := fmt.Sprintf("%s%s", playerKeyPrefix, player.ID)
	pipe.Set(ctx, playerKey, playerJSON, 0)

	if player.TournamentID != "" {
		rosterKey := fmt.Sprintf("%s%s", tournamentPlayersKeyPrefix, player.TournamentID)
		pipe.SAdd(ctx, rosterKey, player.ID)
	}

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to save player: %w", err)
	}

	return nil
}

// GetPlayer retrieves a player by ID from Redis
func (r *redisRepository) GetPlayer(ctx context.Context, input *GetPlayerInput) (*models.Player, error) {
	if input == nil || input.PlayerID == "" {
		return nil, errors.New("input and player ID cannot be empty")
	}

	playerKey := fmt.Sprintf("%s%s", playerKeyPrefix, input.PlayerID)
	playerJSON, err := r.client.Get(ctx, playerKey).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, ErrPlayerNotFound
		}
		return nil, fmt.Errorf("failed to get player: %w", err)
	}

	var player models.Player
	if err := json.Unmarshal([]byte(playerJSON), &player); err != nil {
		return nil, fmt.Errorf("failed to unmarshal player: %w", err)
	}

	return &player, nil
}

// GetTournamentPlayers retrieves every player registered for a tournament
func (r *redisRepository) GetTournamentPlayers(ctx context.Context, input *GetTournamentPlayersInput) (*GetTournamentPlayersOutput, error) {
	if input == nil || input.TournamentID == "" {
		return nil, errors.New("input and tournament ID cannot be empty")
	}

	rosterKey := fmt.Sprintf("%s%s", tournamentPlayersKeyPrefix, input.TournamentID)
	playerIDs, err := r.client.SMembers(ctx, rosterKey).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get roster for tournament: %w", err)
	}

	if len(playerIDs) == 0 {
		return &GetTournamentPlayersOutput{
			Players: []*models.Player{},
		}, nil
	}

	// Fetch all player records using a pipeline
	pipe := r.client.Pipeline()
	playerCommands := make(map[string]*redis.StringCmd, len(playerIDs))
	for _, playerID := range playerIDs {
		playerKey := fmt.Sprintf("%s%s", playerKeyPrefix, playerID)
		playerCommands[playerID] = pipe.Get(ctx, playerKey)
	}

	if _, err := pipe.Exec(ctx); err != nil && err != redis.Nil {
		return nil, fmt.Errorf("failed to get players: %w", err)
	}

	players := make([]*models.Player, 0, len(playerIDs))
	for playerID, cmd := range playerCommands {
		playerJSON, err := cmd.Result()
		if err != nil {
			if err == redis.Nil {
				// Player was removed between reading the roster and the fetch
				continue
			}
			return nil, fmt.Errorf("failed to get player %s: %w", playerID, err)
		}

		var player models.Player
		if err := json.Unmarshal([]byte(playerJSON), &player); err != nil {
			return nil, fmt.Errorf("failed to unmarshal player %s: %w", playerID, err)
		}

		players = append(players, &player)
	}

	return &GetTournamentPlayersOutput{
		Players: players,
	}, nil
}
