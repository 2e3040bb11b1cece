package score

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
	scoreKeyPrefix            = "score:"
	tournamentScoresKeyPrefix = "tournament_scores:"
	playerRoundKeyPrefix      = "player_round_scores:"
	scoreHistoryKeyPrefix     = "score_history:"
	resolutionLogKeyPrefix    = "resolution_log:"
)

var (
	// ErrScoreNotFound is returned when no record exists for an identity
	ErrScoreNotFound = errors.New("score not found")

	// ErrVersionMismatch is returned when a compare-and-swap write observes a
	// server_updated_at other than the expected one
	ErrVersionMismatch = errors.New("score version mismatch")
)

// Config holds configuration for the Redis score repository
type Config struct {
	// Redis client
	RedisClient *redis.Client
}

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client *redis.Client
}

// NewRedis creates a new Redis-backed score repository
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

func scoreKey(id models.ScoreIdentity) string {
	return fmt.Sprintf("%s%s:%s:r%d:h%d", scoreKeyPrefix, id.TournamentID, id.PlayerID, id.Round, id.Hole)
}

func historyKey(id models.ScoreIdentity) string {
	return fmt.Sprintf("%s%s:%s:r%d:h%d", scoreHistoryKeyPrefix, id.TournamentID, id.PlayerID, id.Round, id.Hole)
}

// GetScore retrieves the authoritative record for a natural identity
func (r *redisRepository) GetScore(ctx context.Context, input *GetScoreInput) (*models.ScoreRecord, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	scoreJSON, err := r.client.Get(ctx, scoreKey(input.Identity)).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, ErrScoreNotFound
		}
		return nil, fmt.Errorf("failed to get score: %w", err)
	}

	var record models.ScoreRecord
	if err := json.Unmarshal([]byte(scoreJSON), &record); err != nil {
		return nil, fmt.Errorf("failed to unmarshal score: %w", err)
	}

	return &record, nil
}

// GetTournamentScores retrieves all authoritative records for a tournament
func (r *redisRepository) GetTournamentScores(ctx context.Context, input *GetTournamentScoresInput) (*GetTournamentScoresOutput, error) {
	if input == nil || input.TournamentID == "" {
		return nil, errors.New("input and tournament ID cannot be empty")
	}

	indexKey := fmt.Sprintf("%s%s", tournamentScoresKeyPrefix, input.TournamentID)
	scores, err := r.fetchIndexedScores(ctx, indexKey)
	if err != nil {
		return nil, err
	}

	return &GetTournamentScoresOutput{Scores: scores}, nil
}

// GetPlayerRoundScores retrieves all of a player's records for one round
func (r *redisRepository) GetPlayerRoundScores(ctx context.Context, input *GetPlayerRoundScoresInput) (*GetPlayerRoundScoresOutput, error) {
	if input == nil || input.TournamentID == "" || input.PlayerID == "" {
		return nil, errors.New("input, tournament ID and player ID cannot be empty")
	}

	indexKey := fmt.Sprintf("%s%s:%s:r%d", playerRoundKeyPrefix, input.TournamentID, input.PlayerID, input.Round)
	scores, err := r.fetchIndexedScores(ctx, indexKey)
	if err != nil {
		return nil, err
	}

	return &GetPlayerRoundScoresOutput{Scores: scores}, nil
}

// fetchIndexedScores reads every score key held in an index set via a pipeline
func (r *redisRepository) fetchIndexedScores(ctx context.Context, indexKey string) ([]*models.ScoreRecord, error) {
	keys, err := r.client.SMembers(ctx, indexKey).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get score index %s: %w", indexKey, err)
	}

	if len(keys) == 0 {
		return []*models.ScoreRecord{}, nil
	}

	pipe := r.client.Pipeline()
	commands := make(map[string]*redis.StringCmd, len(keys))
	for _, key := range keys {
		commands[key] = pipe.Get(ctx, key)
	}

	if _, err := pipe.Exec(ctx); err != nil && err != redis.Nil {
		return nil, fmt.Errorf("failed to get scores: %w", err)
	}

	scores := make([]*models.ScoreRecord, 0, len(keys))
	for key, cmd := range commands {
		scoreJSON, err := cmd.Result()
		if err != nil {
			if err == redis.Nil {
				// Index entry without a record; skip
				continue
			}
			return nil, fmt.Errorf("failed to get score %s: %w", key, err)
		}

		var record models.ScoreRecord
		if err := json.Unmarshal([]byte(scoreJSON), &record); err != nil {
			return nil, fmt.Errorf("failed to unmarshal score %s: %w", key, err)
		}

		scores = append(scores, &record)
	}

	return scores, nil
}

// CompareAndSaveScore writes a record only if the stored version still carries
// the expected server_updated_at. The write and its index updates run inside a
// WATCH transaction so a concurrent writer cannot sneak in between the read
// and the write; the superseded version is pushed onto the identity's history.
func (r *redisRepository) CompareAndSaveScore(ctx context.Context, input *CompareAndSaveScoreInput) error {
	if input == nil || input.Score == nil {
		return errors.New("input and score cannot be nil")
	}

	record := input.Score
	if record.ID == "" {
		return errors.New("score ID cannot be empty")
	}

	key := scoreKey(record.Identity())

	recordJSON, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("failed to marshal score: %w", err)
	}

	txf := func(tx *redis.Tx) error {
		currentJSON, err := tx.Get(ctx, key).Result()
		var prevJSON string
		if err == redis.Nil {
			if !input.ExpectedUpdatedAt.IsZero() {
				return ErrVersionMismatch
			}
		} else if err != nil {
			return fmt.Errorf("failed to get current score: %w", err)
		} else {
			var current models.ScoreRecord
			if err := json.Unmarshal([]byte(currentJSON), &current); err != nil {
				return fmt.Errorf("failed to unmarshal current score: %w", err)
			}
			if !current.ServerUpdatedAt.Equal(input.ExpectedUpdatedAt) {
				return ErrVersionMismatch
			}
			prevJSON = currentJSON
		}

		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			if prevJSON != "" {
				pipe.LPush(ctx, historyKey(record.Identity()), prevJSON)
			}
			pipe.Set(ctx, key, recordJSON, 0)
			pipe.SAdd(ctx, fmt.Sprintf("%s%s", tournamentScoresKeyPrefix, record.TournamentID), key)
			pipe.SAdd(ctx, fmt.Sprintf("%s%s:%s:r%d", playerRoundKeyPrefix, record.TournamentID, record.PlayerID, record.Round), key)
			return nil
		})
		return err
	}

	err = r.client.Watch(ctx, txf, key)
	if err == redis.TxFailedErr {
		// Another writer touched the key between read and write
		return ErrVersionMismatch
	}
	if err != nil {
		if errors.Is(err, ErrVersionMismatch) {
			return ErrVersionMismatch
		}
		return fmt.Errorf("failed to save score: %w", err)
	}

	return nil
}

// GetScoreVersion retrieves a current or superseded version of a record by its
// server_updated_at. History is scanned newest first.
func (r *redisRepository) GetScoreVersion(ctx context.Context, input *GetScoreVersionInput) (*models.ScoreRecord, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	current, err := r.GetScore(ctx, &GetScoreInput{Identity: input.Identity})
	if err != nil && err != ErrScoreNotFound {
		return nil, err
	}
	if current != nil && current.ServerUpdatedAt.Equal(input.UpdatedAt) {
		return current, nil
	}

	versions, err := r.client.LRange(ctx, historyKey(input.Identity), 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get score history: %w", err)
	}

	for _, versionJSON := range versions {
		var record models.ScoreRecord
		if err := json.Unmarshal([]byte(versionJSON), &record); err != nil {
			return nil, fmt.Errorf("failed to unmarshal score version: %w", err)
		}
		if record.ServerUpdatedAt.Equal(input.UpdatedAt) {
			return &record, nil
		}
	}

	return nil, ErrScoreNotFound
}

// SaveResolution appends a conflict-resolution audit entry
func (r *redisRepository) SaveResolution(ctx context.Context, input *SaveResolutionInput) error {
	if input == nil || input.Resolution == nil {
		return errors.New("input and resolution cannot be nil")
	}

	if input.Resolution.ID == "" {
		return errors.New("resolution ID cannot be empty")
	}

	resolutionJSON, err := json.Marshal(input.Resolution)
	if err != nil {
		return fmt.Errorf("failed to marshal resolution: %w", err)
	}

	logKey := fmt.Sprintf("%s%s", resolutionLogKeyPrefix, input.Resolution.TournamentID)
	if err := r.client.LPush(ctx, logKey, resolutionJSON).Err(); err != nil {
		return fmt.Errorf("failed to save resolution: %w", err)
	}

	return nil
}

// GetResolutions retrieves the resolution audit log for a tournament, newest first
func (r *redisRepository) GetResolutions(ctx context.Context, input *GetResolutionsInput) (*GetResolutionsOutput, error) {
	if input == nil || input.TournamentID == "" {
		return nil, errors.New("input and tournament ID cannot be empty")
	}

	logKey := fmt.Sprintf("%s%s", resolutionLogKeyPrefix, input.TournamentID)
	entries, err := r.client.LRange(ctx, logKey, 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get resolutions: %w", err)
	}

	resolutions := make([]*models.ScoreResolution, 0, len(entries))
	for _, entryJSON := range entries {
		var resolution models.ScoreResolution
		if err := json.Unmarshal([]byte(entryJSON), &resolution); err != nil {
			return nil, fmt.Errorf("failed to unmarshal resolution: %w", err)
		}
		resolutions = append(resolutions, &resolution)
	}

	return &GetResolutionsOutput{Resolutions: resolutions}, nil
}
