package score

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/vanhoutenbos/golfapp/internal/repositories/score Repository

import (
	"context"

	"github.com/vanhoutenbos/golfapp/internal/models"
)

// Repository defines the interface for score record persistence.
// It is the single owner of authoritative ScoreRecords: writes go through
// compare-and-swap, superseded versions are kept as history, and every
// conflict resolution leaves an audit entry.
type Repository interface {
	// GetScore retrieves the authoritative record for a natural identity
	GetScore(ctx context.Context, input *GetScoreInput) (*models.ScoreRecord, error)

	// GetTournamentScores retrieves all authoritative records for a tournament
	GetTournamentScores(ctx context.Context, input *GetTournamentScoresInput) (*GetTournamentScoresOutput, error)

	// GetPlayerRoundScores retrieves all of a player's records for one round
	GetPlayerRoundScores(ctx context.Context, input *GetPlayerRoundScoresInput) (*GetPlayerRoundScoresOutput, error)

	// CompareAndSaveScore writes a record only if the stored version still
	// carries the expected server_updated_at; the superseded version is
	// pushed onto the identity's history
	CompareAndSaveScore(ctx context.Context, input *CompareAndSaveScoreInput) error

	// GetScoreVersion retrieves a current or superseded version of a record
	// by its server_updated_at
	GetScoreVersion(ctx context.Context, input *GetScoreVersionInput) (*models.ScoreRecord, error)

	// SaveResolution appends a conflict-resolution audit entry
	SaveResolution(ctx context.Context, input *SaveResolutionInput) error

	// GetResolutions retrieves the resolution audit log for a tournament
	GetResolutions(ctx context.Context, input *GetResolutionsInput) (*GetResolutionsOutput, error)
}
