package score

import (
	"time"

	"github.com/vanhoutenbos/golfapp/internal/models"
)

// GetScoreInput contains parameters for retrieving an authoritative score record
type GetScoreInput struct {
	Identity models.ScoreIdentity
}

// GetTournamentScoresInput contains parameters for retrieving a tournament's scores
type GetTournamentScoresInput struct {
	TournamentID string
}

// GetTournamentScoresOutput contains all authoritative records for a tournament
type GetTournamentScoresOutput struct {
	Scores []*models.ScoreRecord
}

// GetPlayerRoundScoresInput contains parameters for retrieving one player's round
type GetPlayerRoundScoresInput struct {
	TournamentID string
	PlayerID     string
	Round        int
}

// GetPlayerRoundScoresOutput contains a player's records for one round
type GetPlayerRoundScoresOutput struct {
	Scores []*models.ScoreRecord
}

// CompareAndSaveScoreInput contains parameters for a compare-and-swap write.
// ExpectedUpdatedAt is the server_updated_at the caller observed; the zero
// time means the caller expects no record to exist yet.
type CompareAndSaveScoreInput struct {
	Score             *models.ScoreRecord
	ExpectedUpdatedAt time.Time
}

// GetScoreVersionInput contains parameters for retrieving a historical version
type GetScoreVersionInput struct {
	Identity  models.ScoreIdentity
	UpdatedAt time.Time
}

// SaveResolutionInput contains parameters for appending an audit entry
type SaveResolutionInput struct {
	Resolution *models.ScoreResolution
}

// GetResolutionsInput contains parameters for reading a tournament's audit log
type GetResolutionsInput struct {
	TournamentID string
}

// GetResolutionsOutput contains a tournament's resolution audit log, newest first
type GetResolutionsOutput struct {
	Resolutions []*models.ScoreResolution
}
