package scoring

import (
	"time"

	"github.com/vanhoutenbos/golfapp/internal/cache"
	"github.com/vanhoutenbos/golfapp/internal/common/clock"
	"github.com/vanhoutenbos/golfapp/internal/models"
	playerRepo "github.com/vanhoutenbos/golfapp/internal/repositories/player"
	scoreRepo "github.com/vanhoutenbos/golfapp/internal/repositories/score"
	tournamentRepo "github.com/vanhoutenbos/golfapp/internal/repositories/tournament"
)

// Config holds configuration for the scoring service
type Config struct {
	// Repository dependencies
	ScoreRepo      scoreRepo.Repository
	PlayerRepo     playerRepo.Repository
	TournamentRepo tournamentRepo.Repository

	// Cache for derived leaderboards
	Cache cache.Cache

	// CacheTTL bounds staleness when invalidation is missed
	CacheTTL time.Duration

	// Clock stamps recomputed leaderboards
	Clock clock.Clock
}

// GetLeaderboardInput contains parameters for a leaderboard read
type GetLeaderboardInput struct {
	// TournamentID identifies the tournament
	TournamentID string

	// Format selects gross, net or stableford ranking; empty defaults to gross
	Format models.Format

	// FlightID restricts the leaderboard to one flight; empty means the whole field
	FlightID string

	// Round restricts the leaderboard to one round; zero means all rounds
	Round int
}

// GetLeaderboardOutput contains a ranked leaderboard view
type GetLeaderboardOutput struct {
	// Tournament is the tournament the leaderboard belongs to
	Tournament *models.Tournament

	// Format is the ranking format that was applied
	Format models.Format

	// Entries is the ranked leaderboard, unranked "not started" players last
	Entries []*models.LeaderboardEntry

	// LastUpdated is when this view was computed
	LastUpdated time.Time

	// FromCache is true when the view was served without recomputation
	FromCache bool
}

// cachedLeaderboard is the serialized form of a leaderboard view in the cache
type cachedLeaderboard struct {
	Tournament  *models.Tournament         `json:"tournament"`
	Format      models.Format              `json:"format"`
	Entries     []*models.LeaderboardEntry `json:"entries"`
	LastUpdated time.Time                  `json:"last_updated"`
}
