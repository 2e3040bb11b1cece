package scoring

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/vanhoutenbos/golfapp/internal/services/scoring Service

import "context"

// Service defines the interface for leaderboard reads
type Service interface {
	// GetLeaderboard returns the ranked leaderboard for a tournament view,
	// served from cache when possible and recomputed from the score store
	// on a miss
	GetLeaderboard(ctx context.Context, input *GetLeaderboardInput) (*GetLeaderboardOutput, error)
}
