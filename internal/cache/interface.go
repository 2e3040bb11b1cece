package cache

//go:generate mockgen -package=mocks -destination=mocks/mock_cache.go github.com/vanhoutenbos/golfapp/internal/cache Cache

import (
	"context"
	"fmt"
)

// Cache defines the interface for the derived-leaderboard cache.
// Every Set registers the derived key in a per-tournament index so
// invalidation deletes exactly the keys that belong to the tournament;
// there is no wildcard matching.
type Cache interface {
	// Get retrieves a cached payload by key
	Get(ctx context.Context, input *GetInput) (*GetOutput, error)

	// Set stores a payload under a key and indexes it for its tournament
	Set(ctx context.Context, input *SetInput) error

	// InvalidateTournament removes every cached key indexed for a tournament
	InvalidateTournament(ctx context.Context, input *InvalidateTournamentInput) error
}

// LeaderboardKey builds the cache key for a leaderboard view.
// Flight and round are optional dimensions; zero values mean "whole field"
// and "all rounds".
func LeaderboardKey(tournamentID, format, flightID string, round int) string {
	if flightID == "" {
		flightID = "all"
	}
	return fmt.Sprintf("leaderboard:%s:%s:%s:r%d", tournamentID, format, flightID, round)
}
