package notify

//go:generate mockgen -package=mocks -destination=mocks/mock_notifier.go github.com/vanhoutenbos/golfapp/internal/notify Notifier

import (
	"context"
	"fmt"
	"time"
)

// Notifier defines the change-notification channel telling subscribers that a
// tournament's leaderboard is stale. Delivery is best effort; consumers that
// miss an event fall back to cache TTL expiry.
type Notifier interface {
	// PublishLeaderboardChanged announces that a tournament's leaderboard changed
	PublishLeaderboardChanged(ctx context.Context, input *PublishLeaderboardChangedInput) error
}

// PublishLeaderboardChangedInput contains parameters for a change announcement
type PublishLeaderboardChangedInput struct {
	// TournamentID identifies the tournament whose leaderboard changed
	TournamentID string

	// Round is the round the contributing score belonged to
	Round int

	// ChangedAt is when the contributing score was accepted
	ChangedAt time.Time
}

// Channel returns the pub/sub channel name for a tournament's leaderboard events.
func Channel(tournamentID string) string {
	return fmt.Sprintf("tournament:%s:leaderboard", tournamentID)
}
