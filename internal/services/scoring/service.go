package scoring

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/vanhoutenbos/golfapp/internal/cache"
	"github.com/vanhoutenbos/golfapp/internal/models"
	playerRepo "github.com/vanhoutenbos/golfapp/internal/repositories/player"
	scoreRepo "github.com/vanhoutenbos/golfapp/internal/repositories/score"
	tournamentRepo "github.com/vanhoutenbos/golfapp/internal/repositories/tournament"
)

// service implements the Service interface
type service struct {
	config *Config
}

// New creates a new scoring service
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}
	if cfg.ScoreRepo == nil {
		return nil, ErrNilScoreRepo
	}
	if cfg.PlayerRepo == nil {
		return nil, ErrNilPlayerRepo
	}
	if cfg.TournamentRepo == nil {
		return nil, ErrNilTournamentRepo
	}
	if cfg.Cache == nil {
		return nil, ErrNilCache
	}
	if cfg.Clock == nil {
		return nil, ErrNilClock
	}

	return &service{config: cfg}, nil
}

// GetLeaderboard returns the ranked leaderboard for a tournament view. Reads
// are cache-aside: a hit is returned as-is, a miss recomputes from the current
// score store state and stores the result under the view's key. Cache failures
// never fail the read.
func (s *service) GetLeaderboard(ctx context.Context, input *GetLeaderboardInput) (*GetLeaderboardOutput, error) {
	if input == nil || input.TournamentID == "" {
		return nil, errors.New("input and tournament ID cannot be empty")
	}

	format := input.Format
	if format == "" {
		format = models.FormatGross
	}
	if format != models.FormatGross && format != models.FormatNet && format != models.FormatStableford {
		return nil, ErrUnsupportedFormat
	}

	key := cache.LeaderboardKey(input.TournamentID, string(format), input.FlightID, input.Round)

	cached, err := s.config.Cache.Get(ctx, &cache.GetInput{Key: key})
	if err != nil {
		log.Warn().Err(err).Str("key", key).Msg("leaderboard cache read failed")
	} else if cached.Hit {
		var view cachedLeaderboard
		if err := json.Unmarshal(cached.Payload, &view); err != nil {
			log.Warn().Err(err).Str("key", key).Msg("discarding undecodable cached leaderboard")
		} else {
			return &GetLeaderboardOutput{
				Tournament:  view.Tournament,
				Format:      view.Format,
				Entries:     view.Entries,
				LastUpdated: view.LastUpdated,
				FromCache:   true,
			}, nil
		}
	}

	tournament, err := s.config.TournamentRepo.GetTournament(ctx, &tournamentRepo.GetTournamentInput{
		TournamentID: input.TournamentID,
	})
	if err != nil {
		if errors.Is(err, tournamentRepo.ErrTournamentNotFound) {
			return nil, ErrTournamentNotFound
		}
		return nil, fmt.Errorf("failed to load tournament: %w", err)
	}

	if input.Round < 0 || input.Round > tournament.Rounds {
		return nil, ErrInvalidRound
	}

	roster, err := s.config.PlayerRepo.GetTournamentPlayers(ctx, &playerRepo.GetTournamentPlayersInput{
		TournamentID: input.TournamentID,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to load roster: %w", err)
	}

	scores, err := s.config.ScoreRepo.GetTournamentScores(ctx, &scoreRepo.GetTournamentScoresInput{
		TournamentID: input.TournamentID,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to load scores: %w", err)
	}

	entries := Build(roster.Players, scores.Scores, tournament, format, input.FlightID, input.Round)

	out := &GetLeaderboardOutput{
		Tournament:  tournament,
		Format:      format,
		Entries:     entries,
		LastUpdated: s.config.Clock.Now(),
	}

	payload, err := json.Marshal(&cachedLeaderboard{
		Tournament:  out.Tournament,
		Format:      out.Format,
		Entries:     out.Entries,
		LastUpdated: out.LastUpdated,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal leaderboard for cache: %w", err)
	}

	if err := s.config.Cache.Set(ctx, &cache.SetInput{
		TournamentID: input.TournamentID,
		Key:          key,
		Payload:      payload,
		TTL:          s.config.CacheTTL,
	}); err != nil {
		log.Warn().Err(err).Str("key", key).Msg("leaderboard cache write failed")
	}

	return out, nil
}
