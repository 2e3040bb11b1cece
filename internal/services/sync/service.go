package sync

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/vanhoutenbos/golfapp/internal/cache"
	"github.com/vanhoutenbos/golfapp/internal/models"
	"github.com/vanhoutenbos/golfapp/internal/notify"
	scoreRepo "github.com/vanhoutenbos/golfapp/internal/repositories/score"
	tournamentRepo "github.com/vanhoutenbos/golfapp/internal/repositories/tournament"
)

// service implements the Service interface
type service struct {
	config *Config
}

// New creates a new sync coordinator
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}
	if cfg.ScoreRepo == nil {
		return nil, ErrNilScoreRepo
	}
	if cfg.TournamentRepo == nil {
		return nil, ErrNilTournamentRepo
	}
	if cfg.Resolver == nil {
		return nil, ErrNilResolver
	}
	if cfg.Cache == nil {
		return nil, ErrNilCache
	}
	if cfg.Notifier == nil {
		return nil, ErrNilNotifier
	}
	if cfg.Clock == nil {
		return nil, ErrNilClock
	}
	if cfg.UUIDGenerator == nil {
		return nil, ErrNilUUIDGenerator
	}

	return &service{config: cfg}, nil
}

// SyncBatch applies one device's batch of score edits. Items are processed as
// independent units of work: a failing item reports its own error and the
// rest of the batch continues. After processing, every changed round triggers
// the invalidation hook for the tournament.
func (s *service) SyncBatch(ctx context.Context, input *SyncBatchInput) (*SyncBatchOutput, error) {
	if input == nil || input.TournamentID == "" {
		return nil, errors.New("input and tournament ID cannot be empty")
	}

	// Structurally malformed batches are the only batch-level rejection
	if len(input.Scores) == 0 {
		return nil, ErrEmptyBatch
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

	results := make([]*SyncResult, 0, len(input.Scores))
	changedRounds := make(map[int]bool)

	for _, edit := range input.Scores {
		result := s.processItem(ctx, tournament, input, edit)
		results = append(results, result)

		if result.stateChanged {
			changedRounds[edit.Round] = true
		}
	}

	s.invalidate(ctx, input.TournamentID, changedRounds)

	return &SyncBatchOutput{
		Results:         results,
		ServerTimestamp: s.config.Clock.Now(),
	}, nil
}

// processItem runs one edit through lookup, resolution and compare-and-swap
// persistence. A CAS race is re-resolved against the fresh server state and
// retried once; a still-contested item reports conflict with the fresh copy.
func (s *service) processItem(ctx context.Context, tournament *models.Tournament, batch *SyncBatchInput, edit *ScoreEdit) *SyncResult {
	if edit == nil {
		return &SyncResult{Status: ItemStatusError, ErrorMessage: "score edit cannot be nil"}
	}

	resultID := edit.ID
	if err := s.validateEdit(tournament, edit); err != nil {
		return &SyncResult{ID: resultID, Status: ItemStatusError, ErrorMessage: err.Error()}
	}

	candidate := s.buildRecord(batch, edit)
	if resultID == "" {
		resultID = candidate.ID
	}

	identity := candidate.Identity()
	existing, err := s.config.ScoreRepo.GetScore(ctx, &scoreRepo.GetScoreInput{Identity: identity})
	if err != nil && !errors.Is(err, scoreRepo.ErrScoreNotFound) {
		return &SyncResult{ID: resultID, Status: ItemStatusError, ErrorMessage: fmt.Sprintf("failed to load score: %v", err)}
	}
	if errors.Is(err, scoreRepo.ErrScoreNotFound) {
		existing = nil
	}

	// First pass plus one retry after a compare-and-swap race
	for attempt := 0; attempt < 2; attempt++ {
		if existing == nil {
			if !validStrokes(candidate, tournament.MaxStrokesPerHole) {
				return &SyncResult{ID: resultID, Status: ItemStatusError, ErrorMessage: fmt.Sprintf("strokes must be between 1 and %d", tournament.MaxStrokesPerHole)}
			}

			record := *candidate
			record.ServerUpdatedAt = s.config.Clock.Now()
			record.SyncStatus = models.SyncStatusSynced

			err := s.config.ScoreRepo.CompareAndSaveScore(ctx, &scoreRepo.CompareAndSaveScoreInput{Score: &record})
			if err == nil {
				return &SyncResult{ID: resultID, Status: ItemStatusCreated, ServerData: &record, stateChanged: true}
			}
			if !errors.Is(err, scoreRepo.ErrVersionMismatch) {
				return &SyncResult{ID: resultID, Status: ItemStatusError, ErrorMessage: fmt.Sprintf("failed to save score: %v", err)}
			}

			// Another device inserted this identity first; resolve against it
			existing, err = s.config.ScoreRepo.GetScore(ctx, &scoreRepo.GetScoreInput{Identity: identity})
			if err != nil {
				return &SyncResult{ID: resultID, Status: ItemStatusError, ErrorMessage: fmt.Sprintf("failed to reload score: %v", err)}
			}
			continue
		}

		// Resubmitting identical content is a no-op. A differing official
		// flag is a content change and goes through the resolver so the
		// upgrade is persisted.
		if existing.EqualContent(candidate) {
			return &SyncResult{ID: resultID, Status: ItemStatusUpdated, ServerData: existing}
		}

		// The authoritative record keeps its id across supersessions
		candidate.ID = existing.ID

		resolved, err := s.config.Resolver.Resolve(&ResolveInput{
			Local:      candidate,
			Server:     existing,
			Base:       s.lookupBase(ctx, identity, edit),
			MaxStrokes: tournament.MaxStrokesPerHole,
		})
		if err != nil {
			return &SyncResult{ID: resultID, Status: ItemStatusError, ErrorMessage: err.Error()}
		}

		if resolved.ServerWon {
			s.recordResolution(ctx, resolved.Reason, existing, candidate)
			return &SyncResult{ID: resultID, Status: ItemStatusConflict, ServerData: existing}
		}

		winner := *resolved.Winner
		winner.ServerUpdatedAt = s.config.Clock.Now()
		winner.SyncStatus = models.SyncStatusSynced

		err = s.config.ScoreRepo.CompareAndSaveScore(ctx, &scoreRepo.CompareAndSaveScoreInput{
			Score:             &winner,
			ExpectedUpdatedAt: existing.ServerUpdatedAt,
		})
		if err == nil {
			s.recordResolution(ctx, resolved.Reason, &winner, existing)
			return &SyncResult{ID: resultID, Status: ItemStatusUpdated, ServerData: &winner, stateChanged: true}
		}
		if !errors.Is(err, scoreRepo.ErrVersionMismatch) {
			return &SyncResult{ID: resultID, Status: ItemStatusError, ErrorMessage: fmt.Sprintf("failed to save score: %v", err)}
		}

		// Lost the race: re-resolve against the fresh state
		existing, err = s.config.ScoreRepo.GetScore(ctx, &scoreRepo.GetScoreInput{Identity: identity})
		if err != nil {
			return &SyncResult{ID: resultID, Status: ItemStatusError, ErrorMessage: fmt.Sprintf("failed to reload score: %v", err)}
		}
	}

	// Still contested after the retry
	return &SyncResult{ID: resultID, Status: ItemStatusConflict, ServerData: existing}
}

// validateEdit checks the edit's shape against the tournament
func (s *service) validateEdit(tournament *models.Tournament, edit *ScoreEdit) error {
	if edit.PlayerID == "" {
		return errors.New("player ID cannot be empty")
	}
	if edit.Round < 1 || edit.Round > tournament.Rounds {
		return fmt.Errorf("round %d is out of range for this tournament", edit.Round)
	}
	if tournament.HoleByNumber(edit.Hole) == nil {
		return fmt.Errorf("hole %d is not on this course", edit.Hole)
	}
	return nil
}

// buildRecord turns a client edit into a candidate score record
func (s *service) buildRecord(batch *SyncBatchInput, edit *ScoreEdit) *models.ScoreRecord {
	id := edit.ID
	if id == "" {
		id = s.config.UUIDGenerator.NewUUID()
	}

	return &models.ScoreRecord{
		ID:                id,
		TournamentID:      batch.TournamentID,
		PlayerID:          edit.PlayerID,
		Round:             edit.Round,
		Hole:              edit.Hole,
		Strokes:           edit.Strokes,
		Putts:             edit.Putts,
		PenaltyStrokes:    edit.PenaltyStrokes,
		FairwayHit:        edit.FairwayHit,
		GreenInRegulation: edit.GreenInRegulation,
		SandSave:          edit.SandSave,
		UpAndDown:         edit.UpAndDown,
		RecordedBy:        batch.RecordedBy,
		IsOfficial:        batch.IsOfficial,
		ClientTimestamp:   edit.UpdatedAt,
		DeviceID:          batch.DeviceID,
		SyncStatus:        models.SyncStatusPending,
	}
}

// lookupBase recovers the common ancestor version the client says it edited
func (s *service) lookupBase(ctx context.Context, identity models.ScoreIdentity, edit *ScoreEdit) *models.ScoreRecord {
	if edit.BaseUpdatedAt.IsZero() {
		return nil
	}

	base, err := s.config.ScoreRepo.GetScoreVersion(ctx, &scoreRepo.GetScoreVersionInput{
		Identity:  identity,
		UpdatedAt: edit.BaseUpdatedAt,
	})
	if err != nil {
		// Unknown ancestor just disables field merging
		return nil
	}
	return base
}

// recordResolution writes the audit entry for a decided conflict
func (s *service) recordResolution(ctx context.Context, reason models.ResolutionReason, winner, loser *models.ScoreRecord) {
	resolution := &models.ScoreResolution{
		ID:              s.config.UUIDGenerator.NewUUID(),
		TournamentID:    winner.TournamentID,
		PlayerID:        winner.PlayerID,
		Round:           winner.Round,
		Hole:            winner.Hole,
		Reason:          reason,
		WinnerDeviceID:  winner.DeviceID,
		LoserDeviceID:   loser.DeviceID,
		WinnerTimestamp: winner.ClientTimestamp,
		LoserTimestamp:  loser.ClientTimestamp,
		ResolvedAt:      s.config.Clock.Now(),
	}

	if err := s.config.ScoreRepo.SaveResolution(ctx, &scoreRepo.SaveResolutionInput{Resolution: resolution}); err != nil {
		log.Error().Err(err).
			Str("tournament_id", resolution.TournamentID).
			Str("player_id", resolution.PlayerID).
			Int("round", resolution.Round).
			Int("hole", resolution.Hole).
			Msg("failed to record conflict resolution")
	}
}

// invalidate signals downstream caches and subscribers for every changed round
func (s *service) invalidate(ctx context.Context, tournamentID string, changedRounds map[int]bool) {
	if len(changedRounds) == 0 {
		return
	}

	if err := s.config.Cache.InvalidateTournament(ctx, &cache.InvalidateTournamentInput{
		TournamentID: tournamentID,
	}); err != nil {
		log.Warn().Err(err).Str("tournament_id", tournamentID).Msg("leaderboard cache invalidation failed")
	}

	changedAt := s.config.Clock.Now()
	for round := range changedRounds {
		if err := s.config.Notifier.PublishLeaderboardChanged(ctx, &notify.PublishLeaderboardChangedInput{
			TournamentID: tournamentID,
			Round:        round,
			ChangedAt:    changedAt,
		}); err != nil {
			log.Warn().Err(err).Str("tournament_id", tournamentID).Int("round", round).Msg("leaderboard change publish failed")
		}
	}
}
