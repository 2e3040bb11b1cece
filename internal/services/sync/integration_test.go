package sync

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"

	"github.com/vanhoutenbos/golfapp/internal/cache"
	"github.com/vanhoutenbos/golfapp/internal/common/clock"
	commonUUID "github.com/vanhoutenbos/golfapp/internal/common/uuid"
	"github.com/vanhoutenbos/golfapp/internal/models"
	"github.com/vanhoutenbos/golfapp/internal/notify"
	scoreRepo "github.com/vanhoutenbos/golfapp/internal/repositories/score"
	tournamentRepo "github.com/vanhoutenbos/golfapp/internal/repositories/tournament"
)

// SyncIntegrationTestSuite runs the coordinator against real Redis-backed
// collaborators to exercise offline replay end to end.
type SyncIntegrationTestSuite struct {
	suite.Suite
	mr          *miniredis.Miniredis
	client      *redis.Client
	scores      scoreRepo.Repository
	syncService Service
	ctx         context.Context

	tournamentID string
	baseTime     time.Time
}

func (s *SyncIntegrationTestSuite) SetupTest() {
	mr, err := miniredis.Run()
	s.Require().NoError(err)
	s.mr = mr

	s.client = redis.NewClient(&redis.Options{
		Addr: s.mr.Addr(),
	})

	s.ctx = context.Background()
	s.tournamentID = "tourn-replay"
	s.baseTime = time.Date(2025, 6, 14, 9, 0, 0, 0, time.UTC)

	scores, err := scoreRepo.NewRedis(&scoreRepo.Config{RedisClient: s.client})
	s.Require().NoError(err)
	s.scores = scores

	tournaments, err := tournamentRepo.NewRedis(&tournamentRepo.Config{RedisClient: s.client})
	s.Require().NoError(err)

	holes := make([]models.Hole, 18)
	for i := range holes {
		holes[i] = models.Hole{Number: i + 1, Par: 4, StrokeIndex: i + 1}
	}
	err = tournaments.SaveTournament(s.ctx, &tournamentRepo.SaveTournamentInput{
		Tournament: &models.Tournament{
			ID:                s.tournamentID,
			Name:              "Replay Open",
			Format:            models.FormatGross,
			Rounds:            2,
			Holes:             holes,
			MaxStrokesPerHole: 12,
		},
	})
	s.Require().NoError(err)

	leaderboardCache, err := cache.NewRedis(&cache.Config{RedisClient: s.client})
	s.Require().NoError(err)

	notifier, err := notify.NewRedis(&notify.Config{RedisClient: s.client})
	s.Require().NoError(err)

	service, err := New(&Config{
		ScoreRepo:      scores,
		TournamentRepo: tournaments,
		Resolver:       NewResolver(),
		Cache:          leaderboardCache,
		Notifier:       notifier,
		Clock:          &clock.DefaultClock{},
		UUIDGenerator:  commonUUID.New(),
	})
	s.Require().NoError(err)
	s.syncService = service
}

func (s *SyncIntegrationTestSuite) TearDownTest() {
	s.client.Close()
	s.mr.Close()
}

func TestSyncIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(SyncIntegrationTestSuite))
}

// deviceEdits builds one device's view of the full card set. Stroke values and
// client timestamps are offset per device so the last device's edits are the
// newest everywhere.
func (s *SyncIntegrationTestSuite) deviceEdits(deviceIdx, players int) []*ScoreEdit {
	var edits []*ScoreEdit
	for p := 1; p <= players; p++ {
		for round := 1; round <= 2; round++ {
			for hole := 1; hole <= 18; hole++ {
				edits = append(edits, &ScoreEdit{
					ID:        fmt.Sprintf("d%d-p%d-r%d-h%d", deviceIdx, p, round, hole),
					PlayerID:  fmt.Sprintf("player-%d", p),
					Round:     round,
					Hole:      hole,
					Strokes:   3 + deviceIdx,
					UpdatedAt: s.baseTime.Add(time.Duration(deviceIdx) * time.Minute),
				})
			}
		}
	}
	return edits
}

// submitInBatches replays a device's queue in fixed-size batches, the way a
// reconnecting client drains its local queue.
func (s *SyncIntegrationTestSuite) submitInBatches(deviceID string, official bool, edits []*ScoreEdit, batchSize int) []*SyncResult {
	var results []*SyncResult
	for start := 0; start < len(edits); start += batchSize {
		end := start + batchSize
		if end > len(edits) {
			end = len(edits)
		}
		out, err := s.syncService.SyncBatch(s.ctx, &SyncBatchInput{
			TournamentID: s.tournamentID,
			DeviceID:     deviceID,
			IsOfficial:   official,
			Scores:       edits[start:end],
		})
		s.Require().NoError(err)
		results = append(results, out.Results...)
	}
	return results
}

func (s *SyncIntegrationTestSuite) TestOfflineReplayConvergesWithoutDuplicates() {
	const players = 5 // 5 players x 2 rounds x 18 holes = 180 identities per device

	// Three devices recorded the same cards offline with diverging values.
	// Device 2's edits carry the newest client timestamps.
	deviceResults := map[string][]*SyncResult{}
	for deviceIdx := 0; deviceIdx < 3; deviceIdx++ {
		deviceID := fmt.Sprintf("device-%d", deviceIdx)
		deviceResults[deviceID] = s.submitInBatches(deviceID, false, s.deviceEdits(deviceIdx, players), 50)
	}

	// Every submitted item got a terminal outcome
	for deviceID, results := range deviceResults {
		s.Require().Len(results, players*2*18)
		for _, result := range results {
			s.Contains([]ItemStatus{ItemStatusCreated, ItemStatusUpdated, ItemStatusConflict}, result.Status,
				"device %s item %s", deviceID, result.ID)
			s.Empty(result.ErrorMessage)
		}
	}

	// Exactly one authoritative record per identity, all won by the newest device
	stored, err := s.scores.GetTournamentScores(s.ctx, &scoreRepo.GetTournamentScoresInput{
		TournamentID: s.tournamentID,
	})
	s.Require().NoError(err)
	s.Require().Len(stored.Scores, players*2*18)

	seen := map[models.ScoreIdentity]bool{}
	for _, record := range stored.Scores {
		identity := record.Identity()
		s.False(seen[identity], "duplicate authoritative record for %+v", identity)
		seen[identity] = true

		s.Equal(5, record.Strokes, "newest edit should win for %+v", identity)
		s.Equal("device-2", record.DeviceID)
		s.Equal(models.SyncStatusSynced, record.SyncStatus)
	}
}

// flakyScoreRepo wraps the real store and fails a fraction of writes with a
// transient error while dropping is active, as if the connection died mid
// request.
type flakyScoreRepo struct {
	scoreRepo.Repository
	dropping  bool
	writeSeen int
}

func (f *flakyScoreRepo) CompareAndSaveScore(ctx context.Context, input *scoreRepo.CompareAndSaveScoreInput) error {
	f.writeSeen++
	if f.dropping && f.writeSeen%3 == 0 {
		return fmt.Errorf("write score: connection reset by peer")
	}
	return f.Repository.CompareAndSaveScore(ctx, input)
}

func (s *SyncIntegrationTestSuite) TestReplayAfterTransientFailuresReachesTerminalState() {
	const players = 5

	flaky := &flakyScoreRepo{Repository: s.scores, dropping: true}

	tournaments, err := tournamentRepo.NewRedis(&tournamentRepo.Config{RedisClient: s.client})
	s.Require().NoError(err)
	leaderboardCache, err := cache.NewRedis(&cache.Config{RedisClient: s.client})
	s.Require().NoError(err)
	notifier, err := notify.NewRedis(&notify.Config{RedisClient: s.client})
	s.Require().NoError(err)

	service, err := New(&Config{
		ScoreRepo:      flaky,
		TournamentRepo: tournaments,
		Resolver:       NewResolver(),
		Cache:          leaderboardCache,
		Notifier:       notifier,
		Clock:          &clock.DefaultClock{},
		UUIDGenerator:  commonUUID.New(),
	})
	s.Require().NoError(err)
	s.syncService = service

	// First pass: roughly a third of the writes die mid request. Failed items
	// must report error without disturbing the rest of their batch.
	edits := s.deviceEdits(0, players)
	first := s.submitInBatches("device-0", false, edits, 50)

	failed := 0
	for _, result := range first {
		switch result.Status {
		case ItemStatusCreated:
		case ItemStatusError:
			failed++
			s.NotEmpty(result.ErrorMessage)
		default:
			s.Failf("unexpected status", "item %s got %s", result.ID, result.Status)
		}
	}
	s.Require().NotZero(failed, "the failure window must have hit some writes")
	s.Require().Less(failed, len(first), "failures must not take down whole batches")

	// The device reconnects and replays its full queue
	flaky.dropping = false
	replay := s.submitInBatches("device-0", false, edits, 50)
	for _, result := range replay {
		s.Contains([]ItemStatus{ItemStatusCreated, ItemStatusUpdated}, result.Status)
		s.Empty(result.ErrorMessage)
	}

	stored, err := s.scores.GetTournamentScores(s.ctx, &scoreRepo.GetTournamentScoresInput{
		TournamentID: s.tournamentID,
	})
	s.Require().NoError(err)
	s.Require().Len(stored.Scores, players*2*18, "every edit reaches exactly one record")

	for _, record := range stored.Scores {
		s.Equal(models.SyncStatusSynced, record.SyncStatus)
	}
}

func (s *SyncIntegrationTestSuite) TestInterruptedBatchReplayIsIdempotent() {
	const players = 2

	edits := s.deviceEdits(0, players)
	first := s.submitInBatches("device-0", false, edits, 25)
	for _, result := range first {
		s.Require().Equal(ItemStatusCreated, result.Status)
	}

	// The client never saw some responses and replays the whole queue
	replay := s.submitInBatches("device-0", false, edits, 25)
	for _, result := range replay {
		s.Require().Equal(ItemStatusUpdated, result.Status)
	}

	stored, err := s.scores.GetTournamentScores(s.ctx, &scoreRepo.GetTournamentScoresInput{
		TournamentID: s.tournamentID,
	})
	s.Require().NoError(err)
	s.Require().Len(stored.Scores, players*2*18, "replay must not create duplicates")
}

func (s *SyncIntegrationTestSuite) TestOfficialConfirmationSticksAcrossLaterEdits() {
	edit := &ScoreEdit{
		ID:        "marker-edit",
		PlayerID:  "player-1",
		Round:     1,
		Hole:      1,
		Strokes:   5,
		UpdatedAt: s.baseTime,
	}
	s.submitInBatches("device-marker", false, []*ScoreEdit{edit}, 1)

	// The official confirms the exact same strokes. The record must still be
	// upgraded to official, not short-circuited as an idempotent no-op.
	confirmation := &ScoreEdit{
		ID:        "official-confirm",
		PlayerID:  "player-1",
		Round:     1,
		Hole:      1,
		Strokes:   5,
		UpdatedAt: s.baseTime.Add(time.Minute),
	}
	confirmed := s.submitInBatches("device-official", true, []*ScoreEdit{confirmation}, 1)
	s.Require().Equal(ItemStatusUpdated, confirmed[0].Status)

	stored, err := s.scores.GetScore(s.ctx, &scoreRepo.GetScoreInput{
		Identity: models.ScoreIdentity{TournamentID: s.tournamentID, PlayerID: "player-1", Round: 1, Hole: 1},
	})
	s.Require().NoError(err)
	s.True(stored.IsOfficial, "confirmed record must carry the official flag")

	// A newer non-official edit cannot displace the confirmed value
	lateEdit := &ScoreEdit{
		ID:        "marker-late",
		PlayerID:  "player-1",
		Round:     1,
		Hole:      1,
		Strokes:   7,
		UpdatedAt: s.baseTime.Add(time.Hour),
	}
	late := s.submitInBatches("device-marker", false, []*ScoreEdit{lateEdit}, 1)
	s.Require().Equal(ItemStatusConflict, late[0].Status)
	s.Require().NotNil(late[0].ServerData)
	s.Equal(5, late[0].ServerData.Strokes)
	s.True(late[0].ServerData.IsOfficial)
}

func (s *SyncIntegrationTestSuite) TestOfficialCorrectionSticksAcrossLaterEdits() {
	edit := &ScoreEdit{
		ID:        "marker-edit",
		PlayerID:  "player-1",
		Round:     1,
		Hole:      1,
		Strokes:   6,
		UpdatedAt: s.baseTime,
	}
	s.submitInBatches("device-marker", false, []*ScoreEdit{edit}, 1)

	correction := &ScoreEdit{
		ID:        "official-edit",
		PlayerID:  "player-1",
		Round:     1,
		Hole:      1,
		Strokes:   5,
		UpdatedAt: s.baseTime.Add(time.Minute),
	}
	official := s.submitInBatches("device-official", true, []*ScoreEdit{correction}, 1)
	s.Require().Equal(ItemStatusUpdated, official[0].Status)

	// A later non-official edit from the marker loses to the official record
	lateEdit := &ScoreEdit{
		ID:        "marker-late",
		PlayerID:  "player-1",
		Round:     1,
		Hole:      1,
		Strokes:   7,
		UpdatedAt: s.baseTime.Add(time.Hour),
	}
	late := s.submitInBatches("device-marker", false, []*ScoreEdit{lateEdit}, 1)
	s.Require().Equal(ItemStatusConflict, late[0].Status)
	s.Require().NotNil(late[0].ServerData)
	s.Equal(5, late[0].ServerData.Strokes)

	// The losing attempt left an audit trail
	resolutions, err := s.scores.GetResolutions(s.ctx, &scoreRepo.GetResolutionsInput{
		TournamentID: s.tournamentID,
	})
	s.Require().NoError(err)
	s.Require().NotEmpty(resolutions.Resolutions)
}
