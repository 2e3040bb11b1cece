package score

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"

	"github.com/vanhoutenbos/golfapp/internal/models"
)

type RedisRepositoryTestSuite struct {
	suite.Suite
	mr      *miniredis.Miniredis
	client  *redis.Client
	repo    Repository
	testNow time.Time
}

func (s *RedisRepositoryTestSuite) SetupTest() {
	// Create a new miniredis server for each test
	mr, err := miniredis.Run()
	s.Require().NoError(err)
	s.mr = mr

	s.client = redis.NewClient(&redis.Options{
		Addr: s.mr.Addr(),
	})

	repo, err := NewRedis(&Config{
		RedisClient: s.client,
	})
	s.Require().NoError(err)
	s.repo = repo

	s.testNow = time.Date(2025, 6, 14, 9, 30, 0, 0, time.UTC)
}

func (s *RedisRepositoryTestSuite) TearDownTest() {
	s.client.Close()
	s.mr.Close()
}

func TestRedisRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(RedisRepositoryTestSuite))
}

func (s *RedisRepositoryTestSuite) newRecord() *models.ScoreRecord {
	putts := 2
	fairway := true
	return &models.ScoreRecord{
		ID:              "score-1",
		TournamentID:    "tourn-1",
		PlayerID:        "player-1",
		Round:           1,
		Hole:            4,
		Strokes:         5,
		Putts:           &putts,
		FairwayHit:      &fairway,
		RecordedBy:      "player-1",
		ClientTimestamp: s.testNow,
		ServerUpdatedAt: s.testNow,
		DeviceID:        "device-a",
		SyncStatus:      models.SyncStatusSynced,
	}
}

func (s *RedisRepositoryTestSuite) TestSaveAndGetScore() {
	record := s.newRecord()

	err := s.repo.CompareAndSaveScore(context.Background(), &CompareAndSaveScoreInput{
		Score: record,
	})
	s.Require().NoError(err)

	retrieved, err := s.repo.GetScore(context.Background(), &GetScoreInput{
		Identity: record.Identity(),
	})
	s.Require().NoError(err)
	s.Require().NotNil(retrieved)

	// Field-for-field round trip
	s.Equal(record.ID, retrieved.ID)
	s.Equal(record.TournamentID, retrieved.TournamentID)
	s.Equal(record.PlayerID, retrieved.PlayerID)
	s.Equal(record.Round, retrieved.Round)
	s.Equal(record.Hole, retrieved.Hole)
	s.Equal(record.Strokes, retrieved.Strokes)
	s.Require().NotNil(retrieved.Putts)
	s.Equal(*record.Putts, *retrieved.Putts)
	s.Require().NotNil(retrieved.FairwayHit)
	s.Equal(*record.FairwayHit, *retrieved.FairwayHit)
	s.Nil(retrieved.PenaltyStrokes)
	s.Equal(record.DeviceID, retrieved.DeviceID)
	s.Equal(models.SyncStatusSynced, retrieved.SyncStatus)
	s.True(record.ServerUpdatedAt.Equal(retrieved.ServerUpdatedAt))
}

func (s *RedisRepositoryTestSuite) TestGetScoreNotFound() {
	_, err := s.repo.GetScore(context.Background(), &GetScoreInput{
		Identity: models.ScoreIdentity{
			TournamentID: "tourn-1",
			PlayerID:     "nobody",
			Round:        1,
			Hole:         1,
		},
	})
	s.Require().ErrorIs(err, ErrScoreNotFound)
}

func (s *RedisRepositoryTestSuite) TestCompareAndSaveRejectsStaleVersion() {
	record := s.newRecord()

	err := s.repo.CompareAndSaveScore(context.Background(), &CompareAndSaveScoreInput{
		Score: record,
	})
	s.Require().NoError(err)

	// A second insert that still believes no record exists must fail
	competing := s.newRecord()
	competing.ID = "score-2"
	competing.Strokes = 6
	err = s.repo.CompareAndSaveScore(context.Background(), &CompareAndSaveScoreInput{
		Score: competing,
	})
	s.Require().ErrorIs(err, ErrVersionMismatch)

	// The original record is untouched
	retrieved, err := s.repo.GetScore(context.Background(), &GetScoreInput{
		Identity: record.Identity(),
	})
	s.Require().NoError(err)
	s.Equal(5, retrieved.Strokes)

	// With the correct expected version the write goes through
	competing.ServerUpdatedAt = s.testNow.Add(time.Minute)
	err = s.repo.CompareAndSaveScore(context.Background(), &CompareAndSaveScoreInput{
		Score:             competing,
		ExpectedUpdatedAt: record.ServerUpdatedAt,
	})
	s.Require().NoError(err)

	retrieved, err = s.repo.GetScore(context.Background(), &GetScoreInput{
		Identity: record.Identity(),
	})
	s.Require().NoError(err)
	s.Equal(6, retrieved.Strokes)
}

func (s *RedisRepositoryTestSuite) TestSupersededVersionKeptInHistory() {
	first := s.newRecord()
	err := s.repo.CompareAndSaveScore(context.Background(), &CompareAndSaveScoreInput{
		Score: first,
	})
	s.Require().NoError(err)

	second := s.newRecord()
	second.Strokes = 4
	second.ServerUpdatedAt = s.testNow.Add(2 * time.Minute)
	err = s.repo.CompareAndSaveScore(context.Background(), &CompareAndSaveScoreInput{
		Score:             second,
		ExpectedUpdatedAt: first.ServerUpdatedAt,
	})
	s.Require().NoError(err)

	// The first version is recoverable by its server_updated_at
	version, err := s.repo.GetScoreVersion(context.Background(), &GetScoreVersionInput{
		Identity:  first.Identity(),
		UpdatedAt: first.ServerUpdatedAt,
	})
	s.Require().NoError(err)
	s.Equal(5, version.Strokes)

	// The current version resolves too
	version, err = s.repo.GetScoreVersion(context.Background(), &GetScoreVersionInput{
		Identity:  first.Identity(),
		UpdatedAt: second.ServerUpdatedAt,
	})
	s.Require().NoError(err)
	s.Equal(4, version.Strokes)

	// An unknown version does not
	_, err = s.repo.GetScoreVersion(context.Background(), &GetScoreVersionInput{
		Identity:  first.Identity(),
		UpdatedAt: s.testNow.Add(time.Hour),
	})
	s.Require().ErrorIs(err, ErrScoreNotFound)
}

func (s *RedisRepositoryTestSuite) TestTournamentAndPlayerRoundIndexes() {
	holes := []int{1, 2, 3}
	for _, hole := range holes {
		record := s.newRecord()
		record.ID = fmt.Sprintf("score-hole-%d", hole)
		record.Hole = hole
		err := s.repo.CompareAndSaveScore(context.Background(), &CompareAndSaveScoreInput{
			Score: record,
		})
		s.Require().NoError(err)
	}

	other := s.newRecord()
	other.ID = "score-other"
	other.PlayerID = "player-2"
	other.Hole = 1
	err := s.repo.CompareAndSaveScore(context.Background(), &CompareAndSaveScoreInput{
		Score: other,
	})
	s.Require().NoError(err)

	tournamentScores, err := s.repo.GetTournamentScores(context.Background(), &GetTournamentScoresInput{
		TournamentID: "tourn-1",
	})
	s.Require().NoError(err)
	s.Len(tournamentScores.Scores, 4)

	playerScores, err := s.repo.GetPlayerRoundScores(context.Background(), &GetPlayerRoundScoresInput{
		TournamentID: "tourn-1",
		PlayerID:     "player-1",
		Round:        1,
	})
	s.Require().NoError(err)
	s.Len(playerScores.Scores, 3)
}

func (s *RedisRepositoryTestSuite) TestSaveAndGetResolutions() {
	resolution := &models.ScoreResolution{
		ID:              "res-1",
		TournamentID:    "tourn-1",
		PlayerID:        "player-1",
		Round:           1,
		Hole:            4,
		Reason:          models.ReasonOfficialOverride,
		WinnerDeviceID:  "device-official",
		LoserDeviceID:   "device-a",
		WinnerTimestamp: s.testNow,
		LoserTimestamp:  s.testNow.Add(time.Minute),
		ResolvedAt:      s.testNow.Add(2 * time.Minute),
	}

	err := s.repo.SaveResolution(context.Background(), &SaveResolutionInput{
		Resolution: resolution,
	})
	s.Require().NoError(err)

	out, err := s.repo.GetResolutions(context.Background(), &GetResolutionsInput{
		TournamentID: "tourn-1",
	})
	s.Require().NoError(err)
	s.Require().Len(out.Resolutions, 1)
	s.Equal(models.ReasonOfficialOverride, out.Resolutions[0].Reason)
	s.Equal("device-official", out.Resolutions[0].WinnerDeviceID)
}
