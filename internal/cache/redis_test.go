package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"
)

type RedisCacheTestSuite struct {
	suite.Suite
	mr     *miniredis.Miniredis
	client *redis.Client
	cache  Cache
}

func (s *RedisCacheTestSuite) SetupTest() {
	mr, err := miniredis.Run()
	s.Require().NoError(err)
	s.mr = mr

	s.client = redis.NewClient(&redis.Options{
		Addr: s.mr.Addr(),
	})

	cache, err := NewRedis(&Config{
		RedisClient: s.client,
	})
	s.Require().NoError(err)
	s.cache = cache
}

func (s *RedisCacheTestSuite) TearDownTest() {
	s.client.Close()
	s.mr.Close()
}

func TestRedisCacheTestSuite(t *testing.T) {
	suite.Run(t, new(RedisCacheTestSuite))
}

func (s *RedisCacheTestSuite) TestSetAndGet() {
	key := LeaderboardKey("tourn-1", "gross", "", 0)

	err := s.cache.Set(context.Background(), &SetInput{
		TournamentID: "tourn-1",
		Key:          key,
		Payload:      []byte(`{"leaderboard":[]}`),
		TTL:          time.Minute,
	})
	s.Require().NoError(err)

	out, err := s.cache.Get(context.Background(), &GetInput{Key: key})
	s.Require().NoError(err)
	s.True(out.Hit)
	s.Equal([]byte(`{"leaderboard":[]}`), out.Payload)
}

func (s *RedisCacheTestSuite) TestGetMiss() {
	out, err := s.cache.Get(context.Background(), &GetInput{Key: "leaderboard:none:gross:all:r0"})
	s.Require().NoError(err)
	s.False(out.Hit)
	s.Nil(out.Payload)
}

func (s *RedisCacheTestSuite) TestInvalidateTournamentRemovesOnlyIndexedKeys() {
	// Two derived views for tourn-1, one for tourn-2
	keys := []struct {
		tournamentID string
		key          string
	}{
		{"tourn-1", LeaderboardKey("tourn-1", "gross", "", 0)},
		{"tourn-1", LeaderboardKey("tourn-1", "stableford", "flight-a", 2)},
		{"tourn-2", LeaderboardKey("tourn-2", "net", "", 0)},
	}

	for _, k := range keys {
		err := s.cache.Set(context.Background(), &SetInput{
			TournamentID: k.tournamentID,
			Key:          k.key,
			Payload:      []byte("cached"),
		})
		s.Require().NoError(err)
	}

	err := s.cache.InvalidateTournament(context.Background(), &InvalidateTournamentInput{
		TournamentID: "tourn-1",
	})
	s.Require().NoError(err)

	for _, k := range keys[:2] {
		out, err := s.cache.Get(context.Background(), &GetInput{Key: k.key})
		s.Require().NoError(err)
		s.False(out.Hit, "key %s should be invalidated", k.key)
	}

	out, err := s.cache.Get(context.Background(), &GetInput{Key: keys[2].key})
	s.Require().NoError(err)
	s.True(out.Hit, "other tournament's key must survive")
}

func (s *RedisCacheTestSuite) TestLeaderboardKeyDimensions() {
	s.Equal("leaderboard:t1:gross:all:r0", LeaderboardKey("t1", "gross", "", 0))
	s.Equal("leaderboard:t1:net:flight-a:r2", LeaderboardKey("t1", "net", "flight-a", 2))
}
