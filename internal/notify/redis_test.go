package notify

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"
)

type RedisNotifierTestSuite struct {
	suite.Suite
	mr       *miniredis.Miniredis
	client   *redis.Client
	notifier Notifier
}

func (s *RedisNotifierTestSuite) SetupTest() {
	mr, err := miniredis.Run()
	s.Require().NoError(err)
	s.mr = mr

	s.client = redis.NewClient(&redis.Options{
		Addr: s.mr.Addr(),
	})

	notifier, err := NewRedis(&Config{
		RedisClient: s.client,
	})
	s.Require().NoError(err)
	s.notifier = notifier
}

func (s *RedisNotifierTestSuite) TearDownTest() {
	s.client.Close()
	s.mr.Close()
}

func TestRedisNotifierTestSuite(t *testing.T) {
	suite.Run(t, new(RedisNotifierTestSuite))
}

func (s *RedisNotifierTestSuite) TestPublishLeaderboardChanged() {
	sub := s.client.Subscribe(context.Background(), Channel("tourn-1"))
	defer sub.Close()

	// Wait for the subscription to be established
	_, err := sub.Receive(context.Background())
	s.Require().NoError(err)

	changedAt := time.Date(2025, 6, 14, 9, 30, 0, 0, time.UTC)
	err = s.notifier.PublishLeaderboardChanged(context.Background(), &PublishLeaderboardChangedInput{
		TournamentID: "tourn-1",
		Round:        2,
		ChangedAt:    changedAt,
	})
	s.Require().NoError(err)

	select {
	case msg := <-sub.Channel():
		var event Event
		s.Require().NoError(json.Unmarshal([]byte(msg.Payload), &event))
		s.Equal("tourn-1", event.TournamentID)
		s.Equal(2, event.Round)
		s.True(changedAt.Equal(event.ChangedAt))
	case <-time.After(2 * time.Second):
		s.Fail("no leaderboard change event received")
	}
}

func (s *RedisNotifierTestSuite) TestChannelName() {
	s.Equal("tournament:tourn-9:leaderboard", Channel("tourn-9"))
}
