package itemcache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/guildboard/blackboard/internal/models"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"
)

type RedisRepositoryTestSuite struct {
	suite.Suite
	mr     *miniredis.Miniredis
	client *redis.Client
	repo   Repository
}

func (s *RedisRepositoryTestSuite) SetupTest() {
	mr, err := miniredis.Run()
	s.Require().NoError(err)
	s.mr = mr

	s.client = redis.NewClient(&redis.Options{
		Addr: s.mr.Addr(),
	})

	repo, err := NewRedis(&Config{
		RedisClient: s.client,
		TTL:         time.Hour,
	})
	s.Require().NoError(err)
	s.repo = repo
}

func (s *RedisRepositoryTestSuite) TearDownTest() {
	s.client.Close()
	s.mr.Close()
}

func TestRedisRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(RedisRepositoryTestSuite))
}

func (s *RedisRepositoryTestSuite) TestMissReturnsErrItemNotCached() {
	_, err := s.repo.GetItem(context.Background(), &GetItemInput{ItemID: 2770})
	s.Require().ErrorIs(err, ErrItemNotCached)
}

func (s *RedisRepositoryTestSuite) TestSetAndGetRoundTrip() {
	ctx := context.Background()

	info := &models.ItemInfo{
		ID:       2770,
		Name:     "Copper Ore",
		Quality:  1,
		MaxStack: 20,
		Stats:    []string{"+1 Mining"},
	}

	err := s.repo.SetItem(ctx, &SetItemInput{Item: info})
	s.Require().NoError(err)

	got, err := s.repo.GetItem(ctx, &GetItemInput{ItemID: 2770})
	s.Require().NoError(err)
	s.Equal("Copper Ore", got.Name)
	s.Equal(1, got.Quality)
	s.Equal(20, got.MaxStack)
	s.Equal([]string{"+1 Mining"}, got.Stats)
}

func (s *RedisRepositoryTestSuite) TestEntriesExpire() {
	ctx := context.Background()

	err := s.repo.SetItem(ctx, &SetItemInput{
		Item: &models.ItemInfo{ID: 2770, Name: "Copper Ore"},
	})
	s.Require().NoError(err)

	s.mr.FastForward(2 * time.Hour)

	_, err = s.repo.GetItem(ctx, &GetItemInput{ItemID: 2770})
	s.Require().ErrorIs(err, ErrItemNotCached)
}
