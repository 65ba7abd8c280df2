package item

import (
	"context"
	"errors"
	"fmt"
	"testing"

	blizzardMocks "github.com/guildboard/blackboard/internal/clients/blizzard/mocks"
	"github.com/guildboard/blackboard/internal/models"
	"github.com/guildboard/blackboard/internal/repositories/itemcache"
	cacheMocks "github.com/guildboard/blackboard/internal/repositories/itemcache/mocks"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap/zaptest"
)

type ServiceTestSuite struct {
	suite.Suite
	mockCtrl   *gomock.Controller
	mockClient *blizzardMocks.MockClient
	mockCache  *cacheMocks.MockRepository
	service    Service
	ctx        context.Context
}

func (s *ServiceTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockClient = blizzardMocks.NewMockClient(s.mockCtrl)
	s.mockCache = cacheMocks.NewMockRepository(s.mockCtrl)
	s.ctx = context.Background()

	svc, err := New(&Config{
		Client: s.mockClient,
		Cache:  s.mockCache,
		Logger: zaptest.NewLogger(s.T()),
	})
	s.Require().NoError(err)
	s.service = svc
}

func TestServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ServiceTestSuite))
}

func (s *ServiceTestSuite) TestNewValidation() {
	_, err := New(nil)
	s.Error(err)

	_, err = New(&Config{Logger: zaptest.NewLogger(s.T())})
	s.Error(err)
}

func (s *ServiceTestSuite) TestResolveNumericSkipsSearch() {
	out, err := s.service.Resolve(s.ctx, &ResolveInput{Query: " 2770 "})
	s.Require().NoError(err)
	s.Equal(ResolveStatusResolved, out.Status)
	s.Equal(2770, out.ItemID)
}

func (s *ServiceTestSuite) TestResolveEmptyQuery() {
	out, err := s.service.Resolve(s.ctx, &ResolveInput{Query: "   "})
	s.Require().NoError(err)
	s.Equal(ResolveStatusNotFound, out.Status)
}

func (s *ServiceTestSuite) TestResolveSingleHit() {
	s.mockClient.EXPECT().SearchItems(s.ctx, "Thunderfury").Return([]*models.ItemCandidate{
		{ID: 19019, Name: "Thunderfury, Blessed Blade of the Windseeker"},
	}, nil)

	out, err := s.service.Resolve(s.ctx, &ResolveInput{Query: "Thunderfury"})
	s.Require().NoError(err)
	s.Equal(ResolveStatusResolved, out.Status)
	s.Equal(19019, out.ItemID)
}

func (s *ServiceTestSuite) TestResolveDedupesAndCaps() {
	hits := make([]*models.ItemCandidate, 0, 60)
	for i := 1; i <= 30; i++ {
		hits = append(hits, &models.ItemCandidate{ID: i, Name: fmt.Sprintf("Item %d", i)})
		hits = append(hits, &models.ItemCandidate{ID: i, Name: fmt.Sprintf("Item %d dup", i)})
	}
	s.mockClient.EXPECT().SearchItems(s.ctx, "ore").Return(hits, nil)

	out, err := s.service.Resolve(s.ctx, &ResolveInput{Query: "ore"})
	s.Require().NoError(err)
	s.Equal(ResolveStatusCandidates, out.Status)
	s.Len(out.Candidates, MaxCandidates)
	s.Equal(1, out.Candidates[0].ID)
	s.Equal("Item 1", out.Candidates[0].Name)
}

func (s *ServiceTestSuite) TestResolveNoHits() {
	s.mockClient.EXPECT().SearchItems(s.ctx, "nothing").Return(nil, nil)

	out, err := s.service.Resolve(s.ctx, &ResolveInput{Query: "nothing"})
	s.Require().NoError(err)
	s.Equal(ResolveStatusNotFound, out.Status)
}

func (s *ServiceTestSuite) TestResolveSearchErrorFailsSoft() {
	s.mockClient.EXPECT().SearchItems(s.ctx, "flaky").
		Return(nil, errors.New("api down"))

	out, err := s.service.Resolve(s.ctx, &ResolveInput{Query: "flaky"})
	s.Require().NoError(err)
	s.Equal(ResolveStatusNotFound, out.Status)
}

func (s *ServiceTestSuite) TestGetItemInfoFromClient() {
	info := &models.ItemInfo{ID: 2770, Name: "Copper Ore", Quality: 1}

	s.mockCache.EXPECT().GetItem(gomock.Any(), &itemcache.GetItemInput{ItemID: 2770}).
		Return(nil, itemcache.ErrItemNotCached)
	s.mockClient.EXPECT().GetItem(gomock.Any(), 2770).Return(info, nil)
	s.mockCache.EXPECT().SetItem(gomock.Any(), &itemcache.SetItemInput{Item: info}).
		Return(nil)

	out, err := s.service.GetItemInfo(s.ctx, &GetItemInfoInput{ItemID: 2770})
	s.Require().NoError(err)
	s.Equal("Copper Ore", out.Item.Name)

	// Second call is served from the in-process LRU
	out, err = s.service.GetItemInfo(s.ctx, &GetItemInfoInput{ItemID: 2770})
	s.Require().NoError(err)
	s.Equal("Copper Ore", out.Item.Name)
}

func (s *ServiceTestSuite) TestGetItemInfoFromCache() {
	info := &models.ItemInfo{ID: 19019, Name: "Thunderfury, Blessed Blade of the Windseeker"}

	s.mockCache.EXPECT().GetItem(gomock.Any(), &itemcache.GetItemInput{ItemID: 19019}).
		Return(info, nil)

	out, err := s.service.GetItemInfo(s.ctx, &GetItemInfoInput{ItemID: 19019})
	s.Require().NoError(err)
	s.Equal(info.Name, out.Item.Name)
}

func (s *ServiceTestSuite) TestGetItemInfoPlaceholderOnFailure() {
	s.mockCache.EXPECT().GetItem(gomock.Any(), gomock.Any()).
		Return(nil, itemcache.ErrItemNotCached)
	s.mockClient.EXPECT().GetItem(gomock.Any(), 404404).
		Return(nil, errors.New("not found"))

	out, err := s.service.GetItemInfo(s.ctx, &GetItemInfoInput{ItemID: 404404})
	s.Require().NoError(err)
	s.Require().NotNil(out.Item)
	s.Equal("Item #404404", out.Item.Name)
	s.Equal(-1, out.Item.Quality)
}

func (s *ServiceTestSuite) TestGetItemInfoCacheWriteFailureIgnored() {
	info := &models.ItemInfo{ID: 2770, Name: "Copper Ore"}

	s.mockCache.EXPECT().GetItem(gomock.Any(), gomock.Any()).
		Return(nil, itemcache.ErrItemNotCached)
	s.mockClient.EXPECT().GetItem(gomock.Any(), 2770).Return(info, nil)
	s.mockCache.EXPECT().SetItem(gomock.Any(), gomock.Any()).
		Return(errors.New("redis down"))

	out, err := s.service.GetItemInfo(s.ctx, &GetItemInfoInput{ItemID: 2770})
	s.Require().NoError(err)
	s.Equal("Copper Ore", out.Item.Name)
}

func (s *ServiceTestSuite) TestGetItemInfoWithoutCacheRepo() {
	svc, err := New(&Config{
		Client: s.mockClient,
		Logger: zaptest.NewLogger(s.T()),
	})
	s.Require().NoError(err)

	info := &models.ItemInfo{ID: 2770, Name: "Copper Ore"}
	s.mockClient.EXPECT().GetItem(gomock.Any(), 2770).Return(info, nil)

	out, err := svc.GetItemInfo(s.ctx, &GetItemInfoInput{ItemID: 2770})
	s.Require().NoError(err)
	s.Equal("Copper Ore", out.Item.Name)
}
