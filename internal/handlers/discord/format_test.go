package discord

import (
	"context"
	"errors"
	"testing"

	"github.com/guildboard/blackboard/internal/i18n"
	"github.com/guildboard/blackboard/internal/models"
	"github.com/guildboard/blackboard/internal/services/item"
	itemMocks "github.com/guildboard/blackboard/internal/services/item/mocks"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap/zaptest"
)

type FormatTestSuite struct {
	suite.Suite
	mockCtrl  *gomock.Controller
	mockItems *itemMocks.MockService
	format    *formatter
	ctx       context.Context
}

func TestFormatTestSuite(t *testing.T) {
	suite.Run(t, new(FormatTestSuite))
}

func (s *FormatTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockItems = itemMocks.NewMockService(s.mockCtrl)
	s.ctx = context.Background()

	bundle, err := i18n.New(&i18n.Config{Logger: zaptest.NewLogger(s.T())})
	s.Require().NoError(err)
	s.T().Cleanup(func() { _ = bundle.Close() })

	s.format = &formatter{translator: bundle, items: s.mockItems}
}

func (s *FormatTestSuite) TestFieldValueUnanswered() {
	draft := &models.Draft{}
	s.Equal("…", s.format.fieldValue(s.ctx, draft, models.FieldTitle, "en"))
	s.Equal("…", s.format.fieldValue(s.ctx, draft, models.FieldItem, "en"))
	s.Equal("…", s.format.fieldValue(s.ctx, draft, models.FieldQuantity, "en"))
	s.Equal("…", s.format.fieldValue(s.ctx, draft, models.FieldScope, "en"))
}

func (s *FormatTestSuite) TestFieldValueInfiniteQuantity() {
	draft := &models.Draft{QuantityMode: models.QuantityModeInfinite}
	s.Equal("∞", s.format.fieldValue(s.ctx, draft, models.FieldQuantity, "en"))
}

func (s *FormatTestSuite) TestFieldValueChoice() {
	draft := &models.Draft{Scope: models.ScopeGuild}
	s.Equal("The whole guild", s.format.fieldValue(s.ctx, draft, models.FieldScope, "en"))
	s.Equal("Für die ganze Gilde", s.format.fieldValue(s.ctx, draft, models.FieldScope, "de"))
}

func (s *FormatTestSuite) TestItemLabel() {
	s.mockItems.EXPECT().
		GetItemInfo(gomock.Any(), &item.GetItemInfoInput{ItemID: 2770}).
		Return(&item.GetItemInfoOutput{Item: &models.ItemInfo{ID: 2770, Name: "Copper Ore"}}, nil)

	s.Equal("Copper Ore (#2770)", s.format.itemLabel(s.ctx, 2770))
}

func (s *FormatTestSuite) TestItemLabelFailsSoft() {
	s.mockItems.EXPECT().
		GetItemInfo(gomock.Any(), gomock.Any()).
		Return(nil, errors.New("api down"))

	s.Equal("Item #42", s.format.itemLabel(s.ctx, 42))
}

func (s *FormatTestSuite) TestQuantityText() {
	ten := 10
	s.Equal("10 stacks", s.format.quantityText(&models.Order{
		QuantityMode: models.QuantityModeStacks,
		Quantity:     &ten,
	}, "en"))
	s.Equal("Unlimited", s.format.quantityText(&models.Order{
		QuantityMode: models.QuantityModeInfinite,
	}, "en"))
}

func (s *FormatTestSuite) TestRewardTextGoldPerStack() {
	five := 5
	text := s.format.rewardText(s.ctx, &models.Order{
		RewardType:     models.RewardTypeGold,
		RewardQuantity: &five,
		RewardPer:      models.RewardPerStack,
	}, "en")
	s.Equal("5 gold per stack", text)
}

func (s *FormatTestSuite) TestRewardTextItem() {
	two := 2
	s.mockItems.EXPECT().
		GetItemInfo(gomock.Any(), &item.GetItemInfoInput{ItemID: 3577}).
		Return(&item.GetItemInfoOutput{Item: &models.ItemInfo{ID: 3577, Name: "Gold Bar"}}, nil)

	text := s.format.rewardText(s.ctx, &models.Order{
		RewardType:     models.RewardTypeItem,
		RewardItemID:   3577,
		RewardQuantity: &two,
		RewardPer:      models.RewardPerItem,
	}, "en")
	s.Equal("2x Gold Bar (#3577) per item", text)
}

func (s *FormatTestSuite) TestRewardTextNone() {
	s.Equal("None", s.format.rewardText(s.ctx, &models.Order{}, "en"))
}

func (s *FormatTestSuite) TestStatusText() {
	s.Equal("Open", s.format.statusText(&models.Order{}, "en"))
	s.Equal("Claimed", s.format.statusText(&models.Order{TakenBy: []string{"u1"}}, "en"))
	s.Equal("Closed", s.format.statusText(&models.Order{Closed: true}, "en"))
}

func (s *FormatTestSuite) TestTruncate() {
	s.Equal("short", truncate("short", 10))
	s.Equal("abcd…", truncate("abcdefgh", 5))
}
