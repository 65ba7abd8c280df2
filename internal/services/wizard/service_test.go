package wizard_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/guildboard/blackboard/internal/common/clock"
	"github.com/guildboard/blackboard/internal/common/uuid"
	"github.com/guildboard/blackboard/internal/models"
	"github.com/guildboard/blackboard/internal/repositories/guildconfig"
	"github.com/guildboard/blackboard/internal/repositories/session"
	"github.com/guildboard/blackboard/internal/services/item"
	itemMocks "github.com/guildboard/blackboard/internal/services/item/mocks"
	"github.com/guildboard/blackboard/internal/services/order"
	orderMocks "github.com/guildboard/blackboard/internal/services/order/mocks"
	"github.com/guildboard/blackboard/internal/services/wizard"
	wizardMocks "github.com/guildboard/blackboard/internal/services/wizard/mocks"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap/zaptest"
)

type EngineTestSuite struct {
	suite.Suite
	mockCtrl  *gomock.Controller
	messenger *wizardMocks.MockMessenger
	items     *itemMocks.MockService
	orders    *orderMocks.MockService
	moderator *orderMocks.MockModeratorChecker
	registry  session.Registry
	engine    wizard.Service
	ctx       context.Context

	presented    []models.Field
	notices      []string
	candidates   *wizard.PresentCandidatesInput
	summaryCount int
	msgSeq       int
}

func (s *EngineTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.messenger = wizardMocks.NewMockMessenger(s.mockCtrl)
	s.items = itemMocks.NewMockService(s.mockCtrl)
	s.orders = orderMocks.NewMockService(s.mockCtrl)
	s.moderator = orderMocks.NewMockModeratorChecker(s.mockCtrl)
	s.ctx = context.Background()
	s.presented = nil
	s.notices = nil
	s.candidates = nil
	s.summaryCount = 0
	s.msgSeq = 0

	registry, err := session.NewMemory(&session.Config{
		Clock:  clock.New(),
		UUID:   uuid.New(),
		Logger: zaptest.NewLogger(s.T()),
	})
	s.Require().NoError(err)
	s.registry = registry

	guildConfigs, err := guildconfig.NewFile(&guildconfig.Config{DataDir: s.T().TempDir()})
	s.Require().NoError(err)

	// The dialogue surface records what the engine asked for; the
	// scenarios assert against these recordings.
	s.messenger.EXPECT().PresentQuestion(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, in *wizard.PresentQuestionInput) (*wizard.PresentOutput, error) {
			s.presented = append(s.presented, in.Field)
			s.msgSeq++
			return &wizard.PresentOutput{MessageID: fmt.Sprintf("m%d", s.msgSeq)}, nil
		}).AnyTimes()
	s.messenger.EXPECT().PresentKindChoice(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ *wizard.PresentKindChoiceInput) (*wizard.PresentOutput, error) {
			s.msgSeq++
			return &wizard.PresentOutput{MessageID: fmt.Sprintf("m%d", s.msgSeq)}, nil
		}).AnyTimes()
	s.messenger.EXPECT().PresentCandidates(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, in *wizard.PresentCandidatesInput) (*wizard.PresentOutput, error) {
			s.candidates = in
			s.msgSeq++
			return &wizard.PresentOutput{MessageID: fmt.Sprintf("m%d", s.msgSeq)}, nil
		}).AnyTimes()
	s.messenger.EXPECT().PresentSummary(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ *wizard.PresentSummaryInput) (*wizard.PresentOutput, error) {
			s.summaryCount++
			s.msgSeq++
			return &wizard.PresentOutput{MessageID: fmt.Sprintf("m%d", s.msgSeq)}, nil
		}).AnyTimes()
	s.messenger.EXPECT().Notify(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, in *wizard.NotifyInput) error {
			s.notices = append(s.notices, in.MessageKey)
			return nil
		}).AnyTimes()
	s.messenger.EXPECT().FreezeQuestion(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	s.messenger.EXPECT().FreezeKindChoice(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	s.messenger.EXPECT().FreezeSummary(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	s.messenger.EXPECT().StripControls(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	s.messenger.EXPECT().RemoveMessage(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	engine, err := wizard.New(&wizard.Config{
		Sessions:     s.registry,
		Messenger:    s.messenger,
		Items:        s.items,
		Orders:       s.orders,
		Moderator:    s.moderator,
		GuildConfigs: guildConfigs,
		Logger:       zaptest.NewLogger(s.T()),
	})
	s.Require().NoError(err)
	s.engine = engine
}

func TestEngineTestSuite(t *testing.T) {
	suite.Run(t, new(EngineTestSuite))
}

const testKey = "guild-1~user-1"

func (s *EngineTestSuite) start(kind models.OrderKind) {
	err := s.engine.Start(s.ctx, &wizard.StartInput{
		GuildID:         "guild-1",
		UserID:          "user-1",
		UserTag:         "miner#1234",
		OriginChannelID: "chan-origin",
		DMChannelID:     "dm-1",
		Kind:            kind,
	})
	s.Require().NoError(err)
}

func (s *EngineTestSuite) session() *models.Session {
	sess, err := s.registry.Get(s.ctx, &session.GetInput{Key: testKey})
	s.Require().NoError(err)
	return sess
}

func (s *EngineTestSuite) text(t string) {
	s.Require().NoError(s.engine.HandleText(s.ctx, &wizard.HandleTextInput{Key: testKey, Text: t}))
}

func (s *EngineTestSuite) pick(field models.Field, value string) {
	s.Require().NoError(s.engine.HandleSelect(s.ctx, &wizard.HandleSelectInput{
		Key: testKey, Field: field, Value: value,
	}))
}

func (s *EngineTestSuite) resolveDirect(query string, id int) {
	s.items.EXPECT().Resolve(gomock.Any(), &item.ResolveInput{Query: query}).
		Return(&item.ResolveOutput{Status: item.ResolveStatusResolved, ItemID: id}, nil)
}

func (s *EngineTestSuite) lastPresented() models.Field {
	s.Require().NotEmpty(s.presented)
	return s.presented[len(s.presented)-1]
}

func (s *EngineTestSuite) lastNotice() string {
	s.Require().NotEmpty(s.notices)
	return s.notices[len(s.notices)-1]
}

// answerThroughScope walks title, item, quantity mode, quantity,
// claiming mode and scope with plain answers
func (s *EngineTestSuite) answerThroughScope() {
	s.text("Iron Ore run")
	s.resolveDirect("2770", 2770)
	s.text("2770")
	s.pick(models.FieldQuantityMode, "items")
	s.text("20")
	s.pick(models.FieldMode, "multi")
	s.pick(models.FieldScope, "personal")
}

func (s *EngineTestSuite) TestStartWithKindAsksTitleFirst() {
	s.start(models.OrderKindBuy)

	s.Equal([]models.Field{models.FieldTitle}, s.presented)
	sess := s.session()
	s.Equal(models.OrderKindBuy, sess.Kind)
	s.Equal(models.FieldTitle, sess.AwaitField)
}

func (s *EngineTestSuite) TestStartWithoutKindShowsSelector() {
	s.start("")

	s.Empty(s.presented)
	sess := s.session()
	s.Empty(sess.Kind)
	s.NotEmpty(sess.KindMsgID)

	s.Require().NoError(s.engine.ChooseKind(s.ctx, &wizard.ChooseKindInput{
		Key: testKey, Kind: models.OrderKindSell,
	}))
	s.Equal(models.OrderKindSell, s.session().Kind)
	s.Equal(models.FieldTitle, s.lastPresented())
}

func (s *EngineTestSuite) TestOverlongTitleRejected() {
	s.start(models.OrderKindBuy)

	long := make([]byte, 0, 250)
	for len(long) < 250 {
		long = append(long, 'x')
	}
	s.text(string(long))

	s.Equal("wizard.err.titleTooLong", s.lastNotice())
	s.Empty(s.session().Draft.Title)
	s.Equal(models.FieldTitle, s.session().AwaitField)
}

// Scenario: the straight path through every question ends at the
// summary, and confirming commits exactly the draft that was answered.
func (s *EngineTestSuite) TestFullRunAndConfirm() {
	s.start(models.OrderKindBuy)
	s.answerThroughScope()
	s.pick(models.FieldRewardType, "gold")
	s.text("50")
	s.pick(models.FieldRewardPer, "per_item")

	s.Equal(1, s.summaryCount)
	s.True(s.session().AwaitingSummary)

	s.orders.EXPECT().CreateOrder(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, in *order.CreateOrderInput) (*order.CreateOrderOutput, error) {
			s.Equal("guild-1", in.GuildID)
			s.Equal(models.OrderKindBuy, in.Kind)
			s.Equal("chan-origin", in.OriginChannelID)
			s.Equal("Iron Ore run", in.Draft.Title)
			s.Equal(2770, in.Draft.ItemID)
			s.Equal(models.QuantityModeItems, in.Draft.QuantityMode)
			s.Require().NotNil(in.Draft.Quantity)
			s.Equal(20, *in.Draft.Quantity)
			s.Equal(models.AssignModeMulti, in.Draft.Mode)
			s.Equal(models.ScopePersonal, in.Draft.Scope)
			s.Equal(models.RewardTypeGold, in.Draft.RewardType)
			s.Require().NotNil(in.Draft.RewardQuantity)
			s.Equal(50, *in.Draft.RewardQuantity)
			s.Equal(models.RewardPerItem, in.Draft.RewardPer)
			return &order.CreateOrderOutput{
				Order: &models.Order{
					ID: 1, GuildID: in.GuildID,
					ChannelID: "chan-pub", MessageID: "msg-pub",
				},
				Published: true,
			}, nil
		})

	s.Require().NoError(s.engine.Confirm(s.ctx, &wizard.ConfirmInput{Key: testKey}))
	s.Equal("wizard.msg.done", s.lastNotice())

	_, err := s.registry.Get(s.ctx, &session.GetInput{Key: testKey})
	s.Require().ErrorIs(err, session.ErrSessionNotFound)
}

// Scenario: an ambiguous item search suspends the question on a
// selector; picking a candidate resumes and advances without more text.
func (s *EngineTestSuite) TestAmbiguousItemSearch() {
	s.start(models.OrderKindBuy)
	s.text("Thunderfury farm")

	s.items.EXPECT().Resolve(gomock.Any(), &item.ResolveInput{Query: "Thunderfury"}).
		Return(&item.ResolveOutput{
			Status: item.ResolveStatusCandidates,
			Candidates: []*models.ItemCandidate{
				{ID: 19019, Name: "Thunderfury, Blessed Blade of the Windseeker"},
				{ID: 19020, Name: "Thunderfury Replica"},
				{ID: 19021, Name: "Thunderfury Tapestry"},
			},
		}, nil)
	s.text("Thunderfury")

	s.Require().NotNil(s.candidates)
	s.Len(s.candidates.Candidates, 3)
	s.Equal(models.FieldItem, s.session().AwaitField)

	s.Require().NoError(s.engine.HandleItemPick(s.ctx, &wizard.HandleItemPickInput{
		Key: testKey, Field: models.FieldItem, ItemID: 19020,
	}))

	s.Equal(19020, s.session().Draft.ItemID)
	s.Equal(models.FieldQuantityMode, s.lastPresented())
}

func (s *EngineTestSuite) TestItemNotFoundReprompts() {
	s.start(models.OrderKindBuy)
	s.text("Iron Ore run")

	s.items.EXPECT().Resolve(gomock.Any(), &item.ResolveInput{Query: "Nonexistium"}).
		Return(&item.ResolveOutput{Status: item.ResolveStatusNotFound}, nil)
	s.text("Nonexistium")

	s.Equal("wizard.candidates.none", s.lastNotice())
	s.Equal(models.FieldItem, s.session().AwaitField)
}

// Scenario: unlimited quantity mode skips the quantity question.
func (s *EngineTestSuite) TestInfiniteQuantitySkipsQuantity() {
	s.start(models.OrderKindBuy)
	s.text("Iron Ore run")
	s.resolveDirect("2770", 2770)
	s.text("2770")
	s.pick(models.FieldQuantityMode, "infinite")

	s.Equal(models.FieldMode, s.lastPresented())
	s.Nil(s.session().Draft.Quantity)
}

// Scenario: a non-moderator asking for guild scope is rejected and
// re-asked; the draft keeps no guild scope.
func (s *EngineTestSuite) TestGuildScopeRequiresModerator() {
	s.start(models.OrderKindBuy)
	s.answerThroughScopeStart()

	s.moderator.EXPECT().IsModerator(gomock.Any(), "guild-1", "user-1").
		Return(false, nil)
	s.pick(models.FieldScope, "guild")

	s.Equal("wizard.err.notMod", s.lastNotice())
	s.Equal(models.FieldScope, s.lastPresented())
	s.Empty(s.session().Draft.Scope)

	// A moderator gets through; the typed path must behave the same
	s.moderator.EXPECT().IsModerator(gomock.Any(), "guild-1", "user-1").
		Return(true, nil)
	s.text("guild")

	s.Equal(models.ScopeGuild, s.session().Draft.Scope)
	s.Equal(models.FieldRewardType, s.lastPresented())
}

// answerThroughScopeStart stops just before the scope question
func (s *EngineTestSuite) answerThroughScopeStart() {
	s.text("Iron Ore run")
	s.resolveDirect("2770", 2770)
	s.text("2770")
	s.pick(models.FieldQuantityMode, "items")
	s.text("20")
	s.pick(models.FieldMode, "multi")
}

// Scenario: going back and flipping the reward to gold clears a
// previously picked reward item so it cannot resurface.
func (s *EngineTestSuite) TestRewardSwitchClearsRewardItem() {
	s.start(models.OrderKindBuy)
	s.answerThroughScope()
	s.pick(models.FieldRewardType, "item")
	s.resolveDirect("3577", 3577)
	s.text("3577")
	s.text("2")
	s.Equal(models.FieldRewardPer, s.lastPresented())

	// Back from rewardPer lands on the reward amount, then the reward
	// item, then the reward type
	nav := func() {
		s.Require().NoError(s.engine.Navigate(s.ctx, &wizard.NavigateInput{
			Key: testKey, Action: wizard.NavBack,
		}))
	}
	nav()
	s.Equal(models.FieldRewardQuantity, s.lastPresented())
	nav()
	s.Equal(models.FieldRewardItem, s.lastPresented())
	nav()
	s.Equal(models.FieldRewardType, s.lastPresented())

	s.pick(models.FieldRewardType, "gold")

	s.Zero(s.session().Draft.RewardItemID)
	s.Equal(models.FieldRewardQuantity, s.lastPresented())
}

func (s *EngineTestSuite) TestResetClearsFieldAndRepresents() {
	s.start(models.OrderKindBuy)
	s.text("Iron Ore run")
	s.resolveDirect("2770", 2770)
	s.text("2770")
	s.pick(models.FieldQuantityMode, "items")

	s.Require().NoError(s.engine.Navigate(s.ctx, &wizard.NavigateInput{
		Key: testKey, Action: wizard.NavReset,
	}))

	s.Equal(models.FieldQuantity, s.lastPresented())
	s.Nil(s.session().Draft.Quantity)
}

func (s *EngineTestSuite) TestNextRejectedWhenUnsatisfied() {
	s.start(models.OrderKindBuy)

	before := len(s.presented)
	s.Require().NoError(s.engine.Navigate(s.ctx, &wizard.NavigateInput{
		Key: testKey, Action: wizard.NavNext,
	}))

	s.Equal("wizard.err.incomplete", s.lastNotice())
	s.Len(s.presented, before)
	s.Equal(models.FieldTitle, s.session().AwaitField)
}

func (s *EngineTestSuite) TestNextAdvancesWhenSatisfied() {
	s.start(models.OrderKindBuy)
	s.text("Iron Ore run")
	s.resolveDirect("2770", 2770)
	s.text("2770")
	s.pick(models.FieldQuantityMode, "items")
	s.text("20")
	s.Equal(models.FieldMode, s.lastPresented())

	// Back to quantity: the old answer is still there, Next re-commits it
	s.Require().NoError(s.engine.Navigate(s.ctx, &wizard.NavigateInput{
		Key: testKey, Action: wizard.NavBack,
	}))
	s.Equal(models.FieldQuantity, s.lastPresented())

	s.Require().NoError(s.engine.Navigate(s.ctx, &wizard.NavigateInput{
		Key: testKey, Action: wizard.NavNext,
	}))
	s.Equal(models.FieldMode, s.lastPresented())
}

func (s *EngineTestSuite) TestBadQuantityInput() {
	s.start(models.OrderKindBuy)
	s.text("Iron Ore run")
	s.resolveDirect("2770", 2770)
	s.text("2770")
	s.pick(models.FieldQuantityMode, "items")

	s.text("lots of them")
	s.Equal("wizard.err.number", s.lastNotice())

	s.text("0")
	s.Equal("wizard.err.numberPositive", s.lastNotice())

	s.Equal(models.FieldQuantity, s.session().AwaitField)
	s.Nil(s.session().Draft.Quantity)
}

func (s *EngineTestSuite) TestBadChoiceInput() {
	s.start(models.OrderKindBuy)
	s.text("Iron Ore run")
	s.resolveDirect("2770", 2770)
	s.text("2770")

	s.text("several")
	s.Equal("wizard.err.choice", s.lastNotice())
	s.Equal(models.FieldQuantityMode, s.session().AwaitField)
}

// Scenario: cancelling at the summary persists nothing and later
// events find no session.
func (s *EngineTestSuite) TestCancelAtSummary() {
	s.start(models.OrderKindBuy)
	s.answerThroughScope()
	s.pick(models.FieldRewardType, "gold")
	s.text("50")
	s.pick(models.FieldRewardPer, "per_item")
	s.True(s.session().AwaitingSummary)

	s.Require().NoError(s.engine.Cancel(s.ctx, &wizard.CancelInput{Key: testKey}))
	s.Equal("wizard.msg.cancelled", s.lastNotice())

	err := s.engine.HandleText(s.ctx, &wizard.HandleTextInput{Key: testKey, Text: "hello"})
	s.Require().ErrorIs(err, session.ErrSessionNotFound)
}

func (s *EngineTestSuite) TestStaleSelectIgnored() {
	s.start(models.OrderKindBuy)
	s.text("Iron Ore run")

	// Selection for a field that is no longer awaited
	before := len(s.presented)
	s.pick(models.FieldQuantityMode, "items")
	s.Len(s.presented, before)
	s.Empty(s.session().Draft.QuantityMode)
}

func (s *EngineTestSuite) TestConfirmBeforeSummaryIgnored() {
	s.start(models.OrderKindBuy)

	s.Require().NoError(s.engine.Confirm(s.ctx, &wizard.ConfirmInput{Key: testKey}))

	// Session still alive, still on the first question
	s.Equal(models.FieldTitle, s.session().AwaitField)
}
