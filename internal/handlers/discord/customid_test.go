package discord

import (
	"testing"

	"github.com/guildboard/blackboard/internal/models"
	"github.com/stretchr/testify/suite"
)

type CustomIDTestSuite struct {
	suite.Suite
}

func TestCustomIDTestSuite(t *testing.T) {
	suite.Run(t, new(CustomIDTestSuite))
}

func (s *CustomIDTestSuite) TestWizardRoundTrip() {
	cases := []WizardCustomID{
		{Action: WizardActionKind, Arg: "buy", Key: "guild-1~user-1"},
		{Action: WizardActionSelect, Arg: "qmode", Key: "guild-1~user-1"},
		{Action: WizardActionPick, Arg: "rewardItem", Key: "guild-2~user-1"},
		{Action: WizardActionNav, Arg: "back", Key: "guild-1~user-2"},
		{Action: WizardActionConfirm, Key: "guild-1~user-1"},
		{Action: WizardActionCancel, Key: "guild-1~user-1"},
	}

	for _, c := range cases {
		parsed, ok := ParseWizardCustomID(c.String())
		s.True(ok, c.String())
		s.Equal(c, parsed)
	}
}

func (s *CustomIDTestSuite) TestWizardFieldAccessor() {
	parsed, ok := ParseWizardCustomID("wiz:sel:scope:guild-1~user-1")
	s.Require().True(ok)
	s.Equal(models.FieldScope, parsed.Field())
	s.Equal("guild-1~user-1", parsed.Key)
}

// The same user can run one wizard per guild, all in the same DM
// channel. Each guild's components must carry their own session key.
func (s *CustomIDTestSuite) TestWizardKeyDistinguishesGuilds() {
	alpha := WizardCustomID{Action: WizardActionConfirm, Key: "guild-a~user-1"}
	beta := WizardCustomID{Action: WizardActionConfirm, Key: "guild-b~user-1"}
	s.NotEqual(alpha.String(), beta.String())

	parsed, ok := ParseWizardCustomID(beta.String())
	s.Require().True(ok)
	s.Equal("guild-b~user-1", parsed.Key)
}

func (s *CustomIDTestSuite) TestWizardRejectsMalformed() {
	bad := []string{
		"",
		"wiz",
		"wiz:",
		"wiz:kind",
		"wiz:kind:buy",
		"wiz:confirm",
		"wiz:confirm:extra:guild-1~user-1",
		"wiz:sel:scope:",
		"wiz:kind::guild-1~user-1",
		"wiz:unknown:x:guild-1~user-1",
		"board:claim:3",
		"something else",
	}
	for _, id := range bad {
		_, ok := ParseWizardCustomID(id)
		s.False(ok, id)
	}
}

func (s *CustomIDTestSuite) TestBoardRoundTrip() {
	cases := []BoardCustomID{
		{Action: BoardActionClaim, OrderID: 1},
		{Action: BoardActionUnclaim, OrderID: 42},
		{Action: BoardActionClose, OrderID: 999},
	}

	for _, c := range cases {
		parsed, ok := ParseBoardCustomID(c.String())
		s.True(ok, c.String())
		s.Equal(c, parsed)
	}
}

func (s *CustomIDTestSuite) TestBoardRejectsMalformed() {
	bad := []string{
		"",
		"board",
		"board:claim",
		"board:claim:zero",
		"board:claim:0",
		"board:claim:-1",
		"board:steal:3",
		"wiz:confirm",
	}
	for _, id := range bad {
		_, ok := ParseBoardCustomID(id)
		s.False(ok, id)
	}
}
