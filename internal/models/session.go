package models

import (
	"fmt"
	"time"
)

// Field identifies one question in the wizard's fixed sequence
type Field string

const (
	// FieldTitle asks for the order title
	FieldTitle Field = "title"

	// FieldItem asks for the item (id or name search)
	FieldItem Field = "item"

	// FieldQuantityMode asks for items/stacks/infinite
	FieldQuantityMode Field = "qmode"

	// FieldQuantity asks for the amount
	FieldQuantity Field = "quantity"

	// FieldMode asks for single/multi
	FieldMode Field = "mode"

	// FieldScope asks for personal/guild
	FieldScope Field = "scope"

	// FieldRewardType asks for gold/item
	FieldRewardType Field = "rewardType"

	// FieldRewardItem asks for the reward item
	FieldRewardItem Field = "rewardItem"

	// FieldRewardQuantity asks for the reward amount
	FieldRewardQuantity Field = "rewardQty"

	// FieldRewardPer asks for per_item/per_stack
	FieldRewardPer Field = "rewardPer"
)

// SessionKey builds the registry key for a (guild, user) pair
func SessionKey(guildID, userID string) string {
	return fmt.Sprintf("%s~%s", guildID, userID)
}

// Session is one in-progress wizard run for a (guild, user) pair. It is
// owned by the session registry; transitions run under the registry's
// per-key lock.
type Session struct {
	// ID is a per-run instance id, distinguishing a replaced session
	// from its predecessor
	ID string

	// GuildID is the guild the wizard was started from
	GuildID string

	// UserID is the user running the wizard
	UserID string

	// OriginChannelID is where the public summary will be posted
	OriginChannelID string

	// DMChannelID is the DM channel the dialogue runs in
	DMChannelID string

	// Kind is buy or sell; empty until the user picks one
	Kind OrderKind

	// AwaitField is the question currently awaiting an answer; empty
	// while the kind selector or the summary is showing
	AwaitField Field

	// AwaitingSummary is set once all fields are answered and the
	// confirm/cancel gate is showing
	AwaitingSummary bool

	// KindMsgID is the buy/sell selector message, frozen once a kind
	// is picked
	KindMsgID string

	// MsgIDs maps each field to the message currently displaying its
	// question card, for later in-place freezing
	MsgIDs map[Field]string

	// CandidatesMsgID is the live item-disambiguation message, if the
	// item question is suspended on an ambiguous search
	CandidatesMsgID string

	// SummaryMsgID is the summary card message, once presented
	SummaryMsgID string

	// Draft is the order under construction
	Draft *Draft

	// CreatedAt is when the wizard was started
	CreatedAt time.Time

	// LastActivity is bumped on every transition; the registry sweeper
	// expires idle sessions based on it
	LastActivity time.Time
}

// Key returns the registry key for this session
func (s *Session) Key() string {
	return SessionKey(s.GuildID, s.UserID)
}
